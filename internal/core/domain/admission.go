package domain

// Guard names the session condition a route requires.
type Guard string

const (
	GuardAuthenticated Guard = "authenticated"
	GuardAnonymous     Guard = "anonymous"
)

// Decision is the outcome of evaluating a guard against a session.
type Decision string

const (
	// DecisionChecking means the startup check has not settled; callers must
	// neither render the content nor redirect.
	DecisionChecking Decision = "checking"
	DecisionRedirect Decision = "redirect"
	DecisionAdmit    Decision = "admit"
)

// EntryPoints are the redirect targets for each side of the guard pair.
type EntryPoints struct {
	Anonymous     string
	Authenticated string
}

// DefaultEntryPoints mirrors the console routes.
var DefaultEntryPoints = EntryPoints{Anonymous: "/login", Authenticated: "/"}

// Admission is the guard verdict. Location is set only for DecisionRedirect.
type Admission struct {
	Decision Decision
	Location string
}

// Admit evaluates guard against s. It is re-run on every navigation so a
// session change (e.g. logout) is reflected on the next request.
func Admit(guard Guard, s Session, entries EntryPoints) Admission {
	if s.IsLoading {
		return Admission{Decision: DecisionChecking}
	}

	switch guard {
	case GuardAnonymous:
		if s.IsAuthenticated() {
			return Admission{Decision: DecisionRedirect, Location: entries.Authenticated}
		}
	default:
		if !s.IsAuthenticated() {
			return Admission{Decision: DecisionRedirect, Location: entries.Anonymous}
		}
	}
	return Admission{Decision: DecisionAdmit}
}
