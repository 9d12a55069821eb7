package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/waresmart/warehouse-console/internal/core/domain"
)

const (
	loginPath = "/Authentication/Login"

	msgMissingToken = "Không nhận được mã xác thực (Token) từ server."
)

// TokenExtractor pulls a candidate token out of a parsed login response.
type TokenExtractor func(body gjson.Result) (string, bool)

// IdentityExtractor pulls a candidate identity out of a parsed login response.
type IdentityExtractor func(body gjson.Result) (domain.Identity, bool)

// tokenFields and identityFields are the accepted response variants, in
// priority order.
var (
	tokenFields    = []string{"token", "accessToken", "Token", "AccessToken"}
	identityFields = []string{"user", "User"}
)

// TokenFields returns the accepted token field names in priority order.
func TokenFields() []string {
	return append([]string(nil), tokenFields...)
}

// IdentityFields returns the accepted identity field names in priority order.
func IdentityFields() []string {
	return append([]string(nil), identityFields...)
}

// TokenField extracts the string stored under name. A blank string does not
// match; any other value is returned byte for byte.
func TokenField(name string) TokenExtractor {
	return func(body gjson.Result) (string, bool) {
		v := body.Get(name)
		if v.Type != gjson.String || strings.TrimSpace(v.Str) == "" {
			return "", false
		}
		return v.Str, true
	}
}

// IdentityField extracts the object stored under name. Field names inside
// the object match case-insensitively.
func IdentityField(name string) IdentityExtractor {
	return func(body gjson.Result) (domain.Identity, bool) {
		v := body.Get(name)
		if !v.IsObject() {
			return domain.Identity{}, false
		}
		var identity domain.Identity
		if err := json.Unmarshal([]byte(v.Raw), &identity); err != nil {
			return domain.Identity{}, false
		}
		return identity, true
	}
}

type loginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// AuthGateway implements ports.AuthGateway over POST /Authentication/Login.
type AuthGateway struct {
	client      *Client
	defaultRole string
	tokens      []TokenExtractor
	identities  []IdentityExtractor
	log         zerolog.Logger
}

// NewAuthGateway builds the gateway with the default extractor lists.
// defaultRole is assigned when the response carries no role.
func NewAuthGateway(client *Client, defaultRole string, log zerolog.Logger) *AuthGateway {
	g := &AuthGateway{client: client, defaultRole: defaultRole, log: log}
	for _, name := range tokenFields {
		g.tokens = append(g.tokens, TokenField(name))
	}
	for _, name := range identityFields {
		g.identities = append(g.identities, IdentityField(name))
	}
	return g
}

// Login exchanges credentials for a token and canonical identity. It never
// writes to storage.
func (g *AuthGateway) Login(ctx context.Context, username, password string) (*domain.Credentials, error) {
	data, err := g.client.do(ctx, "login", http.MethodPost, loginPath, nil, loginRequest{
		UserName: username,
		Password: password,
	})
	if err != nil {
		return nil, classifyLoginError(err)
	}

	if !gjson.ValidBytes(data) {
		return nil, &domain.NetworkError{Op: "login", Err: errors.New("malformed login response")}
	}
	body := gjson.ParseBytes(data)
	if !body.IsObject() {
		return nil, &domain.NetworkError{Op: "login", Err: errors.New("login response is not an object")}
	}

	token, ok := g.extractToken(body)
	if !ok {
		g.log.Warn().Str("username", username).Msg("login response carried no token")
		return nil, &domain.AuthenticationError{Message: msgMissingToken}
	}

	identity, found := g.extractIdentity(body)
	if !found {
		g.log.Warn().Str("username", username).Msg("login response carried no user, using defaults")
	}
	if identity.Username == "" {
		identity.Username = username
	}
	identity.Role = domain.NormalizeRole(identity.Role)
	if identity.Role == "" {
		identity.Role = domain.NormalizeRole(g.defaultRole)
	}

	return &domain.Credentials{Token: token, Identity: identity}, nil
}

func (g *AuthGateway) extractToken(body gjson.Result) (string, bool) {
	for _, extract := range g.tokens {
		if token, ok := extract(body); ok {
			return token, true
		}
	}
	return "", false
}

func (g *AuthGateway) extractIdentity(body gjson.Result) (domain.Identity, bool) {
	for _, extract := range g.identities {
		if identity, ok := extract(body); ok {
			return identity, true
		}
	}
	return domain.Identity{}, false
}

// classifyLoginError turns a rejection with a readable message into an
// AuthenticationError; everything else stays a NetworkError.
func classifyLoginError(err error) error {
	var netErr *domain.NetworkError
	if !errors.As(err, &netErr) {
		return err
	}
	switch netErr.StatusCode {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		if netErr.Message != "" {
			return &domain.AuthenticationError{Message: netErr.Message}
		}
	}
	return err
}
