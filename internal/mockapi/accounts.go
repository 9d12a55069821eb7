package mockapi

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/waresmart/warehouse-console/internal/core/domain"
	"github.com/waresmart/warehouse-console/internal/core/service"
)

// Demo credentials accepted by the mock backend.
const (
	DemoUsername = "admin"
	DemoPassword = "admin123"
	DemoFullName = "Admin Kho"

	// seedPassword is the password of every other seeded account.
	seedPassword = "staff123"
)

var ErrUsernameTaken = errors.New("username already exists")

// Account is a backend user record.
type Account struct {
	ID           string
	FirstName    string
	LastName     string
	UserName     string
	Email        string
	PhoneNumber  string
	Role         string
	IsActive     bool
	PasswordHash string
	CreatedAt    time.Time
}

func (a Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

func (a Account) matches(query string) bool {
	return domain.User{
		FullName:    a.FullName(),
		Username:    a.UserName,
		Email:       a.Email,
		PhoneNumber: a.PhoneNumber,
	}.MatchesSearch(query)
}

// AccountStore is the in-memory user table.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[string]*Account
	cost     int
}

// NewAccountStore seeds the demo administrator and the demo staff list.
func NewAccountStore(bcryptCost int) (*AccountStore, error) {
	s := &AccountStore{accounts: make(map[string]*Account), cost: bcryptCost}

	admin := Account{
		ID:        uuid.NewString(),
		FirstName: "Admin",
		LastName:  "Kho",
		UserName:  DemoUsername,
		Email:     "admin@waresmart.vn",
		Role:      domain.RoleAdmin,
		IsActive:  true,
	}
	if _, err := s.Create(admin, DemoPassword); err != nil {
		return nil, err
	}

	for _, u := range service.MockUsers() {
		first, last := splitName(u.FullName)
		seed := Account{
			ID:          u.ID,
			FirstName:   first,
			LastName:    last,
			UserName:    u.Username,
			Email:       u.Email,
			PhoneNumber: u.PhoneNumber,
			Role:        u.Role,
			IsActive:    u.IsActive,
		}
		if _, err := s.Create(seed, seedPassword); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// splitName puts the given name in LastName and the rest in FirstName so
// that FullName reproduces the input.
func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	if len(parts) < 2 {
		return full, ""
	}
	return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
}

// Create hashes password and stores a copy of a. An empty ID is replaced
// with a new UUID.
func (s *AccountStore) Create(a Account, password string) (*Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findByUsernameLocked(a.UserName) != nil {
		return nil, ErrUsernameTaken
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Role == "" {
		a.Role = domain.RoleStaff
	}
	a.PasswordHash = string(hash)
	a.CreatedAt = time.Now().UTC()

	stored := a
	s.accounts[a.ID] = &stored
	out := stored
	return &out, nil
}

// Authenticate checks username and password.
func (s *AccountStore) Authenticate(username, password string) (*Account, error) {
	s.mu.RLock()
	a := s.findByUsernameLocked(username)
	var found Account
	if a != nil {
		found = *a
	}
	s.mu.RUnlock()

	if a == nil {
		return nil, domain.ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)) != nil {
		return nil, errInvalidPassword
	}
	return &found, nil
}

var (
	errInvalidPassword = errors.New("invalid password")
	errAccountDisabled = errors.New("account disabled")
)

func (s *AccountStore) findByUsernameLocked(username string) *Account {
	for _, a := range s.accounts {
		if strings.EqualFold(a.UserName, username) {
			return a
		}
	}
	return nil
}

// List returns the accounts matching search ordered by creation time.
func (s *AccountStore) List(search string) []Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		if a.matches(search) {
			out = append(out, *a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (s *AccountStore) Get(id string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *a
	return &out, nil
}

// Update applies fn to the stored account and returns the result.
func (s *AccountStore) Update(id string, fn func(a *Account)) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	fn(a)
	out := *a
	return &out, nil
}

// SetPassword replaces the password hash of id.
func (s *AccountStore) SetPassword(id, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = s.Update(id, func(a *Account) { a.PasswordHash = string(hash) })
	return err
}

func (s *AccountStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(s.accounts, id)
	return nil
}
