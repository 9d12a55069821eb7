package mockapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/waresmart/warehouse-console/internal/api/middleware"
)

// Authenticator issues HS256 tokens for valid accounts.
type Authenticator struct {
	accounts  *AccountStore
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthenticator(accounts *AccountStore, jwtSecret string, tokenTTL time.Duration) *Authenticator {
	if tokenTTL <= 0 {
		tokenTTL = 8 * time.Hour
	}
	return &Authenticator{accounts: accounts, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Login returns a signed token for username. Unknown users and wrong
// passwords are indistinguishable to the caller.
func (s *Authenticator) Login(username, password string) (string, *Account, error) {
	if username == "" || password == "" {
		return "", nil, errInvalidPassword
	}

	account, err := s.accounts.Authenticate(username, password)
	if err != nil {
		return "", nil, errInvalidPassword
	}
	if !account.IsActive {
		return "", nil, errAccountDisabled
	}

	token, err := s.generateToken(account)
	if err != nil {
		return "", nil, err
	}
	return token, account, nil
}

func (s *Authenticator) generateToken(a *Account) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      a.ID,
		"username": a.UserName,
		"role":     a.Role,
		"jti":      uuid.NewString(),
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// Auth validates the JWT and injects claims into context.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			username, _ := claims["username"].(string)
			role, _ := claims["role"].(string)
			c.Set("username", username)
			c.Set(middleware.RoleKey, role)

			return next(c)
		}
	}
}
