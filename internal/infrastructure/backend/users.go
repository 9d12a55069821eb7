package backend

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/waresmart/warehouse-console/internal/core/domain"
)

const usersPath = "/Users"

// listContainers are the envelope fields a paged user list may use.
var listContainers = []string{"data", "items"}

// UserDirectory implements ports.UserDirectory against /Users.
type UserDirectory struct {
	client *Client
}

func NewUserDirectory(client *Client) *UserDirectory {
	return &UserDirectory{client: client}
}

// List fetches all users. The search term is forwarded to the backend but the
// result is not filtered locally.
func (d *UserDirectory) List(ctx context.Context, search string) ([]domain.User, error) {
	var query url.Values
	if s := strings.TrimSpace(search); s != "" {
		query = url.Values{"search": {s}}
	}

	data, err := d.client.do(ctx, "users.list", http.MethodGet, usersPath, query, nil)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, &domain.NetworkError{Op: "users.list", Err: errors.New("malformed user list")}
	}

	items := userItems(gjson.ParseBytes(data))
	users := make([]domain.User, 0, len(items))
	for _, item := range items {
		users = append(users, mapUser(item))
	}
	return users, nil
}

func (d *UserDirectory) Get(ctx context.Context, id string) (*domain.User, error) {
	data, err := d.client.do(ctx, "users.get", http.MethodGet, userPath(id), nil, nil)
	if err != nil {
		return nil, notFound(err)
	}
	return decodeUser("users.get", data)
}

func (d *UserDirectory) Create(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	data, err := d.client.do(ctx, "users.create", http.MethodPost, usersPath, nil, in)
	if err != nil {
		return nil, err
	}
	return decodeUser("users.create", data)
}

func (d *UserDirectory) Update(ctx context.Context, id string, in domain.UserInput) (*domain.User, error) {
	data, err := d.client.do(ctx, "users.update", http.MethodPut, userPath(id), nil, in)
	if err != nil {
		return nil, notFound(err)
	}
	return decodeUser("users.update", data)
}

// ToggleStatus flips the active flag. A backend answering with an empty body
// yields a nil user and no error.
func (d *UserDirectory) ToggleStatus(ctx context.Context, id string) (*domain.User, error) {
	data, err := d.client.do(ctx, "users.toggle", http.MethodPatch, userPath(id)+"/toggle-status", nil, nil)
	if err != nil {
		return nil, notFound(err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}
	return decodeUser("users.toggle", data)
}

func (d *UserDirectory) Delete(ctx context.Context, id string) error {
	_, err := d.client.do(ctx, "users.delete", http.MethodDelete, userPath(id), nil, nil)
	return notFound(err)
}

func userPath(id string) string {
	return usersPath + "/" + url.PathEscape(id)
}

// userItems accepts a bare array or an envelope holding the array under
// data or items.
func userItems(body gjson.Result) []gjson.Result {
	if body.IsArray() {
		return body.Array()
	}
	for _, field := range listContainers {
		if v := body.Get(field); v.IsArray() {
			return v.Array()
		}
	}
	return nil
}

func decodeUser(op string, data []byte) (*domain.User, error) {
	if !gjson.ValidBytes(data) {
		return nil, &domain.NetworkError{Op: op, Err: errors.New("malformed user")}
	}
	body := gjson.ParseBytes(data)
	if !body.IsObject() {
		return nil, &domain.NetworkError{Op: op, Err: errors.New("user is not an object")}
	}
	u := mapUser(body)
	return &u, nil
}

// mapUser converts the backend's account shape into a domain.User.
func mapUser(item gjson.Result) domain.User {
	fullName := strings.TrimSpace(item.Get("firstName").String() + " " + item.Get("lastName").String())
	if fullName == "" {
		fullName = strings.TrimSpace(item.Get("fullName").String())
	}
	if fullName == "" {
		fullName = "N/A"
	}

	username := item.Get("userName").String()
	if username == "" {
		username = item.Get("username").String()
	}
	if username == "" {
		username = "N/A"
	}

	role := domain.NormalizeRole(item.Get("role").String())
	if role == "" {
		role = domain.RoleStaff
	}
	label := item.Get("roleLabel").String()
	if label == "" {
		label = domain.RoleLabel(role)
	}

	active := true
	if v := item.Get("isActive"); v.Exists() {
		active = v.Bool()
	}

	return domain.User{
		ID:          item.Get("id").String(),
		FullName:    fullName,
		Username:    username,
		Email:       item.Get("email").String(),
		PhoneNumber: item.Get("phoneNumber").String(),
		Role:        role,
		RoleLabel:   label,
		IsActive:    active,
	}
}

// notFound maps a 404 from a single-user endpoint to domain.ErrUserNotFound.
func notFound(err error) error {
	var netErr *domain.NetworkError
	if errors.As(err, &netErr) && netErr.StatusCode == http.StatusNotFound {
		return domain.ErrUserNotFound
	}
	return err
}
