package mockapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/waresmart/warehouse-console/internal/core/domain"
	"github.com/waresmart/warehouse-console/internal/core/service"
)

const (
	msgBadCredentials  = "Sai tên đăng nhập hoặc mật khẩu"
	msgAccountDisabled = "Tài khoản đã bị vô hiệu hóa"
)

type handlers struct {
	accounts *AccountStore
	auth     *Authenticator
	log      zerolog.Logger
}

type loginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type loginUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

// userResponse is the wire shape of an account.
type userResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	UserName    string `json:"userName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
	RoleLabel   string `json:"roleLabel"`
	IsActive    bool   `json:"isActive"`
}

type userListResponse struct {
	Data  []userResponse `json:"data"`
	Total int            `json:"total"`
}

type userRequest struct {
	FirstName   string `json:"firstName" validate:"required,max=64"`
	LastName    string `json:"lastName" validate:"max=64"`
	UserName    string `json:"userName" validate:"required,max=64"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,max=20"`
	Password    string `json:"password" validate:"omitempty,min=6,max=128"`
	Role        string `json:"role" validate:"omitempty,oneof=admin staff"`
}

func toUserResponse(a *Account) userResponse {
	return userResponse{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		UserName:    a.UserName,
		Email:       a.Email,
		PhoneNumber: a.PhoneNumber,
		Role:        a.Role,
		RoleLabel:   domain.RoleLabel(a.Role),
		IsActive:    a.IsActive,
	}
}

// login exchanges credentials for a token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /Authentication/Login [post]
func (h *handlers) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, account, err := h.auth.Login(strings.TrimSpace(req.UserName), req.Password)
	switch {
	case errors.Is(err, errInvalidPassword):
		h.log.Info().Str("username", req.UserName).Msg("mock login rejected")
		return echo.NewHTTPError(http.StatusUnauthorized, msgBadCredentials)
	case errors.Is(err, errAccountDisabled):
		return echo.NewHTTPError(http.StatusForbidden, msgAccountDisabled)
	case err != nil:
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token: token,
		User: loginUser{
			ID:       account.ID,
			Username: account.UserName,
			FullName: account.FullName(),
			Email:    account.Email,
			Role:     account.Role,
		},
	})
}

// listUsers returns every account matching ?search=.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Substring of name, username, email or phone"
// @Success      200     {object}  userListResponse
// @Failure      401     {object}  messageResponse
// @Router       /Users [get]
func (h *handlers) listUsers(c echo.Context) error {
	accounts := h.accounts.List(c.QueryParam("search"))
	out := make([]userResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, toUserResponse(&accounts[i]))
	}
	return c.JSON(http.StatusOK, userListResponse{Data: out, Total: len(out)})
}

// getUser returns one account.
//
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  messageResponse
// @Router       /Users/{id} [get]
func (h *handlers) getUser(c echo.Context) error {
	a, err := h.accounts.Get(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(a))
}

// createUser adds an account. Admin only.
//
// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      userRequest  true  "New user"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /Users [post]
func (h *handlers) createUser(c echo.Context) error {
	req, err := bindUser(c)
	if err != nil {
		return err
	}
	if req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}

	a, err := h.accounts.Create(Account{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		UserName:    req.UserName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
		IsActive:    true,
	}, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUserResponse(a))
}

// updateUser replaces the editable fields of an account. Admin only.
//
// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "User ID"
// @Param        body  body      userRequest  true  "User fields"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /Users/{id} [put]
func (h *handlers) updateUser(c echo.Context) error {
	req, err := bindUser(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	a, err := h.accounts.Update(id, func(a *Account) {
		a.FirstName = req.FirstName
		a.LastName = req.LastName
		a.UserName = req.UserName
		a.Email = req.Email
		a.PhoneNumber = req.PhoneNumber
		if req.Role != "" {
			a.Role = req.Role
		}
	})
	if err != nil {
		return err
	}
	if req.Password != "" {
		if err := h.accounts.SetPassword(id, req.Password); err != nil {
			return err
		}
	}
	return c.JSON(http.StatusOK, toUserResponse(a))
}

// toggleUser flips the active flag. Admin only.
//
// @Summary      Toggle user status
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  messageResponse
// @Router       /Users/{id}/toggle-status [patch]
func (h *handlers) toggleUser(c echo.Context) error {
	a, err := h.accounts.Update(c.Param("id"), func(a *Account) { a.IsActive = !a.IsActive })
	if err != nil {
		return err
	}
	h.log.Info().Str("user_id", a.ID).Bool("active", a.IsActive).Msg("mock user toggled")
	return c.JSON(http.StatusOK, toUserResponse(a))
}

// deleteUser removes an account. Admin only.
//
// @Summary      Delete user
// @Tags         users
// @Security     BearerAuth
// @Param        id   path  string  true  "User ID"
// @Success      204
// @Failure      404  {object}  messageResponse
// @Router       /Users/{id} [delete]
func (h *handlers) deleteUser(c echo.Context) error {
	if err := h.accounts.Delete(c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// stats returns the dashboard summary cards.
//
// @Summary      Dashboard stats
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.DashboardStats
// @Router       /dashboard/stats [get]
func (h *handlers) stats(c echo.Context) error {
	return c.JSON(http.StatusOK, service.MockStats())
}

// chart returns the import/export trend for ?period=7d|30d.
//
// @Summary      Dashboard chart
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        period  query  string  false  "7d or 30d"  default(7d)
// @Success      200     {array}   domain.ChartPoint
// @Failure      400     {object}  messageResponse
// @Router       /dashboard/chart [get]
func (h *handlers) chart(c echo.Context) error {
	switch period := c.QueryParam("period"); period {
	case "", "7d":
		return c.JSON(http.StatusOK, service.MockChart())
	case "30d":
		return c.JSON(http.StatusOK, monthChart())
	default:
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unsupported period %q", period))
	}
}

// monthChart stretches the weekly demo trend over 30 days.
func monthChart() []domain.ChartPoint {
	week := service.MockChart()
	out := make([]domain.ChartPoint, 30)
	for i := range out {
		p := week[i%len(week)]
		out[i] = domain.ChartPoint{Day: strconv.Itoa(i + 1), Import: p.Import, Export: p.Export}
	}
	return out
}

// topProducts returns the best sellers, at most ?limit= rows.
//
// @Summary      Top products
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query  int  false  "Maximum rows"  default(10)
// @Success      200    {array}  domain.TopProduct
// @Router       /dashboard/top-products [get]
func (h *handlers) topProducts(c echo.Context) error {
	products := service.MockTopProducts()
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil && limit > 0 && limit < len(products) {
		products = products[:limit]
	}
	return c.JSON(http.StatusOK, products)
}

func bindUser(c echo.Context) (*userRequest, error) {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return &req, nil
}
