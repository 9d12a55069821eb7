package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldLabels names form fields the way the login page shows them.
var fieldLabels = map[string]string{
	"username": "Tên đăng nhập",
	"password": "Mật khẩu",
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	if label, ok := fieldLabels[field]; ok {
		field = label
	}
	switch fe.Tag() {
	case "required":
		return field + " không được để trống"
	case "max":
		return fmt.Sprintf("%s tối đa %s ký tự", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s phải là một trong: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s không hợp lệ (%s)", field, fe.Tag())
	}
}
