package auth

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/SillyFizy/grow/internal/domain"
	"github.com/SillyFizy/grow/internal/validate"
)

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	Username  string `json:"username"  validate:"required,min=3,max=150"`
	Email     string `json:"email"     validate:"required,email,max=254"`
	Password  string `json:"password"  validate:"required,max=128"`
	Password2 string `json:"password2" validate:"required,eqfield=Password"`
}

func (i *RegisterInput) normalize() {
	i.Username = strings.TrimSpace(i.Username)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
}

// Validate checks field rules and the minimum password length.
func (i RegisterInput) Validate(minPasswordLen int) error {
	var errs []domain.FieldError
	if err := validate.Struct(i); err != nil {
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		errs = ve.Errors
	}

	if i.Password != "" && utf8.RuneCountInString(i.Password) < minPasswordLen {
		errs = append(errs, domain.FieldError{
			Field:   "password",
			Message: fmt.Sprintf("must be at least %d characters", minPasswordLen),
		})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput holds credentials. Login is a username or an email address.
type LoginInput struct {
	Login    string `json:"login"    validate:"required,max=254"`
	Password string `json:"password" validate:"required,max=128"`
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required,max=512"`
}
