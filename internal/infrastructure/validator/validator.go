package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
)

var httpURLPattern = regexp.MustCompile(`^https?://.+`)

// AppValidator implements the usecase.Validator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecase.Validator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	registerAll(v)
	return &AppValidator{validate: v}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidateURL accepts empty strings and http(s) links.
func (av *AppValidator) ValidateURL(rawURL string) error {
	if rawURL == "" {
		return nil
	}
	if err := av.validate.Var(rawURL, "httpurl"); err != nil {
		return fmt.Errorf("%q is not a valid http(s) URL", rawURL)
	}
	return nil
}

// ValidatePasswordStrength checks if the password meets the strength requirements.
func (av *AppValidator) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !containsUppercase(password) {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !containsLowercase(password) {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !containsNumber(password) {
		return fmt.Errorf("password must contain at least one number")
	}
	return nil
}

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerAll(v)
	}
}

func registerAll(v *validator.Validate) {
	_ = v.RegisterValidation("tagname", tagNameFL)
	_ = v.RegisterValidation("httpurl", httpURLFL)
	_ = v.RegisterValidation("containsuppercase", containsUppercaseFL)
	_ = v.RegisterValidation("containslowercase", containsLowercaseFL)
	_ = v.RegisterValidation("containsdigit", containsNumberFL)
}

// tagNameFL validates the name after normalization, so "  Go  " passes.
func tagNameFL(fl validator.FieldLevel) bool {
	return entity.ValidTagName(entity.NormalizeTagName(fl.Field().String()))
}

func httpURLFL(fl validator.FieldLevel) bool {
	return httpURLPattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

func containsUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}
func containsUppercaseFL(fl validator.FieldLevel) bool {
	return containsUppercase(fl.Field().String())
}

func containsLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}
func containsLowercaseFL(fl validator.FieldLevel) bool {
	return containsLowercase(fl.Field().String())
}

func containsNumber(s string) bool {
	return strings.IndexFunc(s, unicode.IsNumber) >= 0
}
func containsNumberFL(fl validator.FieldLevel) bool {
	return containsNumber(fl.Field().String())
}
