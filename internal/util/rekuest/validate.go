package rekuest

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/rs/zerolog/log"

	"github.com/msb-dashboard/backend/internal/pkg/dasherr"
	"github.com/msb-dashboard/backend/internal/util"
)

var (
	Validate   = util.NewValidator()
	translator ut.Translator
)

func init() {
	enLocale := en.New()
	translator, _ = ut.New(enLocale, enLocale).GetTranslator("en")

	if err := enTranslations.RegisterDefaultTranslations(Validate, translator); err != nil {
		log.Warn().Err(err).Str("locale", "en").Msg("could not register translation")
	}

	err := Validate.RegisterTranslation("binlocation", translator, func(ut ut.Translator) error {
		return ut.Add("binlocation", "{0} must be a bin location such as A0001", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("binlocation", fe.Field())
		return t
	})
	if err != nil {
		log.Warn().Err(err).Msg("could not register translation for function binlocation")
	}
}

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

func translate(ve validator.ValidationErrors) []*ErrorResponse {
	trans := make([]*ErrorResponse, 0, len(ve))
	for _, fe := range ve {
		trans = append(trans, &ErrorResponse{
			Field:     fe.Namespace(),
			Violation: fe.Tag(),
			Message:   fe.Translate(translator),
		})
	}
	return trans
}

// ValidStruct validates dest with the validator singleton and returns an
// INVALID_REQUEST error carrying the translated violations when it fails.
func ValidStruct(dest any) error {
	err := Validate.Struct(dest)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return dasherr.ErrInvalidReq.Msg("invalid request: %s", err)
	}
	return dasherr.NewInvalidViolations(translate(errs))
}

// ValidVar validates a single value against tag.
func ValidVar(field any, tag string) error {
	err := Validate.Var(field, tag)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return dasherr.ErrInvalidReq.Msg("invalid request: %s", err)
	}
	return dasherr.NewInvalidViolations(translate(errs))
}
