package resume

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	_ = validate.RegisterValidation("resume_status", func(fl validator.FieldLevel) bool {
		return Status(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		return Gender(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("degree", func(fl validator.FieldLevel) bool {
		return Degree(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("interest_in_job", func(fl validator.FieldLevel) bool {
		return InterestInJob(fl.Field().String()).Valid()
	})
}

// checkStruct runs validator tags and translates the first failure into
// a domain ValidationError.
func checkStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return ValidationError{Field: fe.Field(), Reason: "violates rule '" + fe.Tag() + "'"}
	}
	return ValidationError{Field: "payload", Reason: err.Error()}
}

// Validate проверяет ограничения полей агрегата до любого обращения к
// хранилищу.
func (r Resume) Validate() error { return checkStruct(r) }

// Validate проверяет ограничения полей кандидата.
func (c Candidate) Validate() error { return checkStruct(c) }

// Validate проверяет ограничения установленных полей частичного обновления.
func (p Patch) Validate() error { return checkStruct(p) }

// Validate проверяет ограничения установленных полей кандидата.
func (p CandidatePatch) Validate() error { return checkStruct(p) }
