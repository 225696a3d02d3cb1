package validator

import (
	"fmt"
	"strings"

	"github.com/Calvin-77/movie-store-app/internal/constants"
	"github.com/Calvin-77/movie-store-app/internal/metrics"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const sep = " and "

type Error struct {
	Error       bool
	FailedField string
	Tag         string
	Value       interface{}
}

type IXValidator interface {
	// ParseAndValidate fills data from the request body and validates it.
	// A non-nil error is already a client-facing 422.
	ParseAndValidate(c *fiber.Ctx, data any) error
	Validate(data interface{}) []Error
}

type XValidator struct {
	validator *validator.Validate
	metrics   *metrics.Metrics
}

func NewXValidator(validator *validator.Validate, metrics *metrics.Metrics) IXValidator {
	return &XValidator{
		validator: validator,
		metrics:   metrics,
	}
}

func (x *XValidator) ParseAndValidate(c *fiber.Ctx, data any) error {
	if err := c.BodyParser(data); err != nil {
		// Wrong primitive types in the JSON body land here.
		return fiber.NewError(fiber.StatusUnprocessableEntity, "request does not meet data type specification")
	}

	errs := x.Validate(data)
	if len(errs) == 0 {
		return nil
	}

	errMsgs := make([]string, 0, len(errs))
	for _, err := range errs {
		errMsgs = append(errMsgs, fmt.Sprintf(constants.MessageErrorFormat, err.FailedField))

		if x.metrics != nil {
			x.metrics.RecordValidationError(err.FailedField, err.Tag)
		}
	}

	return fiber.NewError(fiber.StatusUnprocessableEntity, strings.Join(errMsgs, sep))
}

func (x *XValidator) Validate(data interface{}) []Error {
	var validationErrors []Error

	errs := x.validator.Struct(data)
	if errs != nil {
		for _, err := range errs.(validator.ValidationErrors) {
			var elem Error
			elem.FailedField = err.Field()
			elem.Tag = err.Tag()
			elem.Value = err.Value()
			elem.Error = true
			validationErrors = append(validationErrors, elem)
		}
	}
	return validationErrors
}
