package validators

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-user-lists/models"
)

// Field name constants used to scope validation of plain values.
const (
	// FieldItemID targets an external resource id taken from the URL path.
	FieldItemID = "item_id"

	// FieldListKind targets a favourites/history selector.
	FieldListKind = "list_kind"
)

// MaxItemIDBytes is the longest item id accepted, in bytes.
const MaxItemIDBytes = 128

const (
	tagItemID   = "itemid"
	tagListKind = "listkind"
)

// RequestValidator implements [Validator] for registration and login bodies,
// item ids and list kinds.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator with the custom item id
// and list kind rules registered.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// registration only fails on an empty tag or a nil func
	_ = v.RegisterValidation(tagItemID, validItemID)
	_ = v.RegisterValidation(tagListKind, validListKind)

	return &RequestValidator{validate: v}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported values:
//   - models.RegisterRequest / *models.RegisterRequest
//   - models.Credentials / *models.Credentials
//   - string with FieldItemID
//   - models.ListKind, or string with FieldListKind
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateStruct(ctx, &value)
	case *models.RegisterRequest:
		return v.validateStruct(ctx, value)
	case models.Credentials:
		return v.validateStruct(ctx, &value)
	case *models.Credentials:
		return v.validateStruct(ctx, value)
	case models.ListKind:
		return v.validateListKind(ctx, string(value))
	case string:
		return v.validateString(ctx, value, fields)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RequestValidator) validateString(ctx context.Context, value string, fields []string) error {
	switch {
	case slices.Contains(fields, FieldItemID):
		if err := v.validate.VarCtx(ctx, value, tagItemID); err != nil {
			return ErrInvalidItemID
		}
		return nil
	case slices.Contains(fields, FieldListKind):
		return v.validateListKind(ctx, value)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownField, fields)
	}
}

func (v *RequestValidator) validateListKind(ctx context.Context, value string) error {
	if err := v.validate.VarCtx(ctx, value, tagListKind); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidListKind, value)
	}

	return nil
}

func (v *RequestValidator) validateStruct(ctx context.Context, s any) error {
	err := v.validate.StructCtx(ctx, s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidFields, err)
	}

	names := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		if fe.Tag() == "eqfield" {
			return ErrPasswordsDoNotMatch
		}
		names = append(names, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidFields, strings.Join(names, ", "))
}

func validItemID(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	return strings.TrimSpace(id) != "" && len(id) <= MaxItemIDBytes
}

func validListKind(fl validator.FieldLevel) bool {
	return models.ListKind(fl.Field().String()).Valid()
}
