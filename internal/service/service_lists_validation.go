package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-lists/internal/validators"
	"github.com/MKhiriev/go-user-lists/models"
)

// ListValidationService checks list kinds, item ids and the caller id
// before delegating to the wrapped ListService.
type ListValidationService struct {
	inner     ListService
	validator validators.Validator
}

func NewListValidationService(validator validators.Validator) ListServiceWrapper {
	return &ListValidationService{
		validator: validator,
	}
}

func (v *ListValidationService) GetList(ctx context.Context, userID string, kind models.ListKind) ([]string, error) {
	if err := v.validateOwner(ctx, userID, kind); err != nil {
		return nil, err
	}

	return v.inner.GetList(ctx, userID, kind)
}

func (v *ListValidationService) AddToList(ctx context.Context, userID string, kind models.ListKind, itemID string) ([]string, error) {
	if err := v.validateItem(ctx, userID, kind, itemID); err != nil {
		return nil, err
	}

	return v.inner.AddToList(ctx, userID, kind, itemID)
}

func (v *ListValidationService) RemoveFromList(ctx context.Context, userID string, kind models.ListKind, itemID string) ([]string, error) {
	if err := v.validateItem(ctx, userID, kind, itemID); err != nil {
		return nil, err
	}

	return v.inner.RemoveFromList(ctx, userID, kind, itemID)
}

func (v *ListValidationService) Wrap(inner ListService) ListService {
	v.inner = inner
	return v
}

func (v *ListValidationService) validateOwner(ctx context.Context, userID string, kind models.ListKind) error {
	if userID == "" {
		return fmt.Errorf("%w: empty user id", ErrInvalidDataProvided)
	}

	if err := v.validator.Validate(ctx, kind); err != nil {
		return mapValidationError(err)
	}

	return nil
}

func (v *ListValidationService) validateItem(ctx context.Context, userID string, kind models.ListKind, itemID string) error {
	if err := v.validateOwner(ctx, userID, kind); err != nil {
		return err
	}

	if err := v.validator.Validate(ctx, itemID, validators.FieldItemID); err != nil {
		return mapValidationError(err)
	}

	return nil
}
