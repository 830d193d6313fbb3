// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-lists/internal/config"
	"github.com/MKhiriev/go-user-lists/internal/logger"
	"github.com/MKhiriev/go-user-lists/internal/store"
	"github.com/MKhiriev/go-user-lists/models"
)

// listService is the concrete implementation of ListService. It assumes its
// input has been validated; see ListValidationService.
type listService struct {
	userRepository store.UserRepository
	listRepository store.ListRepository

	// maxSize caps the number of ids in a single list.
	maxSize int

	logger *logger.Logger
}

// NewListService constructs the unvalidated ListService.
func NewListService(userRepository store.UserRepository, listRepository store.ListRepository, cfg config.App, logger *logger.Logger) ListService {
	return &listService{
		userRepository: userRepository,
		listRepository: listRepository,
		maxSize:        cfg.ListMaxSize,
		logger:         logger,
	}
}

// GetList returns the list of kind owned by userID. A user that no longer
// exists yields store.ErrNoUserWasFound.
func (s *listService) GetList(ctx context.Context, userID string, kind models.ListKind) ([]string, error) {
	if _, err := s.userRepository.FindUserByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("error getting owner of %s: %w", kind, err)
	}

	items, err := s.listRepository.GetItems(ctx, userID, kind)
	if err != nil {
		return nil, fmt.Errorf("error getting %s: %w", kind, err)
	}

	return items, nil
}

func (s *listService) AddToList(ctx context.Context, userID string, kind models.ListKind, itemID string) ([]string, error) {
	items, err := s.listRepository.AddItem(ctx, userID, kind, itemID, s.maxSize)
	if err != nil {
		return nil, fmt.Errorf("error adding to %s: %w", kind, err)
	}

	logger.FromContext(ctx).Debug().Str("kind", kind.String()).Str("item_id", itemID).Int("size", len(items)).Msg("item added")
	return items, nil
}

func (s *listService) RemoveFromList(ctx context.Context, userID string, kind models.ListKind, itemID string) ([]string, error) {
	items, err := s.listRepository.RemoveItem(ctx, userID, kind, itemID)
	if err != nil {
		return nil, fmt.Errorf("error removing from %s: %w", kind, err)
	}

	logger.FromContext(ctx).Debug().Str("kind", kind.String()).Str("item_id", itemID).Int("size", len(items)).Msg("item removed")
	return items, nil
}
