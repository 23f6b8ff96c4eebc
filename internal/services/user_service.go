package services

import (
	"context"

	"backend/internal/domain/models"
	"backend/internal/repositories"
)

type UserService struct {
	Users     repositories.UserRepository
	RequestID string
}

type UserPage struct {
	Items []models.APIUser
	Meta  PageMeta
}

func (s UserService) List(ctx context.Context, page PageRequest) (UserPage, error) {
	if err := validatePage(page); err != nil {
		return UserPage{}, err
	}

	users, total, err := s.Users.List(ctx, page.Limit, page.Offset())
	if err != nil {
		return UserPage{}, err
	}

	items := make([]models.APIUser, 0, len(users))
	for _, u := range users {
		items = append(items, u.API())
	}
	return UserPage{Items: items, Meta: pageMeta(page, total)}, nil
}
