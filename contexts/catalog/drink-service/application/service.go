package application

import (
	"context"
	"log/slog"
	"strings"

	"cantina/contexts/catalog/drink-service/domain/entities"
	domainerrors "cantina/contexts/catalog/drink-service/domain/errors"
	"cantina/contexts/catalog/drink-service/ports"
)

type Service struct {
	Repo   ports.Repository
	Logger *slog.Logger
}

func (s Service) ListDrinks(ctx context.Context) ([]entities.Drink, error) {
	return s.Repo.ListDrinks(ctx)
}

func (s Service) CreateDrink(ctx context.Context, input ports.CreateDrinkInput) (entities.Drink, error) {
	if strings.TrimSpace(input.Title) == "" {
		return entities.Drink{}, domainerrors.ErrInvalidDrink
	}
	if len(input.Recipe) == 0 {
		return entities.Drink{}, domainerrors.ErrInvalidDrink
	}
	for _, entry := range input.Recipe {
		if entry.Parts <= 0 {
			return entities.Drink{}, domainerrors.ErrInvalidDrink
		}
	}

	created, err := s.Repo.CreateDrink(ctx, entities.Drink{
		Title:  input.Title,
		Recipe: input.Recipe,
	})
	if err != nil {
		return entities.Drink{}, err
	}

	s.log(ctx).Info("drink created",
		"event", "drink_created",
		"drink_id", created.ID,
	)
	return created, nil
}

// UpdateDrink applies a partial update. Only non-empty fields overwrite
// stored state, so a client cannot clear the title or the recipe here;
// that quirk is part of the published contract.
func (s Service) UpdateDrink(ctx context.Context, id int64, input ports.UpdateDrinkInput) (entities.Drink, error) {
	current, err := s.Repo.GetDrink(ctx, id)
	if err != nil {
		return entities.Drink{}, err
	}

	if strings.TrimSpace(input.Title) != "" {
		current.Title = input.Title
	}
	if len(input.Recipe) > 0 {
		for _, entry := range input.Recipe {
			if entry.Parts <= 0 {
				return entities.Drink{}, domainerrors.ErrInvalidDrink
			}
		}
		current.Recipe = input.Recipe
	}

	updated, err := s.Repo.UpdateDrink(ctx, current)
	if err != nil {
		return entities.Drink{}, err
	}

	s.log(ctx).Info("drink updated",
		"event", "drink_updated",
		"drink_id", updated.ID,
	)
	return updated, nil
}

func (s Service) DeleteDrink(ctx context.Context, id int64) (int64, error) {
	if _, err := s.Repo.GetDrink(ctx, id); err != nil {
		return 0, err
	}
	if err := s.Repo.DeleteDrink(ctx, id); err != nil {
		return 0, err
	}

	s.log(ctx).Info("drink deleted",
		"event", "drink_deleted",
		"drink_id", id,
	)
	return id, nil
}

func (s Service) log(_ context.Context) *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
