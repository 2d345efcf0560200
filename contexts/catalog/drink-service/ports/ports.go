package ports

import (
	"context"

	"cantina/contexts/catalog/drink-service/domain/entities"
)

// CreateDrinkInput carries a fully-specified new drink. Recipe is already
// normalized to a list by the transport layer.
type CreateDrinkInput struct {
	Title  string
	Recipe []entities.RecipeEntry
}

// UpdateDrinkInput carries a partial update. Zero values mean "leave the
// stored field unchanged": an empty title or empty recipe never overwrites.
type UpdateDrinkInput struct {
	Title  string
	Recipe []entities.RecipeEntry
}

type Repository interface {
	ListDrinks(ctx context.Context) ([]entities.Drink, error)
	GetDrink(ctx context.Context, id int64) (entities.Drink, error)
	CreateDrink(ctx context.Context, drink entities.Drink) (entities.Drink, error)
	UpdateDrink(ctx context.Context, drink entities.Drink) (entities.Drink, error)
	DeleteDrink(ctx context.Context, id int64) error
}
