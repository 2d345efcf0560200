package httpadapter

import (
	"context"
	"log/slog"

	"cantina/contexts/catalog/drink-service/application"
	"cantina/contexts/catalog/drink-service/domain/entities"
	"cantina/contexts/catalog/drink-service/ports"
	httptransport "cantina/contexts/catalog/drink-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListDrinksHandler(ctx context.Context) (httptransport.ListDrinksResponse, error) {
	drinks, err := h.Service.ListDrinks(ctx)
	if err != nil {
		return httptransport.ListDrinksResponse{}, err
	}

	resp := httptransport.ListDrinksResponse{Success: true}
	resp.Items = make([]httptransport.DrinkShortDTO, 0, len(drinks))
	for _, drink := range drinks {
		resp.Items = append(resp.Items, toShortDTO(drink))
	}
	return resp, nil
}

func (h Handler) ListDrinksDetailHandler(ctx context.Context) (httptransport.ListDrinksDetailResponse, error) {
	drinks, err := h.Service.ListDrinks(ctx)
	if err != nil {
		return httptransport.ListDrinksDetailResponse{}, err
	}

	resp := httptransport.ListDrinksDetailResponse{Success: true}
	resp.Items = make([]httptransport.DrinkLongDTO, 0, len(drinks))
	for _, drink := range drinks {
		resp.Items = append(resp.Items, toLongDTO(drink))
	}
	return resp, nil
}

func (h Handler) CreateDrinkHandler(ctx context.Context, req httptransport.CreateDrinkRequest) (httptransport.MutationResponse, error) {
	created, err := h.Service.CreateDrink(ctx, ports.CreateDrinkInput{
		Title:  req.Title,
		Recipe: req.Recipe.ToEntries(),
	})
	if err != nil {
		return httptransport.MutationResponse{}, err
	}
	return httptransport.MutationResponse{
		Success: true,
		Items:   []httptransport.DrinkLongDTO{toLongDTO(created)},
	}, nil
}

func (h Handler) UpdateDrinkHandler(ctx context.Context, id int64, req httptransport.UpdateDrinkRequest) (httptransport.MutationResponse, error) {
	updated, err := h.Service.UpdateDrink(ctx, id, ports.UpdateDrinkInput{
		Title:  req.Title,
		Recipe: req.Recipe.ToEntries(),
	})
	if err != nil {
		return httptransport.MutationResponse{}, err
	}
	return httptransport.MutationResponse{
		Success: true,
		Items:   []httptransport.DrinkLongDTO{toLongDTO(updated)},
	}, nil
}

func (h Handler) DeleteDrinkHandler(ctx context.Context, id int64) (httptransport.DeleteDrinkResponse, error) {
	deletedID, err := h.Service.DeleteDrink(ctx, id)
	if err != nil {
		return httptransport.DeleteDrinkResponse{}, err
	}
	return httptransport.DeleteDrinkResponse{
		Success:   true,
		DeletedID: deletedID,
	}, nil
}

func toShortDTO(drink entities.Drink) httptransport.DrinkShortDTO {
	dto := httptransport.DrinkShortDTO{
		ID:     drink.ID,
		Title:  drink.Title,
		Recipe: make([]httptransport.RecipeEntryShortDTO, 0, len(drink.Recipe)),
	}
	for _, entry := range drink.Recipe {
		dto.Recipe = append(dto.Recipe, httptransport.RecipeEntryShortDTO{
			Color: entry.Color,
			Parts: entry.Parts,
		})
	}
	return dto
}

func toLongDTO(drink entities.Drink) httptransport.DrinkLongDTO {
	dto := httptransport.DrinkLongDTO{
		ID:     drink.ID,
		Title:  drink.Title,
		Recipe: make([]httptransport.RecipeEntryLongDTO, 0, len(drink.Recipe)),
	}
	for _, entry := range drink.Recipe {
		long := httptransport.RecipeEntryLongDTO{
			Color: entry.Color,
			Parts: entry.Parts,
		}
		if entry.Name != "" {
			name := entry.Name
			long.Name = &name
		}
		dto.Recipe = append(dto.Recipe, long)
	}
	return dto
}
