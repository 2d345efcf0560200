package http

import (
	"encoding/json"

	"cantina/contexts/catalog/drink-service/domain/entities"
)

// RecipeEntryInput is one recipe step as submitted by clients.
type RecipeEntryInput struct {
	Name  string `json:"name,omitempty"`
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

// RecipeField accepts either a single entry object or a list of entries and
// normalizes both to a list, matching the published create/update contract.
type RecipeField []RecipeEntryInput

func (f *RecipeField) UnmarshalJSON(data []byte) error {
	var list []RecipeEntryInput
	if err := json.Unmarshal(data, &list); err == nil {
		*f = list
		return nil
	}
	var single RecipeEntryInput
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*f = RecipeField{single}
	return nil
}

func (f RecipeField) ToEntries() []entities.RecipeEntry {
	if len(f) == 0 {
		return nil
	}
	out := make([]entities.RecipeEntry, 0, len(f))
	for _, entry := range f {
		out = append(out, entities.RecipeEntry{
			Name:  entry.Name,
			Color: entry.Color,
			Parts: entry.Parts,
		})
	}
	return out
}

type CreateDrinkRequest struct {
	Title  string      `json:"title"`
	Recipe RecipeField `json:"recipe"`
}

type UpdateDrinkRequest struct {
	Title  string      `json:"title"`
	Recipe RecipeField `json:"recipe"`
}

// RecipeEntryShortDTO is the summary projection of a recipe step: no name.
type RecipeEntryShortDTO struct {
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

// RecipeEntryLongDTO is the detail projection. The name key is always
// emitted, null when the entry carries no name.
type RecipeEntryLongDTO struct {
	Name  *string `json:"name"`
	Color string  `json:"color"`
	Parts int     `json:"parts"`
}

type DrinkShortDTO struct {
	ID     int64                 `json:"id"`
	Title  string                `json:"title"`
	Recipe []RecipeEntryShortDTO `json:"recipe"`
}

type DrinkLongDTO struct {
	ID     int64                `json:"id"`
	Title  string               `json:"title"`
	Recipe []RecipeEntryLongDTO `json:"recipe"`
}

type ListDrinksResponse struct {
	Success bool            `json:"success"`
	Items   []DrinkShortDTO `json:"items"`
}

type ListDrinksDetailResponse struct {
	Success bool           `json:"success"`
	Items   []DrinkLongDTO `json:"items"`
}

// MutationResponse wraps the affected drink in long projection, as returned
// by create and update.
type MutationResponse struct {
	Success bool           `json:"success"`
	Items   []DrinkLongDTO `json:"items"`
}

type DeleteDrinkResponse struct {
	Success   bool  `json:"success"`
	DeletedID int64 `json:"deletedId"`
}

// ErrorResponse is the uniform failure envelope for every route.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}
