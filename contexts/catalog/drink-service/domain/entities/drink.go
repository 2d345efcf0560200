package entities

// RecipeEntry is one ordered step of a drink recipe. Name is optional and
// stays empty for entries submitted without one.
type RecipeEntry struct {
	Name  string
	Color string
	Parts int
}

// Drink is the catalog aggregate. Title is unique across the catalog;
// uniqueness is enforced by the repository, not here.
type Drink struct {
	ID     int64
	Title  string
	Recipe []RecipeEntry
}

// CloneRecipe returns an independent copy of the recipe slice so callers
// cannot mutate stored state through a returned entity.
func (d Drink) CloneRecipe() []RecipeEntry {
	if d.Recipe == nil {
		return nil
	}
	out := make([]RecipeEntry, len(d.Recipe))
	copy(out, d.Recipe)
	return out
}
