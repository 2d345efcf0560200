package memory

import (
	"context"
	"sort"
	"sync"

	"cantina/contexts/catalog/drink-service/domain/entities"
	domainerrors "cantina/contexts/catalog/drink-service/domain/errors"
)

// Store is the in-memory repository used by tests and local runs. It mirrors
// the postgres adapter's behavior: sequential ids and a hard title
// uniqueness check.
type Store struct {
	mu sync.RWMutex

	drinks map[int64]entities.Drink
	titles map[string]int64
	nextID int64
}

func NewStore() *Store {
	return &Store{
		drinks: make(map[int64]entities.Drink),
		titles: make(map[string]int64),
		nextID: 1,
	}
}

func (s *Store) ListDrinks(_ context.Context) ([]entities.Drink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Drink, 0, len(s.drinks))
	for _, drink := range s.drinks {
		drink.Recipe = drink.CloneRecipe()
		out = append(out, drink)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetDrink(_ context.Context, id int64) (entities.Drink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	drink, ok := s.drinks[id]
	if !ok {
		return entities.Drink{}, domainerrors.ErrDrinkNotFound
	}
	drink.Recipe = drink.CloneRecipe()
	return drink, nil
}

func (s *Store) CreateDrink(_ context.Context, drink entities.Drink) (entities.Drink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.titles[drink.Title]; exists {
		return entities.Drink{}, domainerrors.ErrDuplicateTitle
	}

	drink.ID = s.nextID
	s.nextID++
	drink.Recipe = drink.CloneRecipe()

	s.drinks[drink.ID] = drink
	s.titles[drink.Title] = drink.ID

	drink.Recipe = drink.CloneRecipe()
	return drink, nil
}

func (s *Store) UpdateDrink(_ context.Context, drink entities.Drink) (entities.Drink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.drinks[drink.ID]
	if !ok {
		return entities.Drink{}, domainerrors.ErrDrinkNotFound
	}
	if owner, exists := s.titles[drink.Title]; exists && owner != drink.ID {
		return entities.Drink{}, domainerrors.ErrDuplicateTitle
	}

	delete(s.titles, current.Title)
	drink.Recipe = drink.CloneRecipe()
	s.drinks[drink.ID] = drink
	s.titles[drink.Title] = drink.ID

	drink.Recipe = drink.CloneRecipe()
	return drink, nil
}

func (s *Store) DeleteDrink(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	drink, ok := s.drinks[id]
	if !ok {
		return domainerrors.ErrDrinkNotFound
	}
	delete(s.titles, drink.Title)
	delete(s.drinks, id)
	return nil
}

// Count reports how many drinks are stored. Exposed for boundary tests that
// assert a rejected request never reached the repository.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.drinks)
}

// Seed inserts demo drinks, skipping any title already present.
func (s *Store) Seed(drinks []entities.Drink) {
	for _, drink := range drinks {
		_, _ = s.CreateDrink(context.Background(), drink)
	}
}
