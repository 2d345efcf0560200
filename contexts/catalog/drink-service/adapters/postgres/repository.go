package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"cantina/contexts/catalog/drink-service/domain/entities"
	domainerrors "cantina/contexts/catalog/drink-service/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Migrate creates or updates the drinks table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&drinkModel{})
}

type drinkModel struct {
	ID     int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Title  string `gorm:"column:title;size:80;not null;uniqueIndex"`
	Recipe string `gorm:"column:recipe;type:text;not null"`
}

func (drinkModel) TableName() string { return "drinks" }

func (r *Repository) ListDrinks(ctx context.Context) ([]entities.Drink, error) {
	var rows []drinkModel
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	out := make([]entities.Drink, 0, len(rows))
	for _, row := range rows {
		drink, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		out = append(out, drink)
	}
	return out, nil
}

func (r *Repository) GetDrink(ctx context.Context, id int64) (entities.Drink, error) {
	var row drinkModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Drink{}, domainerrors.ErrDrinkNotFound
		}
		return entities.Drink{}, err
	}
	return row.toEntity()
}

func (r *Repository) CreateDrink(ctx context.Context, drink entities.Drink) (entities.Drink, error) {
	row, err := fromEntity(drink)
	if err != nil {
		return entities.Drink{}, err
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.Drink{}, domainerrors.ErrDuplicateTitle
		}
		return entities.Drink{}, err
	}
	return row.toEntity()
}

func (r *Repository) UpdateDrink(ctx context.Context, drink entities.Drink) (entities.Drink, error) {
	row, err := fromEntity(drink)
	if err != nil {
		return entities.Drink{}, err
	}

	result := r.db.WithContext(ctx).
		Model(&drinkModel{}).
		Where("id = ?", drink.ID).
		Updates(map[string]any{
			"title":  row.Title,
			"recipe": row.Recipe,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return entities.Drink{}, domainerrors.ErrDuplicateTitle
		}
		return entities.Drink{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.Drink{}, domainerrors.ErrDrinkNotFound
	}
	return drink, nil
}

func (r *Repository) DeleteDrink(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&drinkModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrDrinkNotFound
	}
	return nil
}

func (m drinkModel) toEntity() (entities.Drink, error) {
	var recipe []entities.RecipeEntry
	if m.Recipe != "" {
		if err := json.Unmarshal([]byte(m.Recipe), &recipe); err != nil {
			return entities.Drink{}, fmt.Errorf("decode recipe for drink %d: %w", m.ID, err)
		}
	}
	return entities.Drink{
		ID:     m.ID,
		Title:  m.Title,
		Recipe: recipe,
	}, nil
}

func fromEntity(drink entities.Drink) (drinkModel, error) {
	recipe, err := json.Marshal(drink.Recipe)
	if err != nil {
		return drinkModel{}, fmt.Errorf("encode recipe: %w", err)
	}
	return drinkModel{
		ID:     drink.ID,
		Title:  drink.Title,
		Recipe: string(recipe),
	}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
