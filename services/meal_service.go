// services/meal_service.go
package services

import (
	"context"
	"errors"
	"time"

	"github.com/diogofgomespinheiro/daily-diet-api/models"
	"github.com/diogofgomespinheiro/daily-diet-api/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService { return &MealService{db: db} }

// MealUpdate carries a partial update: nil fields are left untouched.
type MealUpdate struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	IsDietCompliant *bool   `json:"isDietCompliant"`
}

// List returns the user's meals in creation order. The DB-assigned seq
// breaks created_at ties in insertion order; metrics depend on this
// ordering.
func (s *MealService) List(ctx context.Context, userID string) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, seq ASC").
		Find(&meals).Error
	return meals, err
}

// Get filters by id and owner in a single query, so a meal owned by
// another user is indistinguishable from one that does not exist.
// A non-uuid id cannot reference a row; it is rejected up front so the
// uuid-typed column on postgres never sees an invalid literal.
func (s *MealService) Get(ctx context.Context, userID, mealID string) (*models.Meal, error) {
	if _, err := uuid.Parse(mealID); err != nil {
		return nil, ErrMealNotFound
	}

	var meal models.Meal
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) Create(ctx context.Context, userID, name, description string, isDietCompliant bool) (*models.Meal, error) {
	meal := &models.Meal{
		ID:              utils.NewID(),
		UserID:          userID,
		Name:            name,
		Description:     description,
		IsDietCompliant: isDietCompliant,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

// Update merges the supplied fields into the stored meal. created_at and
// user_id are never written. The read and the write are two round-trips;
// concurrent updates to the same meal can lose fields, which is accepted.
func (s *MealService) Update(ctx context.Context, userID, mealID string, upd MealUpdate) (*models.Meal, error) {
	meal, err := s.Get(ctx, userID, mealID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if upd.Name != nil {
		meal.Name = *upd.Name
		fields["name"] = *upd.Name
	}
	if upd.Description != nil {
		meal.Description = *upd.Description
		fields["description"] = *upd.Description
	}
	if upd.IsDietCompliant != nil {
		meal.IsDietCompliant = *upd.IsDietCompliant
		fields["is_diet_compliant"] = *upd.IsDietCompliant
	}
	if len(fields) == 0 {
		return meal, nil
	}

	err = s.db.WithContext(ctx).
		Model(&models.Meal{}).
		Where("id = ? AND user_id = ?", mealID, userID).
		Updates(fields).Error
	if err != nil {
		return nil, err
	}
	return meal, nil
}

// Delete removes the meal in a single owner-filtered statement; deleting a
// nonexistent or foreign meal is an error, not a silent no-op.
func (s *MealService) Delete(ctx context.Context, userID, mealID string) error {
	if _, err := uuid.Parse(mealID); err != nil {
		return ErrMealNotFound
	}

	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}
