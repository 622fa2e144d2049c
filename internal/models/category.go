package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryType distinguishes expense from income categories.
//
// swagger:enum CategoryType
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// Valid reports whether the value is one of the known category types.
func (t CategoryType) Valid() bool {
	return t == CategoryTypeExpense || t == CategoryTypeIncome
}

// Category is a label users attach to records at entry time.
//
// A category with a nil UserID is a global default and visible to every user.
// Categories are stored denormalized on records as plain strings, so renaming
// a category does not relabel past records.
type Category struct {
	DefaultModel
	UserID *uuid.UUID   `json:"userId"` // nil means global default
	Name   string       `json:"name" example:"Food"`
	Type   CategoryType `json:"type" example:"expense"`
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	if c.Name == "" {
		return ErrCategoryNameNotSet
	}

	if !c.Type.Valid() {
		return ErrCategoryTypeInvalid
	}

	return nil
}

// CategoriesForUser returns the effective category list of a user: the global
// defaults plus the user's own categories, defaults first.
func CategoriesForUser(userID uuid.UUID) ([]Category, error) {
	var categories []Category
	err := DB.
		Where("user_id IS NULL OR user_id = ?", userID).
		Order("user_id IS NOT NULL, name ASC").
		Find(&categories).Error
	return categories, err
}

// defaultCategories are seeded on first startup. The lists match the
// categories offered by the expense and income entry forms.
var defaultCategories = []Category{
	{Name: "Fuel", Type: CategoryTypeExpense},
	{Name: "Food", Type: CategoryTypeExpense},
	{Name: "Bills", Type: CategoryTypeExpense},
	{Name: "EMI", Type: CategoryTypeExpense},
	{Name: "Health-Care", Type: CategoryTypeExpense},
	{Name: "Entertainment", Type: CategoryTypeExpense},
	{Name: "Travel", Type: CategoryTypeExpense},
	{Name: "Shopping", Type: CategoryTypeExpense},
	{Name: "Other", Type: CategoryTypeExpense},
	{Name: "Salary", Type: CategoryTypeIncome},
	{Name: "Interest", Type: CategoryTypeIncome},
	{Name: "Gift", Type: CategoryTypeIncome},
	{Name: "Refund", Type: CategoryTypeIncome},
	{Name: "Seller", Type: CategoryTypeIncome},
	{Name: "Other", Type: CategoryTypeIncome},
}

// seedDefaultCategories creates the global default categories that do not
// exist yet. It is idempotent and runs on every startup.
func seedDefaultCategories(db *gorm.DB) error {
	for _, category := range defaultCategories {
		err := db.
			Where("user_id IS NULL AND name = ? AND type = ?", category.Name, category.Type).
			FirstOrCreate(&Category{}, category).Error
		if err != nil {
			return err
		}
	}

	return nil
}
