package catalog

import "github.com/tallyhq/tally/internal/model"

// DefaultCategories returns the category set a fresh install starts with.
// System entries cannot be deleted; "other" is the sentinel catch-all and
// stays last.
func DefaultCategories() []model.Category {
	return []model.Category{
		{ID: "food", Name: "Food", Icon: "fork.knife", IsSystem: true},
		{ID: "drink", Name: "Drinks", Icon: "cup.and.saucer", IsSystem: false},
		{ID: "transport", Name: "Transport", Icon: "bus", IsSystem: true},
		{ID: "shopping", Name: "Shopping", Icon: "cart", IsSystem: false},
		{ID: "entertainment", Name: "Entertainment", Icon: "gamecontroller", IsSystem: false},
		{ID: "housing", Name: "Housing", Icon: "house", IsSystem: false},
		{ID: "health", Name: "Health", Icon: "cross.case", IsSystem: false},
		{ID: "education", Name: "Education", Icon: "book", IsSystem: false},
		{ID: "travel", Name: "Travel", Icon: "airplane", IsSystem: false},
		{ID: model.OtherCategoryID, Name: "Other", Icon: "ellipsis", IsSystem: true},
	}
}
