// Package catalog manages the user's category catalog.
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tallyhq/tally/internal/model"
)

// Repository loads and stores the full category list. Implementations own
// the encoding; the catalog never sees anything but model.Category values.
type Repository interface {
	Load(ctx context.Context) ([]model.Category, error)
	Save(ctx context.Context, categories []model.Category) error
}

// Catalog is the in-memory category list plus the repository it persists to.
// Reads are pure; Add and Delete write through to the repository.
type Catalog struct {
	repo       Repository
	categories []model.Category
}

// Load builds a catalog from the repository. An empty repository is seeded
// with the default category set.
func Load(ctx context.Context, repo Repository) (*Catalog, error) {
	categories, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	if len(categories) == 0 {
		categories = DefaultCategories()
		if err := repo.Save(ctx, categories); err != nil {
			return nil, fmt.Errorf("failed to seed default categories: %w", err)
		}
		slog.Info("seeded default category catalog", "count", len(categories))
	}

	return &Catalog{repo: repo, categories: categories}, nil
}

// All returns the categories in catalog order.
func (c *Catalog) All() []model.Category {
	out := make([]model.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Resolve looks up a category by id. Unresolvable ids fall back to the
// sentinel "other" category if present, else the last category in the
// catalog. Resolution never fails.
func (c *Catalog) Resolve(id string) model.Category {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat
		}
	}
	return c.Fallback()
}

// Fallback returns the category unresolvable ids resolve to.
func (c *Catalog) Fallback() model.Category {
	for _, cat := range c.categories {
		if cat.ID == model.OtherCategoryID {
			return cat
		}
	}
	if len(c.categories) > 0 {
		return c.categories[len(c.categories)-1]
	}
	return model.Category{ID: model.OtherCategoryID, Name: "Other", Icon: "ellipsis"}
}

// Add appends a custom category, placing it immediately before the sentinel
// "other" entry when one exists so the catch-all stays last.
func (c *Catalog) Add(ctx context.Context, cat model.Category) error {
	if cat.ID == "" {
		return fmt.Errorf("category id cannot be empty")
	}
	for _, existing := range c.categories {
		if existing.ID == cat.ID {
			return fmt.Errorf("category %q already exists", cat.ID)
		}
	}

	inserted := false
	next := make([]model.Category, 0, len(c.categories)+1)
	for _, existing := range c.categories {
		if !inserted && existing.ID == model.OtherCategoryID {
			next = append(next, cat)
			inserted = true
		}
		next = append(next, existing)
	}
	if !inserted {
		next = append(next, cat)
	}

	if err := c.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to save categories: %w", err)
	}
	c.categories = next
	slog.Info("added category", "id", cat.ID, "name", cat.Name)
	return nil
}

// Delete removes a custom category. Deleting a system category or an unknown
// id is a no-op, not an error.
func (c *Catalog) Delete(ctx context.Context, id string) error {
	next := make([]model.Category, 0, len(c.categories))
	removed := false
	for _, existing := range c.categories {
		if existing.ID == id && !existing.IsSystem {
			removed = true
			continue
		}
		next = append(next, existing)
	}
	if !removed {
		return nil
	}

	if err := c.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to save categories: %w", err)
	}
	c.categories = next
	slog.Info("deleted category", "id", id)
	return nil
}
