package model

// Category represents an expense category from the user's catalog.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"` // symbolic icon key, opaque to the core
	IsSystem bool   `json:"isSystem"`
}

// OtherCategoryID is the sentinel catch-all category. It doubles as the
// deterministic fallback for unresolvable category ids.
const OtherCategoryID = "other"
