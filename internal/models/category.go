package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents a transaction category. Categories form a tree of at
// most two levels in practice: "main" categories have no parent, subcategories
// reference a main category via ParentID.
//
// A category with an empty UserID is global and visible to every user.
type Category struct {
	Base
	UserID   string       `gorm:"type:uuid;index" json:"user_id"`
	Name     string       `gorm:"not null" json:"name"`
	Type     CategoryType `gorm:"not null;default:expense" json:"type"`
	Icon     string       `json:"icon"`
	Color    string       `json:"color"`
	Budget   float64      `gorm:"not null;default:0" json:"budget"`
	ParentID *string      `gorm:"type:uuid" json:"parent_id,omitempty"`

	// Relationships
	Parent       *Category     `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Children     []Category    `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
}

// IsIncome reports whether transactions in this category represent income.
// Subcategories carry their own type; callers must not infer it from the
// parent.
func (c *Category) IsIncome() bool {
	return c.Type == CategoryTypeIncome
}

// IsGlobal reports whether the category is shared across all users.
func (c *Category) IsGlobal() bool {
	return c.UserID == ""
}
