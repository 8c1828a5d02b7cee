package taxonomy

import "ledgerly/internal/models"

// mainCategory describes one top-level entry of the starter taxonomy.
type mainCategory struct {
	Name  string
	Color string
	Icon  string
	Type  models.CategoryType
}

// subCategory describes a starter subcategory attached to a main category
// by name.
type subCategory struct {
	Name   string
	Parent string
	Icon   string
}

var defaultMains = []mainCategory{
	{Name: "Housing", Color: "#e74c3c", Icon: "home", Type: models.CategoryTypeExpense},
	{Name: "Transportation", Color: "#3498db", Icon: "car", Type: models.CategoryTypeExpense},
	{Name: "Food", Color: "#2ecc71", Icon: "utensils", Type: models.CategoryTypeExpense},
	{Name: "Utilities", Color: "#f39c12", Icon: "bolt", Type: models.CategoryTypeExpense},
	{Name: "Healthcare", Color: "#9b59b6", Icon: "medkit", Type: models.CategoryTypeExpense},
	{Name: "Personal", Color: "#1abc9c", Icon: "user", Type: models.CategoryTypeExpense},
	{Name: "Entertainment", Color: "#e67e22", Icon: "film", Type: models.CategoryTypeExpense},
	{Name: "Education", Color: "#34495e", Icon: "graduation-cap", Type: models.CategoryTypeExpense},
	{Name: "Savings", Color: "#27ae60", Icon: "piggy-bank", Type: models.CategoryTypeExpense},
	{Name: "Income", Color: "#16a085", Icon: "money-bill", Type: models.CategoryTypeIncome},
}

var defaultSubs = []subCategory{
	// Housing
	{Name: "Rent/Mortgage", Parent: "Housing", Icon: "building"},
	{Name: "Home Insurance", Parent: "Housing", Icon: "shield-alt"},
	{Name: "Property Tax", Parent: "Housing", Icon: "file-invoice-dollar"},
	{Name: "Repairs", Parent: "Housing", Icon: "tools"},
	{Name: "Furniture", Parent: "Housing", Icon: "couch"},

	// Transportation
	{Name: "Car Payment", Parent: "Transportation", Icon: "car-side"},
	{Name: "Fuel", Parent: "Transportation", Icon: "gas-pump"},
	{Name: "Insurance", Parent: "Transportation", Icon: "shield-alt"},
	{Name: "Maintenance", Parent: "Transportation", Icon: "wrench"},
	{Name: "Public Transit", Parent: "Transportation", Icon: "bus"},

	// Food
	{Name: "Groceries", Parent: "Food", Icon: "shopping-cart"},
	{Name: "Restaurants", Parent: "Food", Icon: "utensils"},
	{Name: "Fast Food", Parent: "Food", Icon: "hamburger"},
	{Name: "Coffee Shops", Parent: "Food", Icon: "coffee"},

	// Utilities
	{Name: "Electricity", Parent: "Utilities", Icon: "bolt"},
	{Name: "Water", Parent: "Utilities", Icon: "tint"},
	{Name: "Gas", Parent: "Utilities", Icon: "fire"},
	{Name: "Internet", Parent: "Utilities", Icon: "wifi"},
	{Name: "Phone", Parent: "Utilities", Icon: "phone"},

	// Healthcare
	{Name: "Insurance", Parent: "Healthcare", Icon: "shield-alt"},
	{Name: "Medications", Parent: "Healthcare", Icon: "pills"},
	{Name: "Doctor", Parent: "Healthcare", Icon: "user-md"},
	{Name: "Dental", Parent: "Healthcare", Icon: "tooth"},

	// Personal
	{Name: "Clothing", Parent: "Personal", Icon: "tshirt"},
	{Name: "Gym", Parent: "Personal", Icon: "dumbbell"},
	{Name: "Haircut", Parent: "Personal", Icon: "cut"},
	{Name: "Cosmetics", Parent: "Personal", Icon: "spa"},

	// Entertainment
	{Name: "Movies", Parent: "Entertainment", Icon: "film"},
	{Name: "Music", Parent: "Entertainment", Icon: "music"},
	{Name: "Games", Parent: "Entertainment", Icon: "gamepad"},
	{Name: "Streaming Services", Parent: "Entertainment", Icon: "tv"},
	{Name: "Hobbies", Parent: "Entertainment", Icon: "palette"},

	// Education
	{Name: "Tuition", Parent: "Education", Icon: "university"},
	{Name: "Books", Parent: "Education", Icon: "book"},
	{Name: "Courses", Parent: "Education", Icon: "laptop-code"},

	// Savings
	{Name: "Emergency Fund", Parent: "Savings", Icon: "umbrella"},
	{Name: "Retirement", Parent: "Savings", Icon: "hand-holding-usd"},
	{Name: "Investments", Parent: "Savings", Icon: "chart-line"},

	// Income
	{Name: "Salary", Parent: "Income", Icon: "briefcase"},
	{Name: "Bonus", Parent: "Income", Icon: "gift"},
	{Name: "Interest", Parent: "Income", Icon: "percentage"},
	{Name: "Dividends", Parent: "Income", Icon: "chart-pie"},
}

// Default returns the canonical starter category set for a new user: ten
// main categories with fixed colors and icon tokens, plus the named
// subcategories attached to their parents. Subcategories inherit the
// parent's income/expense type and color. IDs are assigned here so parent
// references are valid before anything is persisted; saving the returned
// slice is the caller's responsibility.
func Default(userID string, newID func() string) []models.Category {
	categories := make([]models.Category, 0, len(defaultMains)+len(defaultSubs))
	parentByName := make(map[string]*models.Category, len(defaultMains))

	for _, m := range defaultMains {
		cat := models.Category{
			UserID: userID,
			Name:   m.Name,
			Type:   m.Type,
			Color:  m.Color,
			Icon:   m.Icon,
		}
		cat.ID = newID()
		categories = append(categories, cat)
		parentByName[m.Name] = &categories[len(categories)-1]
	}

	for _, s := range defaultSubs {
		parent, ok := parentByName[s.Parent]
		if !ok {
			continue
		}
		cat := models.Category{
			UserID:   userID,
			Name:     s.Name,
			Type:     parent.Type,
			Color:    parent.Color,
			Icon:     s.Icon,
			ParentID: &parent.ID,
		}
		cat.ID = newID()
		categories = append(categories, cat)
	}

	return categories
}
