package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
	"ledgerly/internal/pagination"
	"ledgerly/internal/taxonomy"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// visibleTo scopes a query to categories the user can see: their own plus
// the shared global taxonomy.
func visibleTo(db *gorm.DB, userID string) *gorm.DB {
	return db.Where("user_id = ? OR user_id = ''", userID)
}

// CreateCategory creates a new category
func (s *categoryService) CreateCategory(
	userID, name string,
	categoryType models.CategoryType,
	icon, color string,
	budget float64,
	parentID *string,
) (*models.Category, error) {
	// Validate input
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if budget < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget cannot be negative")
	}

	// Names only need to be unique among siblings. The default taxonomy
	// itself reuses names across branches (two "Insurance" subcategories),
	// so the check is scoped to the same parent, not the whole tree.
	dup := s.db.Model(&models.Category{}).Where("user_id = ? AND name = ?", userID, name)
	if parentID != nil {
		dup = dup.Where("parent_id = ?", *parentID)
	} else {
		dup = dup.Where("parent_id IS NULL")
	}

	var count int64
	if err := dup.Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "a sibling category with this name already exists")
	}

	// If parentID is provided, check that it exists and is visible to the user
	if parentID != nil {
		var parent models.Category
		if err := visibleTo(s.db, userID).Where("id = ?", *parentID).First(&parent).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.WithMessage(apperrors.ErrCategoryNotFound, "parent category not found")
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	// Create category
	category := &models.Category{
		UserID:   userID,
		Name:     name,
		Type:     categoryType,
		Icon:     icon,
		Color:    color,
		Budget:   budget,
		ParentID: parentID,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// GetUserCategories retrieves a paginated list of categories visible to a user.
func (s *categoryService) GetUserCategories(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	page.Defaults()

	var totalItems int64
	base := visibleTo(s.db.Model(&models.Category{}), userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var categories []models.Category
	if err := base.Order("name").Scopes(pagination.Paginate(page)).Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(categories, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetUserCategoriesByType retrieves a paginated list of categories of a specific type.
func (s *categoryService) GetUserCategoriesByType(userID string, categoryType models.CategoryType, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	page.Defaults()

	var totalItems int64
	base := visibleTo(s.db.Model(&models.Category{}), userID).Where("type = ?", categoryType)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var categories []models.Category
	if err := base.Order("name").Scopes(pagination.Paginate(page)).Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(categories, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetCategoryByID retrieves a category by ID if the user can see it.
func (s *categoryService) GetCategoryByID(userID, categoryID string) (*models.Category, error) {
	var category models.Category
	if err := visibleTo(s.db, userID).Where("id = ?", categoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// GetCategoryPath resolves the category's full display path, walking the
// parent chain ("Food > Groceries").
func (s *categoryService) GetCategoryPath(userID, categoryID string) (string, error) {
	category, err := s.GetCategoryByID(userID, categoryID)
	if err != nil {
		return "", err
	}

	var categories []models.Category
	if err := visibleTo(s.db, userID).Find(&categories).Error; err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return taxonomy.ResolvePath(category, taxonomy.NewIndex(categories)), nil
}

// UpdateCategory updates the user's own category. Global categories cannot
// be modified. A nil budget leaves the current budget unchanged.
func (s *categoryService) UpdateCategory(userID, categoryID string, name, icon, color string, budget *float64, parentID *string) (*models.Category, error) {
	category, err := s.GetCategoryByID(userID, categoryID)
	if err != nil {
		return nil, err
	}
	if category.IsGlobal() {
		return nil, apperrors.ErrGlobalCategory
	}

	if parentID != nil {
		if *parentID == categoryID {
			return nil, apperrors.ErrSelfParentCategory
		}
		var parent models.Category
		if err := visibleTo(s.db, userID).Where("id = ?", *parentID).First(&parent).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.WithMessage(apperrors.ErrCategoryNotFound, "parent category not found")
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		// Reparenting under one of this category's own descendants would
		// create a cycle.
		if hasAncestor(&parent, categoryID, s.db, userID) {
			return nil, apperrors.WithMessage(apperrors.ErrSelfParentCategory, "cannot move a category under its own subcategory")
		}
		category.ParentID = parentID
	}

	if name != "" {
		category.Name = name
	}
	if icon != "" {
		category.Icon = icon
	}
	if color != "" {
		category.Color = color
	}
	if budget != nil {
		if *budget < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget cannot be negative")
		}
		category.Budget = *budget
	}

	if err := s.db.Save(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// hasAncestor walks the parent chain of cat looking for ancestorID.
func hasAncestor(cat *models.Category, ancestorID string, db *gorm.DB, userID string) bool {
	seen := make(map[string]bool)
	current := cat
	for current.ParentID != nil && !seen[current.ID] {
		seen[current.ID] = true
		if *current.ParentID == ancestorID {
			return true
		}
		var parent models.Category
		if err := visibleTo(db, userID).Where("id = ?", *current.ParentID).First(&parent).Error; err != nil {
			return false
		}
		current = &parent
	}
	return false
}

// DeleteCategory removes the user's own category and its direct
// subcategories. Transactions keep their category reference; analytics
// reports them under "Unknown" once the category is gone.
func (s *categoryService) DeleteCategory(userID, categoryID string) error {
	category, err := s.GetCategoryByID(userID, categoryID)
	if err != nil {
		return err
	}
	if category.IsGlobal() {
		return apperrors.ErrGlobalCategory
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ? AND user_id = ?", categoryID, userID).
			Delete(&models.Category{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(category).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}
