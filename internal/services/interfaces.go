package services

import (
	"io"
	"time"

	"ledgerly/internal/analytics"
	"ledgerly/internal/csvio"
	"ledgerly/internal/models"
	"ledgerly/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	UpdatePreferences(userID string, prefs models.Preferences) (*models.User, error)
}

// CategoryServicer defines the contract for category-related business logic.
// Listings include the shared global taxonomy alongside the user's own
// categories; mutations only ever touch the user's own.
type CategoryServicer interface {
	CreateCategory(userID, name string, categoryType models.CategoryType, icon, color string, budget float64, parentID *string) (*models.Category, error)
	GetUserCategories(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetUserCategoriesByType(userID string, categoryType models.CategoryType, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryByID(userID, categoryID string) (*models.Category, error)
	GetCategoryPath(userID, categoryID string) (string, error)
	UpdateCategory(userID, categoryID string, name, icon, color string, budget *float64, parentID *string) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Type       *models.TransactionType
	CategoryID *string
	MinAmount  *float64
	MaxAmount  *float64
	Recurring  *bool
}

// TransactionInput carries the caller-supplied fields for creating or
// updating a transaction.
type TransactionInput struct {
	CategoryID       string
	Type             models.TransactionType
	Amount           float64
	Date             time.Time
	Description      string
	PaymentMethod    string
	Tags             []string
	Recurring        bool
	RecurringPeriod  models.RecurringPeriod
	RecurringEndDate *time.Time
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID string, input TransactionInput) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID string, input TransactionInput) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
	ImportCSV(userID string, r io.Reader) (*csvio.ImportResult, error)
	ExportCSV(userID string, w io.Writer, filter TransactionFilter) error
}

// RecurringServicer materializes due instances of recurring transaction series.
type RecurringServicer interface {
	GenerateDueTransactions(userID string, now time.Time) ([]models.Transaction, error)
}

// AnalyticsServicer runs the analytics engine over a user's data. All
// methods are read-only snapshots; repeated calls over unchanged data
// return identical results.
type AnalyticsServicer interface {
	MonthlySummary(userID string, now time.Time) (*analytics.Summary, error)
	ComparePeriods(userID string, periodType analytics.PeriodType, currentLabel, previousLabel string, now time.Time) (*analytics.Comparison, error)
	DetectAnomalies(userID string, factor float64) ([]analytics.Anomaly, error)
	ForecastExpenses(userID string, months int) (*analytics.Forecast, error)
	Suggestions(userID string, now time.Time) ([]analytics.Suggestion, error)
	BudgetProgress(userID string, now time.Time) ([]analytics.CategoryBudgetProgress, error)
}
