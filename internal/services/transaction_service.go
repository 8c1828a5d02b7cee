package services

import (
	"errors"
	"io"
	"time"

	"gorm.io/gorm"

	"ledgerly/internal/csvio"
	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/logger"
	"ledgerly/internal/models"
	"ledgerly/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// validateInput checks the caller-supplied fields shared by create and update.
func (s *transactionService) validateInput(userID string, input TransactionInput) error {
	if input.Amount <= 0 {
		return apperrors.ErrInvalidAmount
	}
	if input.Type != models.TransactionTypeIncome && input.Type != models.TransactionTypeExpense {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction type must be income or expense")
	}
	if input.Date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction date is required")
	}
	if input.Recurring && !input.RecurringPeriod.Valid() {
		return apperrors.ErrInvalidRecurrence
	}

	var count int64
	if err := visibleTo(s.db.Model(&models.Category{}), userID).
		Where("id = ?", input.CategoryID).
		Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}

// CreateTransaction records a new transaction for the user.
func (s *transactionService) CreateTransaction(userID string, input TransactionInput) (*models.Transaction, error) {
	if err := s.validateInput(userID, input); err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		UserID:           userID,
		CategoryID:       input.CategoryID,
		Type:             input.Type,
		Amount:           input.Amount,
		Date:             input.Date,
		Description:      input.Description,
		PaymentMethod:    input.PaymentMethod,
		Tags:             input.Tags,
		Recurring:        input.Recurring,
		RecurringPeriod:  input.RecurringPeriod,
		RecurringEndDate: input.RecurringEndDate,
	}

	if err := s.db.Create(tx).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tx, nil
}

// applyFilter narrows a query by the optional filter fields.
func applyFilter(db *gorm.DB, filter TransactionFilter) *gorm.DB {
	if filter.FromDate != nil {
		db = db.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		db = db.Where("date <= ?", *filter.ToDate)
	}
	if filter.Type != nil {
		db = db.Where("type = ?", *filter.Type)
	}
	if filter.CategoryID != nil {
		db = db.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.MinAmount != nil {
		db = db.Where("amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		db = db.Where("amount <= ?", *filter.MaxAmount)
	}
	if filter.Recurring != nil {
		db = db.Where("recurring = ?", *filter.Recurring)
	}
	return db
}

// GetUserTransactions retrieves a paginated, filtered list of the user's
// transactions, newest first.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := applyFilter(s.db.Model(&models.Transaction{}).Where("user_id = ?", userID), filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Order("date DESC").
		Scopes(pagination.Paginate(page)).
		Preload("Category").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetTransactionByID retrieves one of the user's transactions.
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var tx models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).
		Preload("Category").
		First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &tx, nil
}

// UpdateTransaction replaces the mutable fields of a transaction.
func (s *transactionService) UpdateTransaction(userID, transactionID string, input TransactionInput) (*models.Transaction, error) {
	tx, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	if err := s.validateInput(userID, input); err != nil {
		return nil, err
	}

	tx.CategoryID = input.CategoryID
	tx.Type = input.Type
	tx.Amount = input.Amount
	tx.Date = input.Date
	tx.Description = input.Description
	tx.PaymentMethod = input.PaymentMethod
	tx.Tags = input.Tags
	tx.Recurring = input.Recurring
	tx.RecurringPeriod = input.RecurringPeriod
	tx.RecurringEndDate = input.RecurringEndDate

	if err := s.db.Save(tx).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tx, nil
}

// DeleteTransaction removes one of the user's transactions.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	tx, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(tx).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ImportCSV parses transactions from r and persists the valid rows. Rows
// that fail to parse are reported in the result, not as an error; only a
// database failure aborts the import.
func (s *transactionService) ImportCSV(userID string, r io.Reader) (*csvio.ImportResult, error) {
	var categories []models.Category
	if err := visibleTo(s.db, userID).Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := csvio.Import(r, userID, categories, time.Now())
	if len(result.Transactions) > 0 {
		if err := s.db.Create(&result.Transactions).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	logger.Get().Infow("csv import finished",
		"user_id", userID, "imported", result.Imported, "failed", result.Failed)
	return &result, nil
}

// ExportCSV writes the user's transactions matching the filter to w,
// oldest first.
func (s *transactionService) ExportCSV(userID string, w io.Writer, filter TransactionFilter) error {
	var transactions []models.Transaction
	base := applyFilter(s.db.Where("user_id = ?", userID), filter)
	if err := base.Order("date").Find(&transactions).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var categories []models.Category
	if err := visibleTo(s.db, userID).Find(&categories).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := csvio.Export(w, transactions, categories); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
