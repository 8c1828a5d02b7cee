package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// RecurringPeriod is the cadence of a recurring transaction series.
type RecurringPeriod string

const (
	RecurringDaily   RecurringPeriod = "daily"
	RecurringWeekly  RecurringPeriod = "weekly"
	RecurringMonthly RecurringPeriod = "monthly"
	RecurringYearly  RecurringPeriod = "yearly"
)

// Valid reports whether p is one of the supported recurring periods.
func (p RecurringPeriod) Valid() bool {
	switch p {
	case RecurringDaily, RecurringWeekly, RecurringMonthly, RecurringYearly:
		return true
	}
	return false
}

// StringList is a list of string tags stored as a JSON column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

// Transaction represents a financial record, either an expense or income.
// Amount is always stored non-negative; the debit/credit semantics are
// carried by Type, never by the amount's sign.
type Transaction struct {
	Base
	UserID        string          `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID    string          `gorm:"type:uuid;not null" json:"category_id"`
	Type          TransactionType `gorm:"not null" json:"type"`
	Amount        float64         `gorm:"not null" json:"amount"`
	Date          time.Time       `gorm:"not null;index" json:"date"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"payment_method"`
	Tags          StringList      `gorm:"type:text" json:"tags"`

	// Recurring series fields. RecurringPeriod and RecurringEndDate are only
	// meaningful when Recurring is true.
	Recurring        bool            `gorm:"not null;default:false" json:"recurring"`
	RecurringPeriod  RecurringPeriod `json:"recurring_period,omitempty"`
	RecurringEndDate *time.Time      `json:"recurring_end_date,omitempty"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// IsIncome reports whether the transaction represents income.
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// Signed returns the amount with sign applied: positive for income,
// negative for expenses. Used by the analytics engine only; the stored
// amount stays non-negative.
func (t *Transaction) Signed() float64 {
	if t.IsIncome() {
		return t.Amount
	}
	return -t.Amount
}
