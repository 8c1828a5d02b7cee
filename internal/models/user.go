package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Preferences is a small bag of per-user display settings stored as a
// JSON column.
type Preferences struct {
	Currency   string `json:"currency"`
	Theme      string `json:"theme"`
	DateFormat string `json:"date_format"`
}

// DefaultPreferences returns the preferences assigned to new users.
func DefaultPreferences() Preferences {
	return Preferences{
		Currency:   "USD",
		Theme:      "light",
		DateFormat: "2006-01-02",
	}
}

// Value implements driver.Valuer.
func (p Preferences) Value() (driver.Value, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (p *Preferences) Scan(value interface{}) error {
	if value == nil {
		*p = Preferences{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported type for Preferences: %T", value)
	}
}

// User represents an account holder. Password holds a bcrypt hash,
// never plaintext.
type User struct {
	Base
	Email       string      `gorm:"uniqueIndex;not null" json:"email"`
	Password    string      `gorm:"not null" json:"-"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	IsActive    bool        `gorm:"not null;default:true" json:"is_active"`
	Preferences Preferences `gorm:"type:text" json:"preferences"`
}
