package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Lead pipeline statuses. The set is closed; anything else is rejected at
// validation time.
const (
	LeadStatusNew       = "New"
	LeadStatusContacted = "Contacted"
	LeadStatusConverted = "Converted"
	LeadStatusLost      = "Lost"

	// LeadStatusFilterAll is accepted by list filters and means "no status filter".
	// It is never a valid stored status.
	LeadStatusFilterAll = "All"
)

// LeadStatuses lists every valid stored status in display order.
var LeadStatuses = []string{LeadStatusNew, LeadStatusContacted, LeadStatusConverted, LeadStatusLost}

type Lead struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"customerId"`
	Title       string          `gorm:"type:varchar(255);not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Status      string          `gorm:"type:varchar(20);not null;default:'New';index" json:"status"`
	Value       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"value"`
	CreatedAt   time.Time       `gorm:"not null;index" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updatedAt"`
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}

	if l.Status == "" {
		l.Status = LeadStatusNew
	}

	now := time.Now()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	if l.UpdatedAt.IsZero() {
		l.UpdatedAt = now
	}

	return l.Validate()
}

func (l *Lead) Validate() error {
	if l.CustomerID == uuid.Nil {
		return errors.New("customer ID is required")
	}

	if l.Title == "" {
		return errors.New("title is required")
	}

	if !IsValidLeadStatus(l.Status) {
		return fmt.Errorf("invalid lead status: %s", l.Status)
	}

	if l.Value.IsNegative() {
		return errors.New("value cannot be negative")
	}

	return nil
}

func (l *Lead) IsConverted() bool {
	return l.Status == LeadStatusConverted
}

func (l *Lead) IsOpen() bool {
	return l.Status == LeadStatusNew || l.Status == LeadStatusContacted
}

func (l *Lead) TableName() string {
	return "leads"
}

// IsValidLeadStatus reports whether s is one of the stored lead statuses.
// The "All" filter sentinel is not a stored status.
func IsValidLeadStatus(s string) bool {
	for _, status := range LeadStatuses {
		if s == status {
			return true
		}
	}
	return false
}
