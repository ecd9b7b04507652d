package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FirstName string    `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName  string    `gorm:"type:varchar(100);not null" json:"lastName"`
	Email     string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone     string    `gorm:"type:varchar(30)" json:"phone"`
	Company   string    `gorm:"type:varchar(255);index" json:"company"`
	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`

	Leads []Lead `gorm:"foreignKey:CustomerID" json:"-"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

func (c *Customer) Validate() error {
	if c.FirstName == "" {
		return errors.New("first name is required")
	}

	if c.LastName == "" {
		return errors.New("last name is required")
	}

	if c.Email == "" {
		return errors.New("email is required")
	}

	if !emailRegex.MatchString(c.Email) {
		return errors.New("invalid email format")
	}

	return nil
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

func (c *Customer) TableName() string {
	return "customers"
}
