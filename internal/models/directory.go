package models

import (
	"time"

	"github.com/google/uuid"
)

// Patient and Doctor records are managed by the profile service; this
// core only reads them for validation and display denormalization.

type Patient struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Address string `gorm:"size:255" json:"address"`
	NIC     string `gorm:"size:20" json:"nic"`
	Phone   string `gorm:"size:20" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Doctor struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name           string `gorm:"size:100;not null" json:"name"`
	Specialization string `gorm:"size:100" json:"specialization"`
	Phone          string `gorm:"size:20" json:"phone"`
	Email          string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
