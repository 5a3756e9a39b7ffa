package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationModel — tenant: satu клуб/sekolah karate.
// Kredensial payment provider (midtrans) per-organisasi, nullable.
type OrganizationModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string    `gorm:"size:100;unique;not null" json:"name" validate:"required,min=3,max=100"`
	Subdomain         string    `gorm:"size:50;unique;not null" json:"subdomain" validate:"required,min=2,max=50"`
	IsActive          bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	MidtransServerKey *string   `gorm:"size:255" json:"-"`
	MidtransClientKey *string   `gorm:"size:255" json:"-"`
}

func (OrganizationModel) TableName() string { return "organizations" }

func (m *OrganizationModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
