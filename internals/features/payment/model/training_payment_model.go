package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "karate_coaching_backend/internals/features/coaching/students/model"
	orgModel "karate_coaching_backend/internals/features/organizations/model"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
	PaymentStatusExpired = "expired"
)

// TrainingPaymentModel — tagihan iuran latihan via Midtrans Snap.
type TrainingPaymentModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	StudentID      uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	Amount         int64     `gorm:"not null" json:"amount" validate:"required,min=1"`
	Description    *string   `gorm:"size:255" json:"description,omitempty"`
	Status         string    `gorm:"size:20;not null;default:pending" json:"status"`
	OrderID        string    `gorm:"size:100;unique;not null" json:"order_id"`
	SnapToken      *string   `gorm:"size:255" json:"snap_token,omitempty"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Organization *orgModel.OrganizationModel       `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"organization,omitempty"`
	Student      *studentModel.StudentProfileModel `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
}

func (TrainingPaymentModel) TableName() string { return "training_payments" }

func (m *TrainingPaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
