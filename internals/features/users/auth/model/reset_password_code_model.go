package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "karate_coaching_backend/internals/features/users/user/model"
)

// Masa berlaku kode reset password.
const ResetCodeTTL = 24 * time.Hour

// ResetPasswordCodeModel — kode 6 digit sekali pakai, kadaluarsa 24 jam.
type ResetPasswordCodeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Code      string    `gorm:"size:6;not null;index" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	IsUsed    bool      `gorm:"not null;default:false" json:"is_used"`

	User *userModel.UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ResetPasswordCodeModel) TableName() string { return "reset_password_codes" }

func (m *ResetPasswordCodeModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// IsExpired: lewat 24 jam dari created_at.
func (m *ResetPasswordCodeModel) IsExpired(now time.Time) bool {
	return m.CreatedAt.Add(ResetCodeTTL).Before(now)
}
