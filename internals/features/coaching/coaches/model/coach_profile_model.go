package model

import (
	"github.com/google/uuid"

	userModel "karate_coaching_backend/internals/features/users/user/model"
)

// CoachProfileModel — PK = user id; keberadaan baris inilah yang
// menjadikan user seorang coach.
type CoachProfileModel struct {
	CoachID uuid.UUID `gorm:"type:uuid;primaryKey" json:"coach_id"`

	CoachData *userModel.UserModel `gorm:"foreignKey:CoachID;constraint:OnDelete:CASCADE" json:"coach_data,omitempty"`
}

func (CoachProfileModel) TableName() string { return "coach_profiles" }
