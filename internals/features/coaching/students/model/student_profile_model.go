package model

import (
	"github.com/google/uuid"

	groupModel "karate_coaching_backend/internals/features/coaching/groups/model"
	refModel "karate_coaching_backend/internals/features/reference/model"
	userModel "karate_coaching_backend/internals/features/users/user/model"
)

// StudentProfileModel — PK = user id. coach_id dan group_id opsional;
// hapus group → group_id di-NULL-kan (bukan hapus baris student).
type StudentProfileModel struct {
	StudentID    uuid.UUID  `gorm:"type:uuid;primaryKey" json:"student_id"`
	CoachID      *uuid.UUID `gorm:"type:uuid;index" json:"coach_id,omitempty"`
	GroupID      *uuid.UUID `gorm:"type:uuid;index" json:"group_id,omitempty"`
	SportLevelID *uuid.UUID `gorm:"type:uuid" json:"sport_level_id,omitempty"`

	StudentData *userModel.UserModel       `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"student_data,omitempty"`
	Coach       *userModel.UserModel       `gorm:"foreignKey:CoachID;constraint:OnDelete:SET NULL" json:"coach,omitempty"`
	Group       *groupModel.GroupModel     `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"group,omitempty"`
	SportLevel  *refModel.SportLevelModel  `gorm:"foreignKey:SportLevelID;constraint:OnDelete:SET NULL" json:"sport_level,omitempty"`
}

func (StudentProfileModel) TableName() string { return "student_profiles" }
