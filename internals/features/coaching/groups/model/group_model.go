package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	coachModel "karate_coaching_backend/internals/features/coaching/coaches/model"
)

// GroupModel — kelompok latihan milik satu coach.
// Natural key (name, coach_id) dijaga unique index di DB, bukan cuma
// pre-check di controller.
type GroupModel struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string     `gorm:"size:100;not null;uniqueIndex:uq_groups_name_coach" json:"name" validate:"required,min=1,max=100"`
	CoachID *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_groups_name_coach" json:"coach_id,omitempty"`

	Coach *coachModel.CoachProfileModel `gorm:"foreignKey:CoachID;constraint:OnDelete:SET NULL" json:"coach,omitempty"`
}

func (GroupModel) TableName() string { return "groups" }

func (m *GroupModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
