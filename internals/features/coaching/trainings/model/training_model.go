package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	coachModel "karate_coaching_backend/internals/features/coaching/coaches/model"
	groupModel "karate_coaching_backend/internals/features/coaching/groups/model"
	studentModel "karate_coaching_backend/internals/features/coaching/students/model"
)

// TrainingModel — sesi latihan satu grup pada tanggal + jam tertentu.
type TrainingModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name" validate:"required,min=1,max=100"`
	GroupID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"group_id"`
	CoachID   *uuid.UUID     `gorm:"type:uuid;index" json:"coach_id,omitempty"`
	Date      datatypes.Date `gorm:"not null" json:"date"`
	StartTime string         `gorm:"type:time;not null" json:"start_time"` // "18:00"
	EndTime   string         `gorm:"type:time;not null" json:"end_time"`

	Group *groupModel.GroupModel        `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"group,omitempty"`
	Coach *coachModel.CoachProfileModel `gorm:"foreignKey:CoachID;constraint:OnDelete:CASCADE" json:"coach,omitempty"`
}

func (TrainingModel) TableName() string { return "trainings" }

func (m *TrainingModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type AttendanceStatusModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:100;unique;not null" json:"name"`
}

func (AttendanceStatusModel) TableName() string { return "attendance_statuses" }

func (m *AttendanceStatusModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// AttendanceModel — kehadiran student × training (composite PK).
type AttendanceModel struct {
	StudentID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"student_id"`
	TrainingID uuid.UUID `gorm:"type:uuid;primaryKey" json:"training_id"`
	StatusID   uuid.UUID `gorm:"type:uuid;not null" json:"status_id"`

	Student  *studentModel.StudentProfileModel `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
	Training *TrainingModel                    `gorm:"foreignKey:TrainingID;constraint:OnDelete:CASCADE" json:"training,omitempty"`
	Status   *AttendanceStatusModel            `gorm:"foreignKey:StatusID;constraint:OnDelete:CASCADE" json:"status,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendance" }
