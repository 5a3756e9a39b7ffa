package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	coachModel "karate_coaching_backend/internals/features/coaching/coaches/model"
	studentModel "karate_coaching_backend/internals/features/coaching/students/model"
)

type EventTypeModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:100;unique;not null" json:"name" validate:"required,min=1,max=100"`
}

func (EventTypeModel) TableName() string { return "event_types" }

func (m *EventTypeModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// EventModel — turnamen / attestasi / seminar milik satu coach.
// Natural key: nama + tipe + rentang tanggal + coach, unique index
// di DB (anti duplikat, bukan cuma pre-check).
type EventModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string         `gorm:"size:150;not null;uniqueIndex:uq_events_natural" json:"name" validate:"required,min=1,max=150"`
	TypeID    *uuid.UUID     `gorm:"type:uuid;uniqueIndex:uq_events_natural" json:"type_id,omitempty"`
	DateStart datatypes.Date `gorm:"not null;uniqueIndex:uq_events_natural" json:"date_start"`
	DateEnd   datatypes.Date `gorm:"not null;uniqueIndex:uq_events_natural" json:"date_end"`
	Location  *string        `gorm:"size:200" json:"location,omitempty"`
	CoachID   *uuid.UUID     `gorm:"type:uuid;uniqueIndex:uq_events_natural" json:"coach_id,omitempty"`

	Type  *EventTypeModel               `gorm:"foreignKey:TypeID;constraint:OnDelete:SET NULL" json:"type,omitempty"`
	Coach *coachModel.CoachProfileModel `gorm:"foreignKey:CoachID;constraint:OnDelete:SET NULL" json:"coach,omitempty"`
}

func (EventModel) TableName() string { return "events" }

func (m *EventModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// StudentEventModel — pendaftaran student ke event (composite PK).
type StudentEventModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;primaryKey" json:"student_id"`
	EventID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"event_id"`

	Student *studentModel.StudentProfileModel `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
	Event   *EventModel                       `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"event,omitempty"`
}

func (StudentEventModel) TableName() string { return "students_events" }
