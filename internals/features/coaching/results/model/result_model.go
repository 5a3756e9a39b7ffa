package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "karate_coaching_backend/internals/features/coaching/students/model"
	eventModel "karate_coaching_backend/internals/features/coaching/events/model"
	refModel "karate_coaching_backend/internals/features/reference/model"
)

type PlaceModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:100;unique;not null" json:"name"`
}

func (PlaceModel) TableName() string { return "places" }

func (m *PlaceModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// ResultModel — hasil pertandingan student di satu event.
// SportCode membedakan varian: kolom kumite hanya terisi untuk
// "karate_kumite". Natural key lama (event, student, place, skor)
// dijaga unique index supaya hasil ganda ketahan di DB, bukan cuma
// pre-check controller.
type ResultModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID   *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_results_natural" json:"student_id,omitempty"`
	EventID     *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_results_natural" json:"event_id,omitempty"`
	SportTypeID uuid.UUID  `gorm:"type:uuid;not null" json:"sport_type_id"`
	SportCode   string     `gorm:"size:50;not null;default:karate_kumite" json:"sport_code"`
	IsVisited   bool       `gorm:"not null;default:true" json:"is_visited"`

	AgeCategoryID    *uuid.UUID `gorm:"type:uuid" json:"age_category_id,omitempty"`
	WeightCategoryID *uuid.UUID `gorm:"type:uuid" json:"weight_category_id,omitempty"`

	// Kolom varian kumite (nullable untuk varian lain).
	PlaceID          *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_results_natural" json:"place_id,omitempty"`
	NumberOfFights   *int       `gorm:"uniqueIndex:uq_results_natural" json:"number_of_fights,omitempty"`
	NumberOfWins     *int       `json:"number_of_wins,omitempty"`
	NumberOfDefeats  *int       `json:"number_of_defeats,omitempty"`
	PointsScored     *int       `gorm:"uniqueIndex:uq_results_natural" json:"points_scored,omitempty"`
	PointsMissed     *int       `gorm:"uniqueIndex:uq_results_natural" json:"points_missed,omitempty"`
	AverageScore     *float64   `gorm:"type:numeric(5,2)" json:"average_score,omitempty"`
	Efficiency       *float64   `gorm:"type:numeric(5,2)" json:"efficiency,omitempty"`

	Student        *studentModel.StudentProfileModel `gorm:"foreignKey:StudentID;constraint:OnDelete:SET NULL" json:"student,omitempty"`
	Event          *eventModel.EventModel            `gorm:"foreignKey:EventID;constraint:OnDelete:SET NULL" json:"event,omitempty"`
	SportType      *refModel.SportTypeModel          `gorm:"foreignKey:SportTypeID;constraint:OnDelete:RESTRICT" json:"sport_type,omitempty"`
	AgeCategory    *refModel.AgeCategoryModel        `gorm:"foreignKey:AgeCategoryID;constraint:OnDelete:SET NULL" json:"age_category,omitempty"`
	WeightCategory *refModel.WeightCategoryModel     `gorm:"foreignKey:WeightCategoryID;constraint:OnDelete:SET NULL" json:"weight_category,omitempty"`
	Place          *PlaceModel                       `gorm:"foreignKey:PlaceID;constraint:OnDelete:SET NULL" json:"place,omitempty"`
}

func (ResultModel) TableName() string { return "results" }

func (m *ResultModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// ResultCommentModel — catatan coach/student atas satu hasil.
type ResultCommentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ResultID   uuid.UUID `gorm:"type:uuid;not null;index" json:"result_id"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null" json:"author_id"`
	AuthorRole string    `gorm:"size:20;not null" json:"author_role"` // "coach" / "student"
	Body       string    `gorm:"size:2000;not null" json:"body" validate:"required,min=1,max=2000"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	Result *ResultModel `gorm:"foreignKey:ResultID;constraint:OnDelete:CASCADE" json:"result,omitempty"`
}

func (ResultCommentModel) TableName() string { return "result_comments" }

func (m *ResultCommentModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
