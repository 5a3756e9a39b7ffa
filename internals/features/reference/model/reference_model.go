package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tabel lookup kecil; dirujuk lewat FK dari users/results/categories.

type GenderModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:20;unique;not null" json:"name"`
}

func (GenderModel) TableName() string { return "genders" }

func (m *GenderModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type SportTypeModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:100;unique;not null" json:"name"`
	Code string    `gorm:"size:100;unique;not null" json:"code"`
}

func (SportTypeModel) TableName() string { return "sport_types" }

func (m *SportTypeModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type AgeCategoryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        *string    `gorm:"size:50" json:"name,omitempty"` // contoh: "14-15 лет", "18+"
	MinAge      int        `gorm:"not null" json:"min_age"`
	MaxAge      *int       `json:"max_age,omitempty"` // nil — tanpa batas atas
	SportTypeID uuid.UUID  `gorm:"type:uuid;not null" json:"sport_type_id"`
	GenderID    *uuid.UUID `gorm:"type:uuid" json:"gender_id,omitempty"`

	SportType *SportTypeModel `gorm:"foreignKey:SportTypeID;constraint:OnDelete:CASCADE" json:"sport_type,omitempty"`
	Gender    *GenderModel    `gorm:"foreignKey:GenderID;constraint:OnDelete:CASCADE" json:"gender,omitempty"`
}

func (AgeCategoryModel) TableName() string { return "age_categories" }

func (m *AgeCategoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type WeightCategoryModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          *string   `gorm:"size:50" json:"name,omitempty"` // contoh: "до 60 кг"
	MaxWeight     *int      `json:"max_weight,omitempty"`
	AgeCategoryID uuid.UUID `gorm:"type:uuid;not null" json:"age_category_id"`
	GenderID      uuid.UUID `gorm:"type:uuid;not null" json:"gender_id"`

	AgeCategory *AgeCategoryModel `gorm:"foreignKey:AgeCategoryID;constraint:OnDelete:CASCADE" json:"age_category,omitempty"`
	Gender      *GenderModel      `gorm:"foreignKey:GenderID;constraint:OnDelete:CASCADE" json:"gender,omitempty"`
}

func (WeightCategoryModel) TableName() string { return "weight_categories" }

func (m *WeightCategoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// SportLevelModel — tingkatan (kyu/dan) sebagai reference data.
type SportLevelModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:50;unique;not null" json:"name"`
	Rank int       `gorm:"not null;default:0" json:"rank"`
}

func (SportLevelModel) TableName() string { return "sport_levels" }

func (m *SportLevelModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
