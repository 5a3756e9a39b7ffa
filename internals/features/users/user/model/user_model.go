package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	orgModel "karate_coaching_backend/internals/features/organizations/model"
	refModel "karate_coaching_backend/internals/features/reference/model"
)

// UserModel merepresentasikan tabel users: identitas tunggal untuk
// coach maupun student (role lewat user_roles + profil masing-masing).
type UserModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID *uuid.UUID      `gorm:"type:uuid" json:"organization_id,omitempty"`
	LastName       string          `gorm:"size:64;not null" json:"last_name" validate:"required,max=64"`
	FirstName      string          `gorm:"size:30;not null" json:"first_name" validate:"required,max=30"`
	Patronymic     *string         `gorm:"size:30" json:"patronymic,omitempty"`
	Email          *string         `gorm:"size:254;unique" json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber    *string         `gorm:"size:20" json:"phone_number,omitempty"`
	Password       string          `gorm:"size:150" json:"-"`
	DateJoined     time.Time       `gorm:"autoCreateTime" json:"date_joined"`
	DateOfBirth    *datatypes.Date `json:"date_of_birth,omitempty"`
	AvatarURL      string          `gorm:"size:1000" json:"avatar_url"`
	GenderID       *uuid.UUID      `gorm:"type:uuid" json:"gender_id,omitempty"`

	Organization *orgModel.OrganizationModel `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"organization,omitempty"`
	Gender       *refModel.GenderModel       `gorm:"foreignKey:GenderID;constraint:OnDelete:SET NULL" json:"gender,omitempty"`
	Roles        []RoleModel                 `gorm:"many2many:user_roles" json:"roles,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// FullName dipakai di email & payment display.
func (m *UserModel) FullName() string {
	if m.Patronymic != nil && *m.Patronymic != "" {
		return m.LastName + " " + m.FirstName + " " + *m.Patronymic
	}
	return m.LastName + " " + m.FirstName
}
