package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoleModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:50;unique;not null" json:"name"`
	Code string    `gorm:"size:50;unique;not null" json:"code"` // coach_role / student_role
}

func (RoleModel) TableName() string { return "roles" }

func (m *RoleModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// UserRoleModel — join many-to-many users ↔ roles (composite PK).
type UserRoleModel struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	RoleID uuid.UUID `gorm:"type:uuid;primaryKey" json:"role_id"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Role *RoleModel `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE" json:"role,omitempty"`
}

func (UserRoleModel) TableName() string { return "user_roles" }
