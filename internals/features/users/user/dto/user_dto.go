package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UpdateUserRequest — PATCH multipart: hanya field yang dikirim yang
// diubah (pointer = tidak dikirim ≠ dikirim kosong).
type UpdateUserRequest struct {
	LastName       *string    `json:"last_name" form:"last_name" validate:"omitempty,min=1,max=64"`
	FirstName      *string    `json:"first_name" form:"first_name" validate:"omitempty,min=1,max=30"`
	Patronymic     *string    `json:"patronymic" form:"patronymic" validate:"omitempty,max=30"`
	Email          *string    `json:"email" form:"email" validate:"omitempty,email"`
	PhoneNumber    *string    `json:"phone_number" form:"phone_number" validate:"omitempty,max=20"`
	DateOfBirth    *string    `json:"date_of_birth" form:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	GenderID       *uuid.UUID `json:"gender_id" form:"gender_id"`
	OrganizationID *uuid.UUID `json:"organization_id" form:"organization_id"`
	Password       *string    `json:"password" form:"password" validate:"omitempty,min=8,max=128"`
	RepeatPassword *string    `json:"repeat_password" form:"repeat_password"`
}

func (r *UpdateUserRequest) Normalize() {
	if r.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &e
	}
}

// BuildUpdateMap menyusun map kolom→nilai untuk GORM Updates.
// Password TIDAK masuk sini (dihash dulu oleh handler).
// Map kosong = tidak ada field yang diubah.
func (r *UpdateUserRequest) BuildUpdateMap() map[string]interface{} {
	m := map[string]interface{}{}
	if r.LastName != nil {
		m["last_name"] = *r.LastName
	}
	if r.FirstName != nil {
		m["first_name"] = *r.FirstName
	}
	if r.Patronymic != nil {
		m["patronymic"] = *r.Patronymic
	}
	if r.Email != nil {
		m["email"] = *r.Email
	}
	if r.PhoneNumber != nil {
		m["phone_number"] = *r.PhoneNumber
	}
	if r.GenderID != nil {
		m["gender_id"] = *r.GenderID
	}
	// coach menautkan dirinya ke organisasi (syarat pembuatan tagihan)
	if r.OrganizationID != nil {
		m["organization_id"] = *r.OrganizationID
	}
	if r.DateOfBirth != nil {
		if t, err := time.Parse("2006-01-02", *r.DateOfBirth); err == nil {
			m["date_of_birth"] = datatypes.Date(t)
		}
	}
	return m
}
