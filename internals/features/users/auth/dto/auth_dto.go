package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	userModel "karate_coaching_backend/internals/features/users/user/model"
)

/* ========== REQUEST DTOs ========== */

// RegisterCoachRequest: password TIDAK dikirim client —
// digenerate server dan dikirim via email.
type RegisterCoachRequest struct {
	LastName    string  `json:"last_name" validate:"required,min=1,max=64"`
	FirstName   string  `json:"first_name" validate:"required,min=1,max=30"`
	Patronymic  *string `json:"patronymic" validate:"omitempty,max=30"`
	Email       string  `json:"email" validate:"required,email"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=20"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	GenderID    *uuid.UUID `json:"gender_id"`
}

// RegisterStudentRequest: dipakai coach untuk menambahkan student
// ke daftar binaannya.
type RegisterStudentRequest struct {
	LastName     string     `json:"last_name" form:"last_name" validate:"required,min=1,max=64"`
	FirstName    string     `json:"first_name" form:"first_name" validate:"required,min=1,max=30"`
	Patronymic   *string    `json:"patronymic" form:"patronymic" validate:"omitempty,max=30"`
	Email        *string    `json:"email" form:"email" validate:"omitempty,email"`
	PhoneNumber  *string    `json:"phone_number" form:"phone_number" validate:"omitempty,max=20"`
	DateOfBirth  *string    `json:"date_of_birth" form:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	GenderID     *uuid.UUID `json:"gender_id" form:"gender_id"`
	GroupID      *uuid.UUID `json:"group_id" form:"group_id"`
	SportLevelID *uuid.UUID `json:"sport_level_id" form:"sport_level_id"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Code           string `json:"code" validate:"required,len=6,numeric"`
	NewPassword    string `json:"new_password" validate:"required,min=8,max=128"`
	RepeatPassword string `json:"repeat_password" validate:"required,eqfield=NewPassword"`
}

// Normalize merapikan email (lowercase + trim) sebelum query.
func (r *LoginRequest) Normalize()          { r.Email = normalizeEmail(r.Email) }
func (r *RegisterCoachRequest) Normalize()  { r.Email = normalizeEmail(r.Email) }
func (r *ForgotPasswordRequest) Normalize() { r.Email = normalizeEmail(r.Email) }
func (r *ResetPasswordRequest) Normalize()  { r.Email = normalizeEmail(r.Email) }

func (r *RegisterStudentRequest) Normalize() {
	if r.Email != nil {
		e := normalizeEmail(*r.Email)
		if e == "" {
			r.Email = nil
		} else {
			r.Email = &e
		}
	}
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

/* ========== RESPONSE DTOs ========== */

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	LastName    string     `json:"last_name"`
	FirstName   string     `json:"first_name"`
	Patronymic  *string    `json:"patronymic,omitempty"`
	Email       *string    `json:"email,omitempty"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	DateJoined  time.Time  `json:"date_joined"`
	DateOfBirth *string    `json:"date_of_birth,omitempty"`
	AvatarURL   string     `json:"avatar_url"`
	GenderID    *uuid.UUID `json:"gender_id,omitempty"`
	Roles       []string   `json:"roles"`
}

func NewUserResponse(m *userModel.UserModel) UserResponse {
	roles := make([]string, 0, len(m.Roles))
	for _, r := range m.Roles {
		roles = append(roles, r.Code)
	}
	var dob *string
	if m.DateOfBirth != nil {
		s := time.Time(*m.DateOfBirth).Format("2006-01-02")
		dob = &s
	}
	return UserResponse{
		ID:          m.ID,
		LastName:    m.LastName,
		FirstName:   m.FirstName,
		Patronymic:  m.Patronymic,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		DateJoined:  m.DateJoined,
		DateOfBirth: dob,
		AvatarURL:   m.AvatarURL,
		GenderID:    m.GenderID,
		Roles:       roles,
	}
}
