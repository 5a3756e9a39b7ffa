package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ========== REQUEST DTOs ========== */

type CreateEventRequest struct {
	Name      string     `json:"name" validate:"required,min=1,max=150"`
	TypeID    uuid.UUID  `json:"type_id" validate:"required"`
	DateStart string     `json:"date_start" validate:"required,datetime=2006-01-02"`
	DateEnd   string     `json:"date_end" validate:"required,datetime=2006-01-02"`
	Location  *string    `json:"location" validate:"omitempty,max=200"`
}

type UpdateEventRequest struct {
	Name      *string    `json:"name" validate:"omitempty,min=1,max=150"`
	TypeID    *uuid.UUID `json:"type_id"`
	DateStart *string    `json:"date_start" validate:"omitempty,datetime=2006-01-02"`
	DateEnd   *string    `json:"date_end" validate:"omitempty,datetime=2006-01-02"`
	Location  *string    `json:"location" validate:"omitempty,max=200"`
}

func (r *CreateEventRequest) Normalize() { r.Name = strings.TrimSpace(r.Name) }

func (r *UpdateEventRequest) Normalize() {
	if r.Name != nil {
		n := strings.TrimSpace(*r.Name)
		r.Name = &n
	}
}

func (r *UpdateEventRequest) BuildUpdateMap() map[string]interface{} {
	m := map[string]interface{}{}
	if r.Name != nil {
		m["name"] = *r.Name
	}
	if r.TypeID != nil {
		m["type_id"] = *r.TypeID
	}
	if r.DateStart != nil {
		if t, err := time.Parse("2006-01-02", *r.DateStart); err == nil {
			m["date_start"] = datatypes.Date(t)
		}
	}
	if r.DateEnd != nil {
		if t, err := time.Parse("2006-01-02", *r.DateEnd); err == nil {
			m["date_end"] = datatypes.Date(t)
		}
	}
	if r.Location != nil {
		m["location"] = *r.Location
	}
	return m
}
