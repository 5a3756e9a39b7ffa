package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ========== REQUEST DTOs ========== */

type CreateTrainingRequest struct {
	Name      string    `json:"name" validate:"required,min=1,max=100"`
	GroupID   uuid.UUID `json:"group_id" validate:"required"`
	Date      string    `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string    `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string    `json:"end_time" validate:"required,datetime=15:04"`
}

type UpdateTrainingRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=100"`
	Date      *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime *string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime   *string `json:"end_time" validate:"omitempty,datetime=15:04"`
}

func (r *CreateTrainingRequest) Normalize() { r.Name = strings.TrimSpace(r.Name) }

func (r *UpdateTrainingRequest) Normalize() {
	if r.Name != nil {
		n := strings.TrimSpace(*r.Name)
		r.Name = &n
	}
}

func (r *UpdateTrainingRequest) BuildUpdateMap() map[string]interface{} {
	m := map[string]interface{}{}
	if r.Name != nil {
		m["name"] = *r.Name
	}
	if r.Date != nil {
		if t, err := time.Parse("2006-01-02", *r.Date); err == nil {
			m["date"] = datatypes.Date(t)
		}
	}
	if r.StartTime != nil {
		m["start_time"] = *r.StartTime
	}
	if r.EndTime != nil {
		m["end_time"] = *r.EndTime
	}
	return m
}

// UpsertAttendanceRequest — satu training, banyak student sekaligus.
type UpsertAttendanceRequest struct {
	Items []AttendanceItem `json:"items" validate:"required,min=1,dive"`
}

type AttendanceItem struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	StatusID  uuid.UUID `json:"status_id" validate:"required"`
}
