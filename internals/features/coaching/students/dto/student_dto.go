package dto

import (
	"github.com/google/uuid"
)

// UpdateStudentRequest — PATCH multipart: field profil student.
// Field user (nama, email, password, avatar) lewat endpoint users.
type UpdateStudentRequest struct {
	GroupID      *uuid.UUID `json:"group_id" form:"group_id"`
	SportLevelID *uuid.UUID `json:"sport_level_id" form:"sport_level_id"`
}

func (r *UpdateStudentRequest) BuildUpdateMap() map[string]interface{} {
	m := map[string]interface{}{}
	if r.GroupID != nil {
		m["group_id"] = *r.GroupID
	}
	if r.SportLevelID != nil {
		m["sport_level_id"] = *r.SportLevelID
	}
	return m
}
