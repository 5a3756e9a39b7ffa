package dto

import (
	"strings"
)

/* ========== REQUEST DTOs ========== */

type CreateGroupRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type UpdateGroupRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

func (r *CreateGroupRequest) Normalize() { r.Name = strings.TrimSpace(r.Name) }

func (r *UpdateGroupRequest) Normalize() {
	if r.Name != nil {
		n := strings.TrimSpace(*r.Name)
		r.Name = &n
	}
}

// BuildUpdateMap — map kosong berarti tidak ada yang diubah.
func (r *UpdateGroupRequest) BuildUpdateMap() map[string]interface{} {
	m := map[string]interface{}{}
	if r.Name != nil {
		m["name"] = *r.Name
	}
	return m
}
