package dto

import "strings"

type CreateOrganizationRequest struct {
	Name              string  `json:"name" validate:"required,min=1,max=100"`
	Subdomain         string  `json:"subdomain" validate:"required,min=1,max=50,hostname"`
	MidtransServerKey *string `json:"midtrans_server_key"`
	MidtransClientKey *string `json:"midtrans_client_key"`
}

type UpdateOrganizationRequest struct {
	Name              *string `json:"name" validate:"omitempty,min=1,max=100"`
	Subdomain         *string `json:"subdomain" validate:"omitempty,min=1,max=50,hostname"`
	IsActive          *bool   `json:"is_active"`
	MidtransServerKey *string `json:"midtrans_server_key"`
	MidtransClientKey *string `json:"midtrans_client_key"`
}

func (r *CreateOrganizationRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Subdomain = strings.ToLower(strings.TrimSpace(r.Subdomain))
}

func (r *UpdateOrganizationRequest) Normalize() {
	if r.Name != nil {
		n := strings.TrimSpace(*r.Name)
		r.Name = &n
	}
	if r.Subdomain != nil {
		s := strings.ToLower(strings.TrimSpace(*r.Subdomain))
		r.Subdomain = &s
	}
}

func (r *UpdateOrganizationRequest) BuildUpdateMap() map[string]interface{} {
	m := map[string]interface{}{}
	if r.Name != nil {
		m["name"] = *r.Name
	}
	if r.Subdomain != nil {
		m["subdomain"] = *r.Subdomain
	}
	if r.IsActive != nil {
		m["is_active"] = *r.IsActive
	}
	if r.MidtransServerKey != nil {
		m["midtrans_server_key"] = *r.MidtransServerKey
	}
	if r.MidtransClientKey != nil {
		m["midtrans_client_key"] = *r.MidtransClientKey
	}
	return m
}
