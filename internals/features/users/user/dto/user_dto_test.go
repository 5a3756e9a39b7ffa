package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestUpdateUserRequest_BuildUpdateMap_Empty(t *testing.T) {
	var req UpdateUserRequest
	assert.Empty(t, req.BuildUpdateMap(), "tanpa field terisi, map harus kosong")
}

func TestUpdateUserRequest_BuildUpdateMap_PartialFields(t *testing.T) {
	name := "Иванов"
	phone := "+79001234567"
	req := UpdateUserRequest{LastName: &name, PhoneNumber: &phone}

	m := req.BuildUpdateMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "Иванов", m["last_name"])
	assert.Equal(t, "+79001234567", m["phone_number"])
	assert.NotContains(t, m, "email")
}

func TestUpdateUserRequest_BuildUpdateMap_OrganizationID(t *testing.T) {
	orgID := uuid.New()
	req := UpdateUserRequest{OrganizationID: &orgID}

	m := req.BuildUpdateMap()
	assert.Equal(t, orgID, m["organization_id"])
}

func TestUpdateUserRequest_BuildUpdateMap_SkipsPassword(t *testing.T) {
	pass := "new-password-123"
	req := UpdateUserRequest{Password: &pass}
	// password di-hash dulu oleh handler, bukan masuk map mentah
	assert.Empty(t, req.BuildUpdateMap())
}

func TestUpdateUserRequest_BuildUpdateMap_DateOfBirth(t *testing.T) {
	dob := "2005-03-14"
	req := UpdateUserRequest{DateOfBirth: &dob}

	m := req.BuildUpdateMap()
	d, ok := m["date_of_birth"].(datatypes.Date)
	assert.True(t, ok)
	assert.NotZero(t, d)

	bad := "14.03.2005"
	reqBad := UpdateUserRequest{DateOfBirth: &bad}
	assert.NotContains(t, reqBad.BuildUpdateMap(), "date_of_birth")
}

func TestUpdateUserRequest_Normalize(t *testing.T) {
	email := "  User@Example.COM "
	req := UpdateUserRequest{Email: &email}
	req.Normalize()
	assert.Equal(t, "user@example.com", *req.Email)
}
