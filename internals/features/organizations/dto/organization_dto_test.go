package dto

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

var validate = validator.New()

// batas DTO mengikuti lebar kolom (name 100, subdomain 50) supaya
// input panjang ditolak di validasi, bukan meledak di database.
func TestCreateOrganizationRequest_NameTooLong(t *testing.T) {
	req := CreateOrganizationRequest{
		Name:      strings.Repeat("а", 120),
		Subdomain: "dojo",
	}
	assert.Error(t, validate.Struct(&req))

	req.Name = strings.Repeat("а", 100)
	assert.NoError(t, validate.Struct(&req))
}

func TestUpdateOrganizationRequest_SubdomainTooLong(t *testing.T) {
	sub := strings.Repeat("a", 60)
	req := UpdateOrganizationRequest{Subdomain: &sub}
	assert.Error(t, validate.Struct(&req))

	ok := strings.Repeat("a", 50)
	req.Subdomain = &ok
	assert.NoError(t, validate.Struct(&req))
}

func TestOrganizationRequest_Normalize(t *testing.T) {
	req := CreateOrganizationRequest{Name: "  Кёкусинкай  ", Subdomain: " DOJO "}
	req.Normalize()
	assert.Equal(t, "Кёкусинкай", req.Name)
	assert.Equal(t, "dojo", req.Subdomain)
}
