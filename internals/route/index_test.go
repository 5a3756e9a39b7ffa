package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"karate_coaching_backend/internals/configs"
	userModel "karate_coaching_backend/internals/features/users/user/model"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	configs.JWTSecret = "routing-test-secret"

	dsn := "file:" + uuid.New().String() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&userModel.RoleModel{},
		&userModel.UserRoleModel{},
	))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	app := fiber.New()
	SetupRoutes(app, db)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body fiber.Map) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(fiber.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func respMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Message
}

// Login tanpa Authorization header harus sampai ke handler-nya,
// bukan ditolak JWT middleware di depan pintu.
func TestLoginReachableWithoutToken(t *testing.T) {
	app := setupApp(t)

	resp := postJSON(t, app, "/api/auth/login", fiber.Map{
		"email":    "nobody@test.local",
		"password": "whatever123",
	})
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Email atau password salah", respMessage(t, resp))
}

func TestPasswordResetReachableWithoutToken(t *testing.T) {
	app := setupApp(t)

	// body kosong → validasi handler (400), bukan 401 middleware
	resp := postJSON(t, app, "/api/auth/password/reset", fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// Webhook Midtrans masuk tanpa token; signature salah dibalas 403.
func TestPaymentNotificationReachableWithoutToken(t *testing.T) {
	app := setupApp(t)

	resp := postJSON(t, app, "/api/payments/notification", fiber.Map{
		"order_id":      "trn-" + uuid.New().String(),
		"status_code":   "200",
		"gross_amount":  "1000.00",
		"signature_key": "bukan-signature-asli",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

// Prefix protected tetap menolak request tanpa token.
func TestProtectedPrefixesRejectWithoutToken(t *testing.T) {
	app := setupApp(t)

	for _, path := range []string{
		"/api/auth/me",
		"/api/groups/",
		"/api/results/",
		"/api/payments/",
		"/api/reference/genders",
	} {
		req := httptest.NewRequest(fiber.MethodGet, path, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
	}
}
