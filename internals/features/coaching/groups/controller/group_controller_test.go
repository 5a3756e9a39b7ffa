package controller

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

	coachModel "karate_coaching_backend/internals/features/coaching/coaches/model"
	groupModel "karate_coaching_backend/internals/features/coaching/groups/model"
	studentModel "karate_coaching_backend/internals/features/coaching/students/model"
	userModel "karate_coaching_backend/internals/features/users/user/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.New().String() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&coachModel.CoachProfileModel{},
		&groupModel.GroupModel{},
		&studentModel.StudentProfileModel{},
	))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

// app dengan user_id dipaksa lewat Locals, tanpa JWT sungguhan
func setupApp(db *gorm.DB, callerID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", callerID.String())
		return c.Next()
	})
	ctl := NewGroupController(db)
	g := app.Group("/api/groups")
	g.Get("/", ctl.GetGroups)
	g.Post("/", ctl.CreateGroup)
	g.Get("/:id", ctl.GetGroup)
	g.Patch("/:id", ctl.UpdateGroup)
	g.Delete("/:id", ctl.DeleteGroup)
	g.Post("/:id/students/:student_id", ctl.AddStudentToGroup)
	g.Delete("/:id/students/:student_id", ctl.RemoveStudentFromGroup)
	return app
}

func createCoach(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	email := uuid.New().String() + "@test.local"
	u := userModel.UserModel{LastName: "Петров", FirstName: "Пётр", Email: &email}
	require.NoError(t, db.Create(&u).Error)
	require.NoError(t, db.Create(&coachModel.CoachProfileModel{CoachID: u.ID}).Error)
	return u.ID
}

func createStudent(t *testing.T, db *gorm.DB, coachID uuid.UUID) uuid.UUID {
	t.Helper()
	email := uuid.New().String() + "@test.local"
	u := userModel.UserModel{LastName: "Сидоров", FirstName: "Иван", Email: &email}
	require.NoError(t, db.Create(&u).Error)
	require.NoError(t, db.Create(&studentModel.StudentProfileModel{
		StudentID: u.ID,
		CoachID:   &coachID,
	}).Error)
	return u.ID
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCreateGroup_DuplicateNameConflict(t *testing.T) {
	db := setupDB(t)
	coachID := createCoach(t, db)
	app := setupApp(db, coachID)

	resp := doJSON(t, app, fiber.MethodPost, "/api/groups/", fiber.Map{"name": "Юниоры"})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// nama sama + coach sama → unique index menolak
	resp = doJSON(t, app, fiber.MethodPost, "/api/groups/", fiber.Map{"name": "Юниоры"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// coach lain boleh pakai nama yang sama
	otherApp := setupApp(db, createCoach(t, db))
	resp = doJSON(t, otherApp, fiber.MethodPost, "/api/groups/", fiber.Map{"name": "Юниоры"})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestGetGroup_NotFoundAndForbidden(t *testing.T) {
	db := setupDB(t)
	ownerID := createCoach(t, db)
	group := groupModel.GroupModel{Name: "Старшие", CoachID: &ownerID}
	require.NoError(t, db.Create(&group).Error)

	otherApp := setupApp(db, createCoach(t, db))

	resp := doJSON(t, otherApp, fiber.MethodGet, "/api/groups/"+uuid.New().String(), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, otherApp, fiber.MethodGet, "/api/groups/"+group.ID.String(), nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestUpdateGroup_EmptyBodyRejected(t *testing.T) {
	db := setupDB(t)
	coachID := createCoach(t, db)
	app := setupApp(db, coachID)

	group := groupModel.GroupModel{Name: "Младшие", CoachID: &coachID}
	require.NoError(t, db.Create(&group).Error)

	resp := doJSON(t, app, fiber.MethodPatch, "/api/groups/"+group.ID.String(), fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeleteGroup_DetachesStudents(t *testing.T) {
	db := setupDB(t)
	coachID := createCoach(t, db)
	app := setupApp(db, coachID)

	group := groupModel.GroupModel{Name: "Средние", CoachID: &coachID}
	require.NoError(t, db.Create(&group).Error)

	studentID := createStudent(t, db, coachID)
	require.NoError(t, db.Model(&studentModel.StudentProfileModel{}).
		Where("student_id = ?", studentID).
		Update("group_id", group.ID).Error)

	resp := doJSON(t, app, fiber.MethodDelete, "/api/groups/"+group.ID.String(), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// student tetap ada, group_id di-NULL-kan
	var s studentModel.StudentProfileModel
	require.NoError(t, db.First(&s, "student_id = ?", studentID).Error)
	assert.Nil(t, s.GroupID)
}

func TestAddAndRemoveStudent(t *testing.T) {
	db := setupDB(t)
	coachID := createCoach(t, db)
	app := setupApp(db, coachID)

	group := groupModel.GroupModel{Name: "Новички", CoachID: &coachID}
	require.NoError(t, db.Create(&group).Error)
	studentID := createStudent(t, db, coachID)

	path := "/api/groups/" + group.ID.String() + "/students/" + studentID.String()

	resp := doJSON(t, app, fiber.MethodPost, path, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// sekali lagi → sudah di grup
	resp = doJSON(t, app, fiber.MethodPost, path, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, path, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// sudah keluar → 404
	resp = doJSON(t, app, fiber.MethodDelete, path, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
