package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	coachModel "karate_coaching_backend/internals/features/coaching/coaches/model"
	eventModel "karate_coaching_backend/internals/features/coaching/events/model"
	resultModel "karate_coaching_backend/internals/features/coaching/results/model"
	studentModel "karate_coaching_backend/internals/features/coaching/students/model"
	refModel "karate_coaching_backend/internals/features/reference/model"
	userModel "karate_coaching_backend/internals/features/users/user/model"
)

type fixture struct {
	db          *gorm.DB
	app         *fiber.App
	coachID     uuid.UUID
	studentID   uuid.UUID
	eventID     uuid.UUID
	sportTypeID uuid.UUID
}

func setupFixture(t *testing.T) *fixture {
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
		&studentModel.StudentProfileModel{},
		&refModel.SportTypeModel{},
		&eventModel.EventTypeModel{},
		&eventModel.EventModel{},
		&resultModel.PlaceModel{},
		&resultModel.ResultModel{},
		&resultModel.ResultCommentModel{},
	))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	coachEmail := uuid.New().String() + "@test.local"
	coach := userModel.UserModel{LastName: "Петров", FirstName: "Пётр", Email: &coachEmail}
	require.NoError(t, db.Create(&coach).Error)
	require.NoError(t, db.Create(&coachModel.CoachProfileModel{CoachID: coach.ID}).Error)

	studentEmail := uuid.New().String() + "@test.local"
	student := userModel.UserModel{LastName: "Сидоров", FirstName: "Иван", Email: &studentEmail}
	require.NoError(t, db.Create(&student).Error)
	require.NoError(t, db.Create(&studentModel.StudentProfileModel{
		StudentID: student.ID,
		CoachID:   &coach.ID,
	}).Error)

	st := refModel.SportTypeModel{Name: "Кумитэ", Code: "karate_kumite"}
	require.NoError(t, db.Create(&st).Error)

	et := eventModel.EventTypeModel{Name: "Соревнование"}
	require.NoError(t, db.Create(&et).Error)
	day := datatypes.Date(time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC))
	ev := eventModel.EventModel{
		Name:      "Первенство области",
		TypeID:    &et.ID,
		DateStart: day,
		DateEnd:   day,
		CoachID:   &coach.ID,
	}
	require.NoError(t, db.Create(&ev).Error)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", coach.ID.String())
		return c.Next()
	})
	ctl := NewResultController(db)
	r := app.Group("/api/results")
	r.Get("/", ctl.GetResults)
	r.Post("/", ctl.CreateResult)
	r.Get("/:id", ctl.GetResult)
	r.Patch("/:id", ctl.UpdateResult)
	r.Delete("/:id", ctl.DeleteResult)

	return &fixture{
		db:          db,
		app:         app,
		coachID:     coach.ID,
		studentID:   student.ID,
		eventID:     ev.ID,
		sportTypeID: st.ID,
	}
}

func (f *fixture) post(t *testing.T, body fiber.Map) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(fiber.MethodPost, "/api/results/", &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (f *fixture) resultBody(scored, missed, fights int) fiber.Map {
	return fiber.Map{
		"student_id":       f.studentID,
		"event_id":         f.eventID,
		"sport_type_id":    f.sportTypeID,
		"number_of_fights": fights,
		"number_of_wins":   fights,
		"points_scored":    scored,
		"points_missed":    missed,
	}
}

func TestCreateResult_ComputesDerivedFields(t *testing.T) {
	f := setupFixture(t)

	resp := f.post(t, f.resultBody(10, 4, 5))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var stored resultModel.ResultModel
	require.NoError(t, f.db.First(&stored, "student_id = ?", f.studentID).Error)
	require.NotNil(t, stored.AverageScore)
	require.NotNil(t, stored.Efficiency)
	assert.Equal(t, 2.0, *stored.AverageScore)
	assert.Equal(t, 1.2, *stored.Efficiency)
	assert.True(t, stored.IsVisited)
	assert.Equal(t, "karate_kumite", stored.SportCode)
}

func TestCreateResult_ZeroFightsRejected(t *testing.T) {
	f := setupFixture(t)

	resp := f.post(t, f.resultBody(10, 4, 0))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, f.db.Model(&resultModel.ResultModel{}).Count(&count).Error)
	assert.Zero(t, count, "hasil tidak boleh tersimpan saat validasi gagal")
}

func TestCreateResult_DuplicateNaturalKeyConflict(t *testing.T) {
	f := setupFixture(t)

	resp := f.post(t, f.resultBody(10, 4, 5))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = f.post(t, f.resultBody(10, 4, 5))
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// skor beda = hasil lain, boleh
	resp = f.post(t, f.resultBody(12, 4, 5))
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestCreateResult_DuplicateWithPlaceConflict(t *testing.T) {
	f := setupFixture(t)

	place := resultModel.PlaceModel{Name: "1 место"}
	require.NoError(t, f.db.Create(&place).Error)

	body := f.resultBody(10, 4, 5)
	body["place_id"] = place.ID

	resp := f.post(t, body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = f.post(t, body)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

// Metrik turunan dihitung sekali saat create; patch komponen skor
// tidak menghitung ulang.
func TestUpdateResult_KeepsDerivedFields(t *testing.T) {
	f := setupFixture(t)

	resp := f.post(t, f.resultBody(10, 4, 5))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var stored resultModel.ResultModel
	require.NoError(t, f.db.First(&stored, "student_id = ?", f.studentID).Error)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(fiber.Map{"points_scored": 20}))
	req := httptest.NewRequest(fiber.MethodPatch, "/api/results/"+stored.ID.String(), &buf)
	req.Header.Set("Content-Type", "application/json")
	respU, err := f.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, respU.StatusCode)

	require.NoError(t, f.db.First(&stored, "id = ?", stored.ID).Error)
	require.NotNil(t, stored.PointsScored)
	assert.Equal(t, 20, *stored.PointsScored)
	assert.Equal(t, 2.0, *stored.AverageScore) // tetap 10/5
	assert.Equal(t, 1.2, *stored.Efficiency)   // tetap (10-4)/5
}

func TestGetResults_GroupsByEventNewestFirst(t *testing.T) {
	f := setupFixture(t)

	resp := f.post(t, f.resultBody(10, 4, 5))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// event kedua dengan tanggal lebih baru, tanpa hasil
	later := datatypes.Date(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	ev2 := eventModel.EventModel{
		Name:      "Кубок города",
		DateStart: later,
		DateEnd:   later,
		CoachID:   &f.coachID,
	}
	require.NoError(t, f.db.Create(&ev2).Error)

	req := httptest.NewRequest(fiber.MethodGet, "/api/results/", nil)
	respL, err := f.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, respL.StatusCode)

	var body struct {
		Data []struct {
			Event struct {
				ID uuid.UUID `json:"id"`
			} `json:"event"`
			Results []struct {
				ID uuid.UUID `json:"id"`
			} `json:"results"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(respL.Body).Decode(&body))
	require.Len(t, body.Data, 2)

	assert.Equal(t, ev2.ID, body.Data[0].Event.ID, "event terbaru harus duluan")
	assert.Empty(t, body.Data[0].Results)
	assert.Equal(t, f.eventID, body.Data[1].Event.ID)
	assert.Len(t, body.Data[1].Results, 1)
}
