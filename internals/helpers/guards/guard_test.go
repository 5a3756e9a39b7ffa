package guard

import (
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
		&eventModel.EventTypeModel{},
		&eventModel.EventModel{},
	))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func createCoach(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	email := uuid.New().String() + "@test.local"
	u := userModel.UserModel{LastName: "Петров", FirstName: "Пётр", Email: &email}
	require.NoError(t, db.Create(&u).Error)
	require.NoError(t, db.Create(&coachModel.CoachProfileModel{CoachID: u.ID}).Error)
	return u.ID
}

func createStudent(t *testing.T, db *gorm.DB, coachID *uuid.UUID) uuid.UUID {
	t.Helper()
	email := uuid.New().String() + "@test.local"
	u := userModel.UserModel{LastName: "Сидоров", FirstName: "Иван", Email: &email}
	require.NoError(t, db.Create(&u).Error)
	require.NoError(t, db.Create(&studentModel.StudentProfileModel{
		StudentID: u.ID,
		CoachID:   coachID,
	}).Error)
	return u.ID
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "harus *fiber.Error, dapat %T", err)
	return fe.Code
}

func TestCoachOwnsGroup(t *testing.T) {
	db := setupDB(t)
	owner := createCoach(t, db)
	other := createCoach(t, db)

	group := groupModel.GroupModel{Name: "Старшая группа", CoachID: &owner}
	require.NoError(t, db.Create(&group).Error)

	got, err := CoachOwnsGroup(db, group.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, group.ID, got.ID)

	_, err = CoachOwnsGroup(db, group.ID, other)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))

	// resource hilang menang atas forbidden
	_, err = CoachOwnsGroup(db, uuid.New(), other)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestCoachOwnsStudent(t *testing.T) {
	db := setupDB(t)
	owner := createCoach(t, db)
	other := createCoach(t, db)
	studentID := createStudent(t, db, &owner)
	orphanID := createStudent(t, db, nil)

	got, err := CoachOwnsStudent(db, studentID, owner)
	require.NoError(t, err)
	assert.Equal(t, studentID, got.StudentID)

	_, err = CoachOwnsStudent(db, studentID, other)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))

	// tanpa coach sama sekali → tetap forbidden untuk siapa pun
	_, err = CoachOwnsStudent(db, orphanID, owner)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))

	_, err = CoachOwnsStudent(db, uuid.New(), owner)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestCoachOwnsEvent(t *testing.T) {
	db := setupDB(t)
	owner := createCoach(t, db)
	other := createCoach(t, db)

	et := eventModel.EventTypeModel{Name: "Соревнование"}
	require.NoError(t, db.Create(&et).Error)

	day := datatypes.Date(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	ev := eventModel.EventModel{
		Name:      "Кубок города",
		TypeID:    &et.ID,
		DateStart: day,
		DateEnd:   day,
		CoachID:   &owner,
	}
	require.NoError(t, db.Create(&ev).Error)

	_, err := CoachOwnsEvent(db, ev.ID, owner)
	require.NoError(t, err)

	_, err = CoachOwnsEvent(db, ev.ID, other)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))

	_, err = CoachOwnsEvent(db, uuid.New(), owner)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestCanManageUser(t *testing.T) {
	db := setupDB(t)
	coachID := createCoach(t, db)
	otherCoach := createCoach(t, db)
	studentID := createStudent(t, db, &coachID)

	// diri sendiri selalu boleh
	assert.NoError(t, CanManageUser(db, studentID, studentID))
	// coach binaan boleh
	assert.NoError(t, CanManageUser(db, studentID, coachID))
	// coach lain tidak
	err := CanManageUser(db, studentID, otherCoach)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
	// target bukan student (sesama coach) → forbidden
	err = CanManageUser(db, coachID, otherCoach)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
}
