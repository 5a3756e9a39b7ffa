package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"karate_coaching_backend/internals/features/coaching/trainings/dto"
	"karate_coaching_backend/internals/features/coaching/trainings/model"
	helper "karate_coaching_backend/internals/helpers"
	guard "karate_coaching_backend/internals/helpers/guards"
)

type TrainingController struct {
	DB *gorm.DB
}

func NewTrainingController(db *gorm.DB) *TrainingController {
	return &TrainingController{DB: db}
}

var validate = validator.New()

// =======================
// LIST (milik coach, terbaru dulu)
// =======================
func (ctl *TrainingController) GetTrainings(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var trainings []model.TrainingModel
	if err := ctl.DB.
		Preload("Group").
		Where("coach_id = ?", coachID).
		Order("date DESC, start_time DESC").
		Find(&trainings).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar latihan")
	}
	return helper.Success(c, "OK", trainings)
}

// =======================
// CREATE
// =======================
func (ctl *TrainingController) CreateTraining(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateTrainingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// latihan hanya untuk grup milik coach
	if _, gerr := guard.CoachOwnsGroup(ctl.DB, req.GroupID, coachID); gerr != nil {
		return helper.FromFiberError(c, gerr)
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	training := model.TrainingModel{
		Name:      req.Name,
		GroupID:   req.GroupID,
		CoachID:   &coachID,
		Date:      datatypes.Date(date),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := ctl.DB.Create(&training).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat latihan")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Latihan berhasil dibuat", training)
}

// =======================
// DETAIL
// =======================
func (ctl *TrainingController) GetTraining(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	trainingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	training, gerr := guard.CoachOwnsTraining(ctl.DB, trainingID, coachID)
	if gerr != nil {
		return helper.FromFiberError(c, gerr)
	}

	if err := ctl.DB.Preload("Group").First(training, "id = ?", trainingID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil latihan")
	}
	return helper.Success(c, "OK", training)
}

// =======================
// UPDATE
// =======================
func (ctl *TrainingController) UpdateTraining(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	trainingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	training, gerr := guard.CoachOwnsTraining(ctl.DB, trainingID, coachID)
	if gerr != nil {
		return helper.FromFiberError(c, gerr)
	}

	var req dto.UpdateTrainingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := req.BuildUpdateMap()
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := ctl.DB.Model(training).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui latihan")
	}
	return helper.Success(c, "Latihan berhasil diperbarui", training)
}

// =======================
// DELETE
// =======================
func (ctl *TrainingController) DeleteTraining(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	trainingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	if _, gerr := guard.CoachOwnsTraining(ctl.DB, trainingID, coachID); gerr != nil {
		return helper.FromFiberError(c, gerr)
	}

	if err := ctl.DB.Delete(&model.TrainingModel{}, "id = ?", trainingID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus latihan")
	}
	return helper.Success(c, "Latihan berhasil dihapus", nil)
}

// =======================
// UPSERT ATTENDANCE
// =======================
// Idempotent: (student, training) sudah ada → status ditimpa.
func (ctl *TrainingController) UpsertAttendance(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	trainingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	if _, gerr := guard.CoachOwnsTraining(ctl.DB, trainingID, coachID); gerr != nil {
		return helper.FromFiberError(c, gerr)
	}

	var req dto.UpsertAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	for _, item := range req.Items {
		if _, gerr := guard.CoachOwnsStudent(ctl.DB, item.StudentID, coachID); gerr != nil {
			return helper.FromFiberError(c, gerr)
		}
	}

	rows := make([]model.AttendanceModel, 0, len(req.Items))
	for _, item := range req.Items {
		rows = append(rows, model.AttendanceModel{
			StudentID:  item.StudentID,
			TrainingID: trainingID,
			StatusID:   item.StatusID,
		})
	}

	if err := ctl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "training_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status_id"}),
	}).Create(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan kehadiran")
	}
	return helper.Success(c, "Kehadiran tersimpan", rows)
}

// =======================
// LIST ATTENDANCE
// =======================
func (ctl *TrainingController) GetAttendance(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	trainingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	if _, gerr := guard.CoachOwnsTraining(ctl.DB, trainingID, coachID); gerr != nil {
		return helper.FromFiberError(c, gerr)
	}

	var attendance []model.AttendanceModel
	if err := ctl.DB.
		Preload("Student.StudentData").
		Preload("Status").
		Where("training_id = ?", trainingID).
		Find(&attendance).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kehadiran")
	}
	return helper.Success(c, "OK", attendance)
}
