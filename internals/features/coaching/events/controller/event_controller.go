package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"karate_coaching_backend/internals/features/coaching/events/dto"
	"karate_coaching_backend/internals/features/coaching/events/model"
	helper "karate_coaching_backend/internals/helpers"
	guard "karate_coaching_backend/internals/helpers/guards"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

var validate = validator.New()

// =======================
// LIST (milik coach, terbaru dulu)
// =======================
func (ctl *EventController) GetEvents(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var events []model.EventModel
	if err := ctl.DB.
		Preload("Type").
		Where("coach_id = ?", coachID).
		Order("date_start DESC").
		Find(&events).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar event")
	}
	return helper.Success(c, "OK", events)
}

// =======================
// EVENT TYPES (referensi)
// =======================
func (ctl *EventController) GetEventTypes(c *fiber.Ctx) error {
	var types []model.EventTypeModel
	if err := ctl.DB.Order("name ASC").Find(&types).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil tipe event")
	}
	return helper.Success(c, "OK", types)
}

// =======================
// CREATE
// =======================
// Natural key (name, type, date_start, date_end, coach) → 409 kalau sama.
func (ctl *EventController) CreateEvent(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	start, _ := time.Parse("2006-01-02", req.DateStart)
	end, _ := time.Parse("2006-01-02", req.DateEnd)
	if end.Before(start) {
		return helper.Error(c, fiber.StatusBadRequest, "date_end sebelum date_start")
	}

	event := model.EventModel{
		Name:      req.Name,
		TypeID:    &req.TypeID,
		DateStart: datatypes.Date(start),
		DateEnd:   datatypes.Date(end),
		Location:  req.Location,
		CoachID:   &coachID,
	}
	if err := ctl.DB.Create(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Event yang sama sudah ada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat event")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Event berhasil dibuat", event)
}

// =======================
// DETAIL
// =======================
func (ctl *EventController) GetEvent(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	event, gerr := guard.CoachOwnsEvent(ctl.DB, eventID, coachID)
	if gerr != nil {
		return helper.FromFiberError(c, gerr)
	}

	if err := ctl.DB.Preload("Type").First(event, "id = ?", eventID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}
	return helper.Success(c, "OK", event)
}

// =======================
// STUDENTS TERDAFTAR
// =======================
func (ctl *EventController) GetEventStudents(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	if _, gerr := guard.CoachOwnsEvent(ctl.DB, eventID, coachID); gerr != nil {
		return helper.FromFiberError(c, gerr)
	}

	var regs []model.StudentEventModel
	if err := ctl.DB.
		Preload("Student.StudentData").
		Where("event_id = ?", eventID).
		Find(&regs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil peserta event")
	}
	return helper.Success(c, "OK", regs)
}

// =======================
// UPDATE
// =======================
func (ctl *EventController) UpdateEvent(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	event, gerr := guard.CoachOwnsEvent(ctl.DB, eventID, coachID)
	if gerr != nil {
		return helper.FromFiberError(c, gerr)
	}

	var req dto.UpdateEventRequest
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

	if err := ctl.DB.Model(event).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Event yang sama sudah ada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui event")
	}
	return helper.Success(c, "Event berhasil diperbarui", event)
}

// =======================
// DELETE
// =======================
func (ctl *EventController) DeleteEvent(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	if _, gerr := guard.CoachOwnsEvent(ctl.DB, eventID, coachID); gerr != nil {
		return helper.FromFiberError(c, gerr)
	}

	if err := ctl.DB.Delete(&model.EventModel{}, "id = ?", eventID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus event")
	}
	return helper.Success(c, "Event berhasil dihapus", nil)
}

// =======================
// REGISTER STUDENT
// =======================
func (ctl *EventController) RegisterStudent(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "student_id bukan UUID")
	}

	if _, gerr := guard.CoachOwnsEvent(ctl.DB, eventID, coachID); gerr != nil {
		return helper.FromFiberError(c, gerr)
	}
	if _, gerr := guard.CoachOwnsStudent(ctl.DB, studentID, coachID); gerr != nil {
		return helper.FromFiberError(c, gerr)
	}

	reg := model.StudentEventModel{StudentID: studentID, EventID: eventID}
	if err := ctl.DB.Create(&reg).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Student sudah terdaftar di event ini")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mendaftarkan student")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student terdaftar di event", reg)
}

// =======================
// UNREGISTER STUDENT
// =======================
func (ctl *EventController) UnregisterStudent(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "student_id bukan UUID")
	}

	if _, gerr := guard.CoachOwnsEvent(ctl.DB, eventID, coachID); gerr != nil {
		return helper.FromFiberError(c, gerr)
	}

	res := ctl.DB.Delete(&model.StudentEventModel{}, "event_id = ? AND student_id = ?", eventID, studentID)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membatalkan pendaftaran")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Student tidak terdaftar di event ini")
	}
	return helper.Success(c, "Pendaftaran dibatalkan", nil)
}
