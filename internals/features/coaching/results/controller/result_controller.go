package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "karate_coaching_backend/internals/features/coaching/events/model"
	"karate_coaching_backend/internals/features/coaching/results/dto"
	"karate_coaching_backend/internals/features/coaching/results/model"
	helper "karate_coaching_backend/internals/helpers"
	guard "karate_coaching_backend/internals/helpers/guards"
)

type ResultController struct {
	DB *gorm.DB
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{DB: db}
}

var validate = validator.New()

// =======================
// LIST (event milik coach + hasil di dalamnya, event terbaru dulu)
// =======================
func (ctl *ResultController) GetResults(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var events []eventModel.EventModel
	if err := ctl.DB.
		Where("coach_id = ?", coachID).
		Preload("Type").
		Order("date_start DESC").
		Find(&events).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar hasil")
	}

	eventIDs := make([]uuid.UUID, 0, len(events))
	for _, ev := range events {
		eventIDs = append(eventIDs, ev.ID)
	}

	// dua query total — hasil di-group di memori, tanpa loop N+1
	byEvent := make(map[uuid.UUID][]model.ResultModel, len(events))
	if len(eventIDs) > 0 {
		var results []model.ResultModel
		if err := ctl.DB.
			Where("event_id IN ?", eventIDs).
			Preload("Place").
			Preload("Student.StudentData").
			Find(&results).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar hasil")
		}
		for _, r := range results {
			if r.EventID != nil {
				byEvent[*r.EventID] = append(byEvent[*r.EventID], r)
			}
		}
	}

	out := make([]dto.EventWithResults, 0, len(events))
	for _, ev := range events {
		rs := byEvent[ev.ID]
		if rs == nil {
			rs = []model.ResultModel{}
		}
		out = append(out, dto.EventWithResults{Event: ev, Results: rs})
	}
	return helper.Success(c, "OK", out)
}

// =======================
// PLACES (referensi)
// =======================
func (ctl *ResultController) GetPlaces(c *fiber.Ctx) error {
	var places []model.PlaceModel
	if err := ctl.DB.Order("name ASC").Find(&places).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar juara")
	}
	return helper.Success(c, "OK", places)
}

// =======================
// CREATE
// =======================
// Metrik turunan dihitung sekali saat create; duplikat natural key → 409.
func (ctl *ResultController) CreateResult(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if _, gerr := guard.CoachOwnsEvent(ctl.DB, req.EventID, coachID); gerr != nil {
		return helper.FromFiberError(c, gerr)
	}
	if _, gerr := guard.CoachOwnsStudent(ctl.DB, req.StudentID, coachID); gerr != nil {
		return helper.FromFiberError(c, gerr)
	}

	// cek duplikat natural key sebelum insert. Unique index tetap jadi
	// backstop, tapi kolom nullable (place_id dkk) membuat index tidak
	// konflik saat NULL — SQL menganggap NULL ≠ NULL.
	dup := ctl.DB.Model(&model.ResultModel{}).
		Where("student_id = ?", req.StudentID).
		Where("event_id = ?", req.EventID).
		Where("number_of_fights = ?", req.NumberOfFights).
		Where("points_scored = ?", req.PointsScored).
		Where("points_missed = ?", req.PointsMissed)
	if req.PlaceID != nil {
		dup = dup.Where("place_id = ?", *req.PlaceID)
	} else {
		dup = dup.Where("place_id IS NULL")
	}
	var dupCount int64
	if err := dup.Count(&dupCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan hasil")
	}
	if dupCount > 0 {
		return helper.Error(c, fiber.StatusConflict, "Hasil yang sama sudah tercatat")
	}

	avg, eff := dto.ComputeKumiteMetrics(req.PointsScored, req.PointsMissed, req.NumberOfFights)

	isVisited := true
	if req.IsVisited != nil {
		isVisited = *req.IsVisited
	}
	result := model.ResultModel{
		StudentID:        &req.StudentID,
		EventID:          &req.EventID,
		SportTypeID:      req.SportTypeID,
		AgeCategoryID:    req.AgeCategoryID,
		WeightCategoryID: req.WeightCategoryID,
		PlaceID:          req.PlaceID,
		IsVisited:        isVisited,
		NumberOfFights:   &req.NumberOfFights,
		NumberOfWins:     &req.NumberOfWins,
		NumberOfDefeats:  &req.NumberOfDefeats,
		PointsScored:     &req.PointsScored,
		PointsMissed:     &req.PointsMissed,
		AverageScore:     &avg,
		Efficiency:       &eff,
	}
	if err := ctl.DB.Create(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Hasil yang sama sudah tercatat")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan hasil")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Hasil berhasil disimpan", result)
}

// =======================
// DETAIL
// =======================
func (ctl *ResultController) GetResult(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	resultID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	result, gerr := guard.CoachOwnsResult(ctl.DB, resultID, coachID)
	if gerr != nil {
		return helper.FromFiberError(c, gerr)
	}

	if err := ctl.DB.
		Preload("Event.Type").
		Preload("Place").
		Preload("Student.StudentData").
		Preload("AgeCategory").
		Preload("WeightCategory").
		First(result, "id = ?", resultID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil hasil")
	}
	return helper.Success(c, "OK", result)
}

// =======================
// UPDATE
// =======================
func (ctl *ResultController) UpdateResult(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	resultID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	result, gerr := guard.CoachOwnsResult(ctl.DB, resultID, coachID)
	if gerr != nil {
		return helper.FromFiberError(c, gerr)
	}

	var req dto.UpdateResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := req.BuildUpdateMap()
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	// patch mentah field-per-field; metrik turunan hanya dihitung saat
	// create dan tidak disentuh di sini
	if err := ctl.DB.Model(result).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Hasil yang sama sudah tercatat")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui hasil")
	}
	return helper.Success(c, "Hasil berhasil diperbarui", result)
}

// =======================
// DELETE
// =======================
func (ctl *ResultController) DeleteResult(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	resultID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	if _, gerr := guard.CoachOwnsResult(ctl.DB, resultID, coachID); gerr != nil {
		return helper.FromFiberError(c, gerr)
	}

	if err := ctl.DB.Delete(&model.ResultModel{}, "id = ?", resultID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus hasil")
	}
	return helper.Success(c, "Hasil berhasil dihapus", nil)
}
