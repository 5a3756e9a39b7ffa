package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	trainingModel "karate_coaching_backend/internals/features/coaching/trainings/model"
	"karate_coaching_backend/internals/features/reference/model"
	helper "karate_coaching_backend/internals/helpers"
)

// ReferenceController — endpoint baca-saja untuk data referensi
// (isi dikelola lewat seeds/migrasi).
type ReferenceController struct {
	DB *gorm.DB
}

func NewReferenceController(db *gorm.DB) *ReferenceController {
	return &ReferenceController{DB: db}
}

func (ctl *ReferenceController) GetGenders(c *fiber.Ctx) error {
	var rows []model.GenderModel
	if err := ctl.DB.Order("name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data gender")
	}
	return helper.Success(c, "OK", rows)
}

func (ctl *ReferenceController) GetSportTypes(c *fiber.Ctx) error {
	var rows []model.SportTypeModel
	if err := ctl.DB.Order("name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil cabang olahraga")
	}
	return helper.Success(c, "OK", rows)
}

// GetAgeCategories — bisa difilter ?sport_type_id= dan ?gender_id=.
func (ctl *ReferenceController) GetAgeCategories(c *fiber.Ctx) error {
	q := ctl.DB.Order("min_age ASC")
	if v := c.Query("sport_type_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "sport_type_id bukan UUID")
		}
		q = q.Where("sport_type_id = ?", id)
	}
	if v := c.Query("gender_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "gender_id bukan UUID")
		}
		q = q.Where("gender_id = ?", id)
	}

	var rows []model.AgeCategoryModel
	if err := q.Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kategori umur")
	}
	return helper.Success(c, "OK", rows)
}

// GetWeightCategories — bisa difilter ?age_category_id=.
func (ctl *ReferenceController) GetWeightCategories(c *fiber.Ctx) error {
	q := ctl.DB.Order("name ASC")
	if v := c.Query("age_category_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "age_category_id bukan UUID")
		}
		q = q.Where("age_category_id = ?", id)
	}

	var rows []model.WeightCategoryModel
	if err := q.Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kategori berat")
	}
	return helper.Success(c, "OK", rows)
}

func (ctl *ReferenceController) GetSportLevels(c *fiber.Ctx) error {
	var rows []model.SportLevelModel
	if err := ctl.DB.Order("rank ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil tingkatan")
	}
	return helper.Success(c, "OK", rows)
}

func (ctl *ReferenceController) GetAttendanceStatuses(c *fiber.Ctx) error {
	var rows []trainingModel.AttendanceStatusModel
	if err := ctl.DB.Order("name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil status kehadiran")
	}
	return helper.Success(c, "OK", rows)
}
