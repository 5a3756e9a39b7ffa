package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"karate_coaching_backend/internals/features/organizations/dto"
	"karate_coaching_backend/internals/features/organizations/model"
	helper "karate_coaching_backend/internals/helpers"
)

type OrganizationController struct {
	DB *gorm.DB
}

func NewOrganizationController(db *gorm.DB) *OrganizationController {
	return &OrganizationController{DB: db}
}

var validate = validator.New()

func (ctl *OrganizationController) GetOrganizations(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	var total int64
	if err := ctl.DB.Model(&model.OrganizationModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung organisasi")
	}

	var orgs []model.OrganizationModel
	if err := ctl.DB.
		Order("name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&orgs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil organisasi")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      orgs,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

func (ctl *OrganizationController) CreateOrganization(c *fiber.Ctx) error {
	var req dto.CreateOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	org := model.OrganizationModel{
		Name:              req.Name,
		Subdomain:         req.Subdomain,
		MidtransServerKey: req.MidtransServerKey,
		MidtransClientKey: req.MidtransClientKey,
	}
	if err := ctl.DB.Create(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Nama atau subdomain sudah dipakai")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat organisasi")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Organisasi berhasil dibuat", org)
}

func (ctl *OrganizationController) GetOrganization(c *fiber.Ctx) error {
	orgID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	var org model.OrganizationModel
	if err := ctl.DB.First(&org, "id = ?", orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Organisasi tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil organisasi")
	}
	return helper.Success(c, "OK", org)
}

func (ctl *OrganizationController) UpdateOrganization(c *fiber.Ctx) error {
	orgID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	var org model.OrganizationModel
	if err := ctl.DB.First(&org, "id = ?", orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Organisasi tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil organisasi")
	}

	var req dto.UpdateOrganizationRequest
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

	if err := ctl.DB.Model(&org).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Nama atau subdomain sudah dipakai")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui organisasi")
	}
	return helper.Success(c, "Organisasi berhasil diperbarui", org)
}

func (ctl *OrganizationController) DeleteOrganization(c *fiber.Ctx) error {
	orgID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	res := ctl.DB.Delete(&model.OrganizationModel{}, "id = ?", orgID)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus organisasi")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Organisasi tidak ditemukan")
	}
	return helper.Success(c, "Organisasi berhasil dihapus", nil)
}
