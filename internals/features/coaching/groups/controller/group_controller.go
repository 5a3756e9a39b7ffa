package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"karate_coaching_backend/internals/features/coaching/groups/dto"
	"karate_coaching_backend/internals/features/coaching/groups/model"
	studentModel "karate_coaching_backend/internals/features/coaching/students/model"
	helper "karate_coaching_backend/internals/helpers"
	guard "karate_coaching_backend/internals/helpers/guards"
)

type GroupController struct {
	DB *gorm.DB
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{DB: db}
}

var validate = validator.New()

// =======================
// LIST (milik coach)
// =======================
func (ctl *GroupController) GetGroups(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var groups []model.GroupModel
	if err := ctl.DB.
		Where("coach_id = ?", coachID).
		Order("name ASC").
		Find(&groups).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar grup")
	}
	return helper.Success(c, "OK", groups)
}

// =======================
// CREATE
// =======================
// Duplikat (name, coach_id) ketahan unique index → 409.
func (ctl *GroupController) CreateGroup(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	group := model.GroupModel{Name: req.Name, CoachID: &coachID}
	if err := ctl.DB.Create(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Grup dengan nama tersebut sudah ada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat grup")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Grup berhasil dibuat", group)
}

// =======================
// DETAIL
// =======================
func (ctl *GroupController) GetGroup(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	group, gerr := guard.CoachOwnsGroup(ctl.DB, groupID, coachID)
	if gerr != nil {
		return helper.FromFiberError(c, gerr)
	}
	return helper.Success(c, "OK", group)
}

// =======================
// STUDENTS DI GRUP
// =======================
func (ctl *GroupController) GetGroupStudents(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	if _, gerr := guard.CoachOwnsGroup(ctl.DB, groupID, coachID); gerr != nil {
		return helper.FromFiberError(c, gerr)
	}

	var students []studentModel.StudentProfileModel
	if err := ctl.DB.
		Preload("StudentData").
		Preload("SportLevel").
		Where("group_id = ?", groupID).
		Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil student grup")
	}
	return helper.Success(c, "OK", students)
}

// =======================
// UPDATE
// =======================
func (ctl *GroupController) UpdateGroup(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	group, gerr := guard.CoachOwnsGroup(ctl.DB, groupID, coachID)
	if gerr != nil {
		return helper.FromFiberError(c, gerr)
	}

	var req dto.UpdateGroupRequest
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

	if err := ctl.DB.Model(group).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Grup dengan nama tersebut sudah ada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui grup")
	}
	return helper.Success(c, "Grup berhasil diperbarui", group)
}

// =======================
// DELETE
// =======================
// FK SET NULL: student di grup tetap ada, group_id-nya di-NULL-kan.
func (ctl *GroupController) DeleteGroup(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	if _, gerr := guard.CoachOwnsGroup(ctl.DB, groupID, coachID); gerr != nil {
		return helper.FromFiberError(c, gerr)
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&studentModel.StudentProfileModel{}).
			Where("group_id = ?", groupID).
			Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.GroupModel{}, "id = ?", groupID).Error
	})
	if txErr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus grup")
	}
	return helper.Success(c, "Grup berhasil dihapus", nil)
}

// =======================
// ADD STUDENT KE GRUP
// =======================
// Student harus binaan coach yang sama; student sudah bergrup → 409.
func (ctl *GroupController) AddStudentToGroup(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "student_id bukan UUID")
	}

	if _, gerr := guard.CoachOwnsGroup(ctl.DB, groupID, coachID); gerr != nil {
		return helper.FromFiberError(c, gerr)
	}
	student, gerr := guard.CoachOwnsStudent(ctl.DB, studentID, coachID)
	if gerr != nil {
		return helper.FromFiberError(c, gerr)
	}

	if student.GroupID != nil {
		if *student.GroupID == groupID {
			return helper.Error(c, fiber.StatusConflict, "Student sudah ada di grup ini")
		}
		return helper.Error(c, fiber.StatusConflict, "Student sudah terdaftar di grup lain")
	}

	if err := ctl.DB.Model(student).Update("group_id", groupID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menambahkan student ke grup")
	}
	return helper.Success(c, "Student ditambahkan ke grup", student)
}

// =======================
// REMOVE STUDENT DARI GRUP
// =======================
func (ctl *GroupController) RemoveStudentFromGroup(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "student_id bukan UUID")
	}

	if _, gerr := guard.CoachOwnsGroup(ctl.DB, groupID, coachID); gerr != nil {
		return helper.FromFiberError(c, gerr)
	}
	student, gerr := guard.CoachOwnsStudent(ctl.DB, studentID, coachID)
	if gerr != nil {
		return helper.FromFiberError(c, gerr)
	}

	if student.GroupID == nil || *student.GroupID != groupID {
		return helper.Error(c, fiber.StatusNotFound, "Student tidak terdaftar di grup ini")
	}

	if err := ctl.DB.Model(student).Update("group_id", nil).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengeluarkan student dari grup")
	}
	return helper.Success(c, "Student dikeluarkan dari grup", nil)
}
