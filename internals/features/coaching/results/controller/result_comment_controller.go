package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"karate_coaching_backend/internals/constants"
	"karate_coaching_backend/internals/features/coaching/results/dto"
	"karate_coaching_backend/internals/features/coaching/results/model"
	helper "karate_coaching_backend/internals/helpers"
	guard "karate_coaching_backend/internals/helpers/guards"
)

// Komentar hasil: coach pemilik event ATAU student pemilik hasil.
// resolveCommentAccess mengembalikan role penulis, atau error 404/403.
func (ctl *ResultController) resolveCommentAccess(resultID, callerID uuid.UUID) (string, error) {
	var r model.ResultModel
	if err := ctl.DB.Preload("Event").First(&r, "id = ?", resultID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return "", err
	}
	if r.Event != nil && r.Event.CoachID != nil && *r.Event.CoachID == callerID {
		return constants.CommentAuthorCoach, nil
	}
	if r.StudentID != nil && *r.StudentID == callerID {
		return constants.CommentAuthorStudent, nil
	}
	return "", fiber.NewError(fiber.StatusForbidden, "Bukan milik Anda")
}

// =======================
// LIST COMMENTS
// =======================
func (ctl *ResultController) GetResultComments(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	resultID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	if _, aerr := ctl.resolveCommentAccess(resultID, callerID); aerr != nil {
		return helper.FromFiberError(c, aerr)
	}

	var comments []model.ResultCommentModel
	if err := ctl.DB.
		Where("result_id = ?", resultID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil komentar")
	}
	return helper.Success(c, "OK", comments)
}

// =======================
// ADD COMMENT
// =======================
func (ctl *ResultController) CreateResultComment(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	resultID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	role, aerr := ctl.resolveCommentAccess(resultID, callerID)
	if aerr != nil {
		return helper.FromFiberError(c, aerr)
	}

	var req dto.CreateResultCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	comment := model.ResultCommentModel{
		ResultID:   resultID,
		AuthorID:   callerID,
		AuthorRole: role,
		Body:       req.Body,
	}
	if err := ctl.DB.Create(&comment).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan komentar")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Komentar tersimpan", comment)
}

// =======================
// DELETE COMMENT
// =======================
// Penulis boleh hapus komentarnya; coach pemilik event boleh hapus semua.
func (ctl *ResultController) DeleteResultComment(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	commentID, err := uuid.Parse(c.Params("comment_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "comment_id bukan UUID")
	}

	var comment model.ResultCommentModel
	if err := ctl.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Komentar tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil komentar")
	}

	if comment.AuthorID != callerID {
		if _, gerr := guard.CoachOwnsResult(ctl.DB, comment.ResultID, callerID); gerr != nil {
			return helper.FromFiberError(c, gerr)
		}
	}

	if err := ctl.DB.Delete(&model.ResultCommentModel{}, "id = ?", commentID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus komentar")
	}
	return helper.Success(c, "Komentar dihapus", nil)
}
