package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"karate_coaching_backend/internals/configs"
	authDto "karate_coaching_backend/internals/features/users/auth/dto"
	authService "karate_coaching_backend/internals/features/users/auth/service"
	"karate_coaching_backend/internals/features/users/user/dto"
	"karate_coaching_backend/internals/features/users/user/model"
	helper "karate_coaching_backend/internals/helpers"
	guard "karate_coaching_backend/internals/helpers/guards"
	ossHelper "karate_coaching_backend/internals/helpers/oss"
)

type UserController struct {
	DB  *gorm.DB
	OSS *ossHelper.OSSService
}

// OSS nil = fitur avatar nonaktif (env belum diisi), endpoint lain tetap jalan.
func NewUserController(db *gorm.DB) *UserController {
	svc, err := ossHelper.NewOSSServiceFromEnv("avatars")
	if err != nil {
		log.Printf("[WARN] OSS tidak dikonfigurasi: %v", err)
		svc = nil
	}
	return &UserController{DB: db, OSS: svc}
}

var validate = validator.New()

// =======================
// UPDATE USER
// =======================
// PATCH /api/users/update/:user_id — multipart, partial update.
// Boleh: diri sendiri, atau coach atas student binaannya.
func (ctl *UserController) UpdateUser(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	targetID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "user_id bukan UUID")
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	if err := guard.CanManageUser(ctl.DB, targetID, callerID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := req.BuildUpdateMap()

	// ganti password butuh konfirmasi repeat_password
	if req.Password != nil {
		if req.RepeatPassword == nil || *req.Password != *req.RepeatPassword {
			return helper.Error(c, fiber.StatusBadRequest, "Password dan konfirmasi tidak sama")
		}
		hashed, herr := authService.HashPassword(*req.Password)
		if herr != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengamankan password")
		}
		updates["password"] = hashed
	}

	// avatar: upload baru dulu, baru hapus yang lama (best effort)
	if fh, ferr := c.FormFile("avatar"); ferr == nil && fh != nil {
		if ctl.OSS == nil {
			return helper.Error(c, fiber.StatusServiceUnavailable, "Penyimpanan avatar belum dikonfigurasi")
		}
		url, uerr := ctl.OSS.UploadAsWebP(fh, "avatars")
		if uerr != nil {
			return helper.Error(c, fiber.StatusBadGateway, "Gagal mengunggah avatar")
		}
		if user.AvatarURL != "" && user.AvatarURL != configs.DefaultAvatar {
			if derr := ctl.OSS.DeleteByPublicURL(user.AvatarURL); derr != nil {
				log.Printf("[WARN] hapus avatar lama %s: %v", user.AvatarURL, derr)
			}
		}
		updates["avatar_url"] = url
	}

	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := ctl.DB.Model(&user).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui user")
	}

	var fresh model.UserModel
	if err := ctl.DB.Preload("Roles").First(&fresh, "id = ?", targetID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	return helper.Success(c, "User berhasil diperbarui", authDto.NewUserResponse(&fresh))
}

// =======================
// DELETE USER
// =======================
// DELETE /api/users/delete/:user_id — hard delete; FK CASCADE
// membersihkan profil, role join, kode reset, attendance, dst.
func (ctl *UserController) DeleteUser(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	targetID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "user_id bukan UUID")
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	if err := guard.CanManageUser(ctl.DB, targetID, callerID); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctl.DB.Delete(&model.UserModel{}, "id = ?", targetID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus user")
	}

	if user.AvatarURL != "" && user.AvatarURL != configs.DefaultAvatar && ctl.OSS != nil {
		if derr := ctl.OSS.DeleteByPublicURL(user.AvatarURL); derr != nil {
			log.Printf("[WARN] hapus avatar %s: %v", user.AvatarURL, derr)
		}
	}

	return helper.Success(c, "User berhasil dihapus", nil)
}
