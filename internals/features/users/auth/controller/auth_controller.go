package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"karate_coaching_backend/internals/configs"
	"karate_coaching_backend/internals/constants"
	coachModel "karate_coaching_backend/internals/features/coaching/coaches/model"
	studentModel "karate_coaching_backend/internals/features/coaching/students/model"
	"karate_coaching_backend/internals/features/users/auth/dto"
	"karate_coaching_backend/internals/features/users/auth/repository"
	"karate_coaching_backend/internals/features/users/auth/service"
	userModel "karate_coaching_backend/internals/features/users/user/model"
	helper "karate_coaching_backend/internals/helpers"
	"karate_coaching_backend/internals/helpers/mailer"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

const resetCodeMaxRetries = 10

// =======================
// REGISTER (COACH)
// =======================
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterCoachRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	plainPassword, err := service.GeneratePassword()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat password")
	}
	hashed, err := service.HashPassword(plainPassword)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengamankan password")
	}

	user := userModel.UserModel{
		LastName:    req.LastName,
		FirstName:   req.FirstName,
		Patronymic:  req.Patronymic,
		Email:       &req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    hashed,
		AvatarURL:   configs.DefaultAvatar,
		GenderID:    req.GenderID,
	}
	if req.DateOfBirth != nil {
		if t, perr := time.Parse("2006-01-02", *req.DateOfBirth); perr == nil {
			d := datatypes.Date(t)
			user.DateOfBirth = &d
		}
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
			}
			return err
		}
		role, err := repository.FindRoleByCode(tx, constants.RoleCodeCoach)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Role coach belum tersedia")
		}
		if err := repository.AttachRole(tx, user.ID, role.ID); err != nil {
			return err
		}
		return tx.Create(&coachModel.CoachProfileModel{CoachID: user.ID}).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	// password awal dikirim via email; kegagalan SMTP = registrasi gagal
	// di mata client (tanpa email, user tidak bisa login)
	if err := mailer.SendRegistrationEmail(req.Email, plainPassword); err != nil {
		log.Printf("[ERROR] kirim email registrasi ke %s: %v", req.Email, err)
		return helper.Error(c, fiber.StatusBadGateway, "Registrasi tersimpan, tetapi email kredensial gagal dikirim")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil, password dikirim ke email", dto.NewUserResponse(&user))
}

// =======================
// REGISTER (STUDENT)
// =======================
// Student dibuat terikat ke coach pada path. Coach tidak ada → 404.
func (ctl *AuthController) RegisterStudent(c *fiber.Ctx) error {
	coachID, err := uuid.Parse(c.Params("coach_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "coach_id bukan UUID")
	}

	var req dto.RegisterStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var coach coachModel.CoachProfileModel
	if err := ctl.DB.First(&coach, "coach_id = ?", coachID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Coach tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa coach")
	}

	var plainPassword string
	user := userModel.UserModel{
		LastName:    req.LastName,
		FirstName:   req.FirstName,
		Patronymic:  req.Patronymic,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		AvatarURL:   configs.DefaultAvatar,
		GenderID:    req.GenderID,
	}
	if req.Email != nil {
		plainPassword, err = service.GeneratePassword()
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat password")
		}
		hashed, herr := service.HashPassword(plainPassword)
		if herr != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengamankan password")
		}
		user.Password = hashed
	}
	if req.DateOfBirth != nil {
		if t, perr := time.Parse("2006-01-02", *req.DateOfBirth); perr == nil {
			d := datatypes.Date(t)
			user.DateOfBirth = &d
		}
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
			}
			return err
		}
		role, err := repository.FindRoleByCode(tx, constants.RoleCodeStudent)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Role student belum tersedia")
		}
		if err := repository.AttachRole(tx, user.ID, role.ID); err != nil {
			return err
		}
		profile := studentModel.StudentProfileModel{
			StudentID:    user.ID,
			CoachID:      &coachID,
			GroupID:      req.GroupID,
			SportLevelID: req.SportLevelID,
		}
		return tx.Create(&profile).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	if req.Email != nil {
		if err := mailer.SendRegistrationEmail(*req.Email, plainPassword); err != nil {
			log.Printf("[ERROR] kirim email registrasi student ke %s: %v", *req.Email, err)
			return helper.Error(c, fiber.StatusBadGateway, "Student tersimpan, tetapi email kredensial gagal dikirim")
		}
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student berhasil didaftarkan", dto.NewUserResponse(&user))
}

// =======================
// LOGIN
// =======================
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := repository.FindUserByEmail(ctl.DB, req.Email)
	if err != nil {
		// unknown email dan password salah dibalas sama: 401
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !service.CheckPassword(user.Password, req.Password) {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := service.CreateAccessToken(user.ID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        dto.NewUserResponse(user),
	})
}

// =======================
// ME / ME DATA / ME ROLES
// =======================
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	user, err := repository.FindUserByID(ctl.DB, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.Success(c, "OK", dto.NewUserResponse(user))
}

// MeData: profil lengkap + relasi coach/student bila ada.
func (ctl *AuthController) MeData(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	user, err := repository.FindUserByID(ctl.DB, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	payload := fiber.Map{"user": dto.NewUserResponse(user)}

	var studentProfile studentModel.StudentProfileModel
	if err := ctl.DB.Preload("Group").Preload("SportLevel").
		First(&studentProfile, "student_id = ?", userID).Error; err == nil {
		payload["student_profile"] = studentProfile
	}
	var coachProfile coachModel.CoachProfileModel
	if err := ctl.DB.First(&coachProfile, "coach_id = ?", userID).Error; err == nil {
		payload["coach_profile"] = coachProfile
	}

	return helper.Success(c, "OK", payload)
}

func (ctl *AuthController) MeRoles(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	user, err := repository.FindUserByID(ctl.DB, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, r.Code)
	}
	return helper.Success(c, "OK", fiber.Map{"roles": roles})
}

// =======================
// FORGOT PASSWORD
// =======================
// Kode 6 digit, retry maksimal 10x kalau kode yang sama masih aktif.
func (ctl *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := repository.FindUserByEmail(ctl.DB, req.Email)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User dengan email tersebut tidak ditemukan")
	}

	_ = repository.PurgeExpiredCodes(ctl.DB, time.Now())

	var code string
	for attempt := 0; attempt < resetCodeMaxRetries; attempt++ {
		candidate, gerr := service.GenerateResetCode()
		if gerr != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat kode reset")
		}
		exists, eerr := repository.CodeExists(ctl.DB, candidate)
		if eerr != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa kode reset")
		}
		if !exists {
			code = candidate
			break
		}
	}
	if code == "" {
		return helper.Error(c, fiber.StatusInternalServerError, "Tidak bisa membuat kode reset unik, coba lagi")
	}

	if err := repository.CreateResetCode(ctl.DB, user.ID, code); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan kode reset")
	}
	if err := mailer.SendResetPasswordEmail(req.Email, code); err != nil {
		log.Printf("[ERROR] kirim email reset ke %s: %v", req.Email, err)
		return helper.Error(c, fiber.StatusBadGateway, "Kode dibuat, tetapi email gagal dikirim")
	}

	return helper.Success(c, "Kode reset dikirim ke email", nil)
}

// =======================
// RESET PASSWORD
// =======================
func (ctl *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Normalize()
	// eqfield NewPassword: mismatch password ditolak sebelum menyentuh DB
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := repository.FindUserByEmail(ctl.DB, req.Email)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User dengan email tersebut tidak ditemukan")
	}

	rc, err := repository.FindActiveResetCode(ctl.DB, user.ID, req.Code)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Kode reset tidak valid")
	}
	if rc.IsExpired(time.Now()) {
		_ = repository.MarkCodeUsed(ctl.DB, rc.ID)
		return helper.Error(c, fiber.StatusBadRequest, "Kode reset sudah kadaluarsa")
	}

	hashed, err := service.HashPassword(req.NewPassword)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengamankan password")
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&userModel.UserModel{}).
			Where("id = ?", user.ID).
			Update("password", hashed).Error; err != nil {
			return err
		}
		return repository.MarkCodeUsed(tx, rc.ID)
	})
	if txErr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui password")
	}

	return helper.Success(c, "Password berhasil direset", nil)
}
