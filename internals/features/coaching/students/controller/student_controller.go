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
	eventModel "karate_coaching_backend/internals/features/coaching/events/model"
	resultModel "karate_coaching_backend/internals/features/coaching/results/model"
	"karate_coaching_backend/internals/features/coaching/students/dto"
	"karate_coaching_backend/internals/features/coaching/students/model"
	authDto "karate_coaching_backend/internals/features/users/auth/dto"
	authRepo "karate_coaching_backend/internals/features/users/auth/repository"
	authService "karate_coaching_backend/internals/features/users/auth/service"
	userDto "karate_coaching_backend/internals/features/users/user/dto"
	userModel "karate_coaching_backend/internals/features/users/user/model"
	helper "karate_coaching_backend/internals/helpers"
	guard "karate_coaching_backend/internals/helpers/guards"
	"karate_coaching_backend/internals/helpers/mailer"
	ossHelper "karate_coaching_backend/internals/helpers/oss"
)

type StudentController struct {
	DB  *gorm.DB
	OSS *ossHelper.OSSService
}

func NewStudentController(db *gorm.DB) *StudentController {
	svc, err := ossHelper.NewOSSServiceFromEnv("avatars")
	if err != nil {
		log.Printf("[WARN] OSS tidak dikonfigurasi: %v", err)
		svc = nil
	}
	return &StudentController{DB: db, OSS: svc}
}

var validate = validator.New()

// akses baca profil student: student sendiri atau coach binaannya
func (ctl *StudentController) canView(studentID, callerID uuid.UUID) (*model.StudentProfileModel, error) {
	var s model.StudentProfileModel
	if err := ctl.DB.First(&s, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return nil, err
	}
	if studentID == callerID {
		return &s, nil
	}
	if s.CoachID == nil || *s.CoachID != callerID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Bukan milik Anda")
	}
	return &s, nil
}

// =======================
// LIST (binaan coach)
// =======================
func (ctl *StudentController) GetStudents(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var students []model.StudentProfileModel
	if err := ctl.DB.
		Preload("StudentData").
		Preload("Group").
		Preload("SportLevel").
		Where("coach_id = ?", coachID).
		Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar student")
	}
	return helper.Success(c, "OK", students)
}

// =======================
// DETAIL
// =======================
func (ctl *StudentController) GetStudent(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	if _, aerr := ctl.canView(studentID, callerID); aerr != nil {
		return helper.FromFiberError(c, aerr)
	}

	var student model.StudentProfileModel
	if err := ctl.DB.
		Preload("StudentData.Gender").
		Preload("Group").
		Preload("SportLevel").
		First(&student, "student_id = ?", studentID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil student")
	}
	return helper.Success(c, "OK", student)
}

// =======================
// RESULTS STUDENT
// =======================
// Event student terbaru dulu; hasil per event di-preload batched.
func (ctl *StudentController) GetStudentResults(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	if _, aerr := ctl.canView(studentID, callerID); aerr != nil {
		return helper.FromFiberError(c, aerr)
	}

	var results []resultModel.ResultModel
	if err := ctl.DB.
		Joins("JOIN events ON events.id = results.event_id").
		Where("results.student_id = ?", studentID).
		Preload("Event.Type").
		Preload("Place").
		Preload("AgeCategory").
		Preload("WeightCategory").
		Order("events.date_start DESC").
		Find(&results).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil hasil student")
	}
	return helper.Success(c, "OK", results)
}

// =======================
// EVENTS STUDENT
// =======================
func (ctl *StudentController) GetStudentEvents(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	if _, aerr := ctl.canView(studentID, callerID); aerr != nil {
		return helper.FromFiberError(c, aerr)
	}

	var events []eventModel.EventModel
	if err := ctl.DB.
		Joins("JOIN students_events ON students_events.event_id = events.id").
		Where("students_events.student_id = ?", studentID).
		Preload("Type").
		Order("events.date_start DESC").
		Find(&events).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil event student")
	}
	return helper.Success(c, "OK", events)
}

// =======================
// ADD (multipart + avatar)
// =======================
// Coach menambahkan student binaan: user + role + profil dalam satu
// transaksi; password digenerate dan diemail bila email diisi.
func (ctl *StudentController) AddStudent(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req authDto.RegisterStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.GroupID != nil {
		if _, gerr := guard.CoachOwnsGroup(ctl.DB, *req.GroupID, coachID); gerr != nil {
			return helper.FromFiberError(c, gerr)
		}
	}

	avatarURL := configs.DefaultAvatar
	if fh, ferr := c.FormFile("avatar"); ferr == nil && fh != nil {
		if ctl.OSS == nil {
			return helper.Error(c, fiber.StatusServiceUnavailable, "Penyimpanan avatar belum dikonfigurasi")
		}
		url, uerr := ctl.OSS.UploadAsWebP(fh, "avatars")
		if uerr != nil {
			return helper.Error(c, fiber.StatusBadGateway, "Gagal mengunggah avatar")
		}
		avatarURL = url
	}

	var plainPassword string
	user := userModel.UserModel{
		LastName:    req.LastName,
		FirstName:   req.FirstName,
		Patronymic:  req.Patronymic,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		AvatarURL:   avatarURL,
		GenderID:    req.GenderID,
	}
	if req.Email != nil {
		plainPassword, err = authService.GeneratePassword()
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat password")
		}
		hashed, herr := authService.HashPassword(plainPassword)
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
		role, err := authRepo.FindRoleByCode(tx, constants.RoleCodeStudent)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Role student belum tersedia")
		}
		if err := authRepo.AttachRole(tx, user.ID, role.ID); err != nil {
			return err
		}
		profile := model.StudentProfileModel{
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

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student berhasil ditambahkan", authDto.NewUserResponse(&user))
}

// =======================
// UPDATE (multipart + avatar)
// =======================
// Satu form boleh campur field user (nama, kontak, avatar) dan field
// profil student (grup, level).
func (ctl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	student, gerr := guard.CoachOwnsStudent(ctl.DB, studentID, coachID)
	if gerr != nil {
		return helper.FromFiberError(c, gerr)
	}

	var profileReq dto.UpdateStudentRequest
	if err := c.BodyParser(&profileReq); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	var userReq userDto.UpdateUserRequest
	if err := c.BodyParser(&userReq); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	userReq.Normalize()
	if err := validate.Struct(&userReq); err != nil {
		return helper.ValidationError(c, err)
	}

	if profileReq.GroupID != nil {
		if _, gerr := guard.CoachOwnsGroup(ctl.DB, *profileReq.GroupID, coachID); gerr != nil {
			return helper.FromFiberError(c, gerr)
		}
	}

	profileUpdates := profileReq.BuildUpdateMap()
	userUpdates := userReq.BuildUpdateMap()

	if fh, ferr := c.FormFile("avatar"); ferr == nil && fh != nil {
		if ctl.OSS == nil {
			return helper.Error(c, fiber.StatusServiceUnavailable, "Penyimpanan avatar belum dikonfigurasi")
		}
		url, uerr := ctl.OSS.UploadAsWebP(fh, "avatars")
		if uerr != nil {
			return helper.Error(c, fiber.StatusBadGateway, "Gagal mengunggah avatar")
		}
		userUpdates["avatar_url"] = url
	}

	if len(profileUpdates) == 0 && len(userUpdates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if len(profileUpdates) > 0 {
			if err := tx.Model(student).Updates(profileUpdates).Error; err != nil {
				return err
			}
		}
		if len(userUpdates) > 0 {
			if err := tx.Model(&userModel.UserModel{}).
				Where("id = ?", studentID).
				Updates(userUpdates).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
				}
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	var fresh model.StudentProfileModel
	if err := ctl.DB.
		Preload("StudentData").
		Preload("Group").
		Preload("SportLevel").
		First(&fresh, "student_id = ?", studentID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil student")
	}
	return helper.Success(c, "Student berhasil diperbarui", fresh)
}

// =======================
// DELETE
// =======================
// Hapus user-nya sekalian: profil, role join, hasil (SET NULL), dan
// attendance mengikuti FK policy.
func (ctl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id bukan UUID")
	}

	if _, gerr := guard.CoachOwnsStudent(ctl.DB, studentID, coachID); gerr != nil {
		return helper.FromFiberError(c, gerr)
	}

	var user userModel.UserModel
	if err := ctl.DB.First(&user, "id = ?", studentID).Error; err == nil {
		if user.AvatarURL != "" && user.AvatarURL != configs.DefaultAvatar && ctl.OSS != nil {
			if derr := ctl.OSS.DeleteByPublicURL(user.AvatarURL); derr != nil {
				log.Printf("[WARN] hapus avatar %s: %v", user.AvatarURL, derr)
			}
		}
	}

	if err := ctl.DB.Delete(&userModel.UserModel{}, "id = ?", studentID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus student")
	}
	return helper.Success(c, "Student berhasil dihapus", nil)
}
