package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"karate_coaching_backend/internals/features/payment/dto"
	"karate_coaching_backend/internals/features/payment/model"
	"karate_coaching_backend/internals/features/payment/service"
	userModel "karate_coaching_backend/internals/features/users/user/model"
	helper "karate_coaching_backend/internals/helpers"
	guard "karate_coaching_backend/internals/helpers/guards"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

var validate = validator.New()

// =======================
// CREATE (coach menagih student)
// =======================
func (ctl *PaymentController) CreatePayment(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if _, gerr := guard.CoachOwnsStudent(ctl.DB, req.StudentID, coachID); gerr != nil {
		return helper.FromFiberError(c, gerr)
	}

	var studentUser userModel.UserModel
	if err := ctl.DB.First(&studentUser, "id = ?", req.StudentID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Student tidak ditemukan")
	}

	var coachUser userModel.UserModel
	if err := ctl.DB.First(&coachUser, "id = ?", coachID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data coach")
	}
	if coachUser.OrganizationID == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Coach belum terikat organisasi")
	}

	payment := model.TrainingPaymentModel{
		OrganizationID: *coachUser.OrganizationID,
		StudentID:      req.StudentID,
		Amount:         req.Amount,
		Description:    req.Description,
		Status:         model.PaymentStatusPending,
		OrderID:        fmt.Sprintf("trn-%s", uuid.New().String()),
	}
	if err := ctl.DB.Create(&payment).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat tagihan")
	}

	email := ""
	if studentUser.Email != nil {
		email = *studentUser.Email
	}
	token, err := service.GenerateSnapToken(payment, studentUser.FullName(), email)
	if err != nil {
		log.Printf("[ERROR] snap token order %s: %v", payment.OrderID, err)
		return helper.Error(c, fiber.StatusBadGateway, "Gagal membuat token pembayaran")
	}
	if err := ctl.DB.Model(&payment).Update("snap_token", token).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan token pembayaran")
	}
	payment.SnapToken = &token

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tagihan dibuat", payment)
}

// =======================
// LIST: tagihan saya (student)
// =======================
func (ctl *PaymentController) GetMyPayments(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var payments []model.TrainingPaymentModel
	if err := ctl.DB.
		Where("student_id = ?", callerID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}
	return helper.Success(c, "OK", payments)
}

// =======================
// LIST: tagihan student binaan (coach)
// =======================
func (ctl *PaymentController) GetStudentPayments(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "student_id bukan UUID")
	}

	if _, gerr := guard.CoachOwnsStudent(ctl.DB, studentID, coachID); gerr != nil {
		return helper.FromFiberError(c, gerr)
	}

	var payments []model.TrainingPaymentModel
	if err := ctl.DB.
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}
	return helper.Success(c, "OK", payments)
}

// =======================
// WEBHOOK NOTIFICATION (public, signature-checked)
// =======================
func (ctl *PaymentController) HandleNotification(c *fiber.Ctx) error {
	var notif dto.MidtransNotification
	if err := c.BodyParser(&notif); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if notif.OrderID == "" || notif.SignatureKey == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak lengkap")
	}

	if !service.VerifySignature(notif.OrderID, notif.StatusCode, notif.GrossAmount, notif.SignatureKey) {
		return helper.Error(c, fiber.StatusForbidden, "Signature tidak valid")
	}

	var payment model.TrainingPaymentModel
	if err := ctl.DB.First(&payment, "order_id = ?", notif.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}

	status := service.MapTransactionStatus(notif.TransactionStatus, notif.FraudStatus)
	updates := map[string]interface{}{"status": status}
	if status == model.PaymentStatusPaid && payment.PaidAt == nil {
		updates["paid_at"] = time.Now()
	}

	if err := ctl.DB.Model(&payment).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui status tagihan")
	}

	log.Printf("[INFO] payment %s → %s", notif.OrderID, status)
	return helper.Success(c, "OK", nil)
}
