package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "karate_coaching_backend/internals/features/users/auth/model"
	userModel "karate_coaching_backend/internals/features/users/user/model"
)

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Preload("Roles").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Preload("Roles").Preload("Gender").First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindRoleByCode mencari role referensi (coach_role / student_role).
func FindRoleByCode(db *gorm.DB, code string) (*userModel.RoleModel, error) {
	var role userModel.RoleModel
	if err := db.Where("code = ?", code).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func AttachRole(db *gorm.DB, userID, roleID uuid.UUID) error {
	return db.Create(&userModel.UserRoleModel{UserID: userID, RoleID: roleID}).Error
}

/* ========== RESET PASSWORD CODES ========== */

// CodeExists: kode aktif (belum dipakai) dengan angka yang sama masih ada?
// Dipakai loop anti-tabrakan saat generate kode baru.
func CodeExists(db *gorm.DB, code string) (bool, error) {
	var count int64
	err := db.Model(&authModel.ResetPasswordCodeModel{}).
		Where("code = ? AND is_used = ?", code, false).
		Count(&count).Error
	return count > 0, err
}

func CreateResetCode(db *gorm.DB, userID uuid.UUID, code string) error {
	return db.Create(&authModel.ResetPasswordCodeModel{
		UserID: userID,
		Code:   code,
	}).Error
}

// FindActiveResetCode mengambil kode terbaru milik user yang belum dipakai.
func FindActiveResetCode(db *gorm.DB, userID uuid.UUID, code string) (*authModel.ResetPasswordCodeModel, error) {
	var rc authModel.ResetPasswordCodeModel
	err := db.Where("user_id = ? AND code = ? AND is_used = ?", userID, code, false).
		Order("created_at DESC").
		First(&rc).Error
	if err != nil {
		return nil, err
	}
	return &rc, nil
}

// MarkCodeUsed menandai kode sekali-pakai sudah terpakai.
func MarkCodeUsed(db *gorm.DB, id uuid.UUID) error {
	return db.Model(&authModel.ResetPasswordCodeModel{}).
		Where("id = ?", id).
		Update("is_used", true).Error
}

// PurgeExpiredCodes membersihkan kode yang lewat TTL (dipanggil opportunistik).
func PurgeExpiredCodes(db *gorm.DB, now time.Time) error {
	return db.Where("created_at < ?", now.Add(-authModel.ResetCodeTTL)).
		Delete(&authModel.ResetPasswordCodeModel{}).Error
}
