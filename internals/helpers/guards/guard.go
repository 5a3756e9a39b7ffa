package guard

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "karate_coaching_backend/internals/features/coaching/events/model"
	groupModel "karate_coaching_backend/internals/features/coaching/groups/model"
	resultModel "karate_coaching_backend/internals/features/coaching/results/model"
	studentModel "karate_coaching_backend/internals/features/coaching/students/model"
	trainingModel "karate_coaching_backend/internals/features/coaching/trainings/model"
)

// Guard kepemilikan: dijalankan di awal handler mutasi.
// Aturan: resource tidak ada → 404; ada tapi bukan milik caller → 403.
// NotFound selalu menang atas Forbidden.

var (
	errNotFound  = fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	errForbidden = fiber.NewError(fiber.StatusForbidden, "Bukan milik Anda")
)

func CoachOwnsGroup(db *gorm.DB, groupID, callerID uuid.UUID) (*groupModel.GroupModel, error) {
	var g groupModel.GroupModel
	if err := db.First(&g, "id = ?", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound
		}
		return nil, err
	}
	if g.CoachID == nil || *g.CoachID != callerID {
		return nil, errForbidden
	}
	return &g, nil
}

func CoachOwnsEvent(db *gorm.DB, eventID, callerID uuid.UUID) (*eventModel.EventModel, error) {
	var e eventModel.EventModel
	if err := db.First(&e, "id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound
		}
		return nil, err
	}
	if e.CoachID == nil || *e.CoachID != callerID {
		return nil, errForbidden
	}
	return &e, nil
}

func CoachOwnsStudent(db *gorm.DB, studentID, callerID uuid.UUID) (*studentModel.StudentProfileModel, error) {
	var s studentModel.StudentProfileModel
	if err := db.First(&s, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound
		}
		return nil, err
	}
	if s.CoachID == nil || *s.CoachID != callerID {
		return nil, errForbidden
	}
	return &s, nil
}

// CoachOwnsTraining: training → coach_id langsung.
func CoachOwnsTraining(db *gorm.DB, trainingID, callerID uuid.UUID) (*trainingModel.TrainingModel, error) {
	var t trainingModel.TrainingModel
	if err := db.First(&t, "id = ?", trainingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound
		}
		return nil, err
	}
	if t.CoachID == nil || *t.CoachID != callerID {
		return nil, errForbidden
	}
	return &t, nil
}

// CoachOwnsResult: result → event → coach.
func CoachOwnsResult(db *gorm.DB, resultID, callerID uuid.UUID) (*resultModel.ResultModel, error) {
	var r resultModel.ResultModel
	if err := db.Preload("Event").First(&r, "id = ?", resultID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound
		}
		return nil, err
	}
	if r.Event == nil || r.Event.CoachID == nil || *r.Event.CoachID != callerID {
		return nil, errForbidden
	}
	return &r, nil
}

// CanManageUser: user boleh mengubah dirinya sendiri; coach boleh
// mengubah user yang berstatus student binaannya. Eksistensi target
// dicek duluan oleh handler (404 sebelum 403).
func CanManageUser(db *gorm.DB, targetUserID, callerID uuid.UUID) error {
	if targetUserID == callerID {
		return nil
	}
	var s studentModel.StudentProfileModel
	if err := db.First(&s, "student_id = ?", targetUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// target bukan student → tidak ada jalur coach
			return errForbidden
		}
		return err
	}
	if s.CoachID == nil || *s.CoachID != callerID {
		return errForbidden
	}
	return nil
}
