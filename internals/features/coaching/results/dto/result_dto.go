package dto

import (
	"math"

	"github.com/google/uuid"

	eventModel "karate_coaching_backend/internals/features/coaching/events/model"
	resultModel "karate_coaching_backend/internals/features/coaching/results/model"
)

/* ========== REQUEST DTOs ========== */

// CreateResultRequest — hasil kumite. number_of_fights minimal 1:
// metrik turunan dibagi jumlah fight, nol ditolak di validasi.
type CreateResultRequest struct {
	StudentID        uuid.UUID  `json:"student_id" validate:"required"`
	EventID          uuid.UUID  `json:"event_id" validate:"required"`
	SportTypeID      uuid.UUID  `json:"sport_type_id" validate:"required"`
	AgeCategoryID    *uuid.UUID `json:"age_category_id"`
	WeightCategoryID *uuid.UUID `json:"weight_category_id"`
	PlaceID          *uuid.UUID `json:"place_id"`
	IsVisited        *bool      `json:"is_visited"`
	NumberOfFights   int        `json:"number_of_fights" validate:"required,min=1"`
	NumberOfWins     int        `json:"number_of_wins" validate:"min=0"`
	NumberOfDefeats  int        `json:"number_of_defeats" validate:"min=0"`
	PointsScored     int        `json:"points_scored" validate:"min=0"`
	PointsMissed     int        `json:"points_missed" validate:"min=0"`
}

// UpdateResultRequest — partial patch mentah: hanya field yang dikirim
// yang diubah. Metrik turunan dihitung sekali saat create, update TIDAK
// menghitung ulang.
type UpdateResultRequest struct {
	AgeCategoryID    *uuid.UUID `json:"age_category_id"`
	WeightCategoryID *uuid.UUID `json:"weight_category_id"`
	PlaceID          *uuid.UUID `json:"place_id"`
	IsVisited        *bool      `json:"is_visited"`
	NumberOfFights   *int       `json:"number_of_fights" validate:"omitempty,min=1"`
	NumberOfWins     *int       `json:"number_of_wins" validate:"omitempty,min=0"`
	NumberOfDefeats  *int       `json:"number_of_defeats" validate:"omitempty,min=0"`
	PointsScored     *int       `json:"points_scored" validate:"omitempty,min=0"`
	PointsMissed     *int       `json:"points_missed" validate:"omitempty,min=0"`
}

func (r *UpdateResultRequest) BuildUpdateMap() map[string]interface{} {
	m := map[string]interface{}{}
	if r.AgeCategoryID != nil {
		m["age_category_id"] = *r.AgeCategoryID
	}
	if r.WeightCategoryID != nil {
		m["weight_category_id"] = *r.WeightCategoryID
	}
	if r.PlaceID != nil {
		m["place_id"] = *r.PlaceID
	}
	if r.IsVisited != nil {
		m["is_visited"] = *r.IsVisited
	}
	if r.NumberOfFights != nil {
		m["number_of_fights"] = *r.NumberOfFights
	}
	if r.NumberOfWins != nil {
		m["number_of_wins"] = *r.NumberOfWins
	}
	if r.NumberOfDefeats != nil {
		m["number_of_defeats"] = *r.NumberOfDefeats
	}
	if r.PointsScored != nil {
		m["points_scored"] = *r.PointsScored
	}
	if r.PointsMissed != nil {
		m["points_missed"] = *r.PointsMissed
	}
	return m
}

/* ========== METRIK TURUNAN ========== */

// ComputeKumiteMetrics menghitung metrik turunan hasil kumite:
// average = scored/fights, efficiency = (scored−missed)/fights,
// dua angka di belakang koma (kolom numeric(5,2)).
func ComputeKumiteMetrics(pointsScored, pointsMissed, numberOfFights int) (averageScore, efficiency float64) {
	f := float64(numberOfFights)
	averageScore = round2(float64(pointsScored) / f)
	efficiency = round2(float64(pointsScored-pointsMissed) / f)
	return averageScore, efficiency
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

/* ========== RESPONSE DTOs ========== */

// EventWithResults — listing hasil dikelompokkan per event milik coach,
// event terbaru (date_start) dulu.
type EventWithResults struct {
	Event   eventModel.EventModel     `json:"event"`
	Results []resultModel.ResultModel `json:"results"`
}

/* ========== COMMENTS ========== */

type CreateResultCommentRequest struct {
	Body string `json:"body" validate:"required,min=1,max=2000"`
}
