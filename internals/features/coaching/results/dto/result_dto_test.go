package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeKumiteMetrics(t *testing.T) {
	avg, eff := ComputeKumiteMetrics(10, 4, 5)
	assert.Equal(t, 2.0, avg)
	assert.Equal(t, 1.2, eff)
}

func TestComputeKumiteMetrics_Rounding(t *testing.T) {
	// 10/3 = 3.333… → 3.33 ; (10-4)/3 = 2 → 2.0
	avg, eff := ComputeKumiteMetrics(10, 4, 3)
	assert.Equal(t, 3.33, avg)
	assert.Equal(t, 2.0, eff)
}

func TestComputeKumiteMetrics_NegativeEfficiency(t *testing.T) {
	// lebih banyak kebobolan daripada mencetak
	avg, eff := ComputeKumiteMetrics(2, 8, 4)
	assert.Equal(t, 0.5, avg)
	assert.Equal(t, -1.5, eff)
}

func TestUpdateResultRequest_BuildUpdateMap_Empty(t *testing.T) {
	var req UpdateResultRequest
	assert.Empty(t, req.BuildUpdateMap())
}

func TestUpdateResultRequest_BuildUpdateMap(t *testing.T) {
	fights := 7
	req := UpdateResultRequest{NumberOfFights: &fights}

	m := req.BuildUpdateMap()
	assert.Equal(t, 7, m["number_of_fights"])
	// komponen skor tidak membawa metrik turunan ke map
	assert.NotContains(t, m, "average_score")
	assert.NotContains(t, m, "efficiency")

	visited := false
	only := UpdateResultRequest{IsVisited: &visited}
	assert.Equal(t, false, only.BuildUpdateMap()["is_visited"])
}
