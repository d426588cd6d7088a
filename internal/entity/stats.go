package entity

import (
	"time"

	"github.com/nutriscan/nutrition-scanner/constants"
)

// DetectionStats aggregates a user's detections over a window.
type DetectionStats struct {
	Total         int                         `json:"total"`
	Completed     int                         `json:"completed"`
	Failed        int                         `json:"failed"`
	AverageScore  *float64                    `json:"average_score,omitempty"` // completed rows only
	RiskCounts    map[constants.RiskLevel]int `json:"risk_counts"`
	FavoriteCount int                         `json:"favorite_count"`
}

// DailyStat is one day's bucket in a weekly trend.
type DailyStat struct {
	Date         time.Time `json:"date"` // midnight UTC
	Count        int       `json:"count"`
	AverageScore *float64  `json:"average_score,omitempty"`
}
