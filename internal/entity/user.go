package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an app user for data transfer between layers.
type User struct {
	ID        uuid.UUID `json:"id"`
	OpenID    string    `json:"openid"`
	Nickname  *string   `json:"nickname,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`

	HealthProfile

	ScanCount   int        `json:"scan_count"`
	LastScanAt  *time.Time `json:"last_scan_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// HealthProfile carries the optional consumer attributes used to bias
// AI-generated advice. All fields may be empty.
type HealthProfile struct {
	Age                *int    `json:"age,omitempty"`
	HealthConditions   *string `json:"health_conditions,omitempty"`
	DietaryPreferences *string `json:"dietary_preferences,omitempty"`
	Allergies          *string `json:"allergies,omitempty"`
}

// Empty reports whether no profile attribute is set.
func (p HealthProfile) Empty() bool {
	return p.Age == nil && p.HealthConditions == nil && p.DietaryPreferences == nil && p.Allergies == nil
}
