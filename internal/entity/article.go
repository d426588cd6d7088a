package entity

import "time"

// Article is a nutrition education content item.
type Article struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Summary     *string   `json:"summary,omitempty"`
	Content     string    `json:"content"`
	Category    *string   `json:"category,omitempty"`
	CoverURL    *string   `json:"cover_url,omitempty"`
	ViewCount   int       `json:"view_count"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
