package domain

import "time"

// Article represents a blog article.
type Article struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Content         string    `json:"content"`
	Excerpt         string    `json:"excerpt"`
	ImageURL        *string   `json:"image_url,omitempty"`
	Category        string    `json:"category"`
	Tags            []string  `json:"tags"`
	MetaDescription *string   `json:"meta_description,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Article statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// ValidStatuses contains all valid article statuses.
var ValidStatuses = []string{StatusDraft, StatusPublished}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ArticleCreate carries the fields accepted when creating an article.
// Slug and timestamps are derived server-side.
type ArticleCreate struct {
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	Excerpt         string   `json:"excerpt"`
	ImageURL        *string  `json:"image_url"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	MetaDescription *string  `json:"meta_description"`
	Status          string   `json:"status"`
}

// ArticleUpdate carries a partial update. Nil fields are left unchanged.
type ArticleUpdate struct {
	Title           *string   `json:"title"`
	Content         *string   `json:"content"`
	Excerpt         *string   `json:"excerpt"`
	ImageURL        *string   `json:"image_url"`
	Category        *string   `json:"category"`
	Tags            *[]string `json:"tags"`
	MetaDescription *string   `json:"meta_description"`
	Status          *string   `json:"status"`
}

// ArticleListOptions carries filter and pagination parameters for public listing.
type ArticleListOptions struct {
	Category string
	Limit    int
	Offset   int
}
