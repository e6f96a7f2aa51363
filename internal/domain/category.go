package domain

// Category represents an article category.
type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
}

// CategoryWithCount is a category annotated with its live published-article count.
type CategoryWithCount struct {
	Category
	ArticleCount int64 `json:"article_count"`
}

// CategoryCreate carries the fields accepted when creating a category.
type CategoryCreate struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}
