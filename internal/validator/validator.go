package validator

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/Titanium1971/artimon-backend/internal/domain"
)

var (
	slugRegex   = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	validStatus = []interface{}{domain.StatusDraft, domain.StatusPublished}
)

// Validator provides validation methods for request payloads.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateArticleCreate validates an article creation payload.
func (v *Validator) ValidateArticleCreate(a *domain.ArticleCreate) error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Title,
			validation.Required.Error("title_required"),
			validation.Length(1, 300).Error("title_too_long"),
		),
		validation.Field(&a.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&a.Excerpt,
			validation.Required.Error("excerpt_required"),
		),
		validation.Field(&a.Category,
			validation.Required.Error("category_required"),
		),
		validation.Field(&a.Status,
			validation.Required.Error("status_required"),
			validation.In(validStatus...).Error("invalid_status"),
		),
	)
}

// ValidateArticleUpdate validates a partial article update. Nil fields mean
// "do not change" and are skipped.
func (v *Validator) ValidateArticleUpdate(u *domain.ArticleUpdate) error {
	errs := validation.Errors{}
	if u.Title != nil && *u.Title == "" {
		errs["title"] = validation.NewError("title_empty", "title cannot be empty")
	}
	if u.Content != nil && *u.Content == "" {
		errs["content"] = validation.NewError("content_empty", "content cannot be empty")
	}
	if u.Status != nil && !domain.IsValidStatus(*u.Status) {
		errs["status"] = validation.NewError("invalid_status", "status must be draft or published")
	}
	return errs.Filter()
}

// ValidateCategoryCreate validates a category creation payload.
func (v *Validator) ValidateCategoryCreate(c *domain.CategoryCreate) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&c.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
	)
}

// ValidateReviewCreate validates a review submission.
func (v *Validator) ValidateReviewCreate(r *domain.ReviewCreate) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&r.Rating,
			validation.Required.Error("rating_required"),
			validation.Min(1).Error("rating_out_of_range"),
			validation.Max(5).Error("rating_out_of_range"),
		),
		validation.Field(&r.Comment,
			validation.Required.Error("comment_required"),
		),
	)
}

// ValidateContactCreate validates a contact-form submission.
func (v *Validator) ValidateContactCreate(m *domain.ContactCreate) error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&m.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&m.Message,
			validation.Required.Error("message_required"),
		),
	)
}

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateLogin validates an admin login payload.
func (v *Validator) ValidateLogin(r *LoginRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required.Error("email_required"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password_required"),
		),
	)
}
