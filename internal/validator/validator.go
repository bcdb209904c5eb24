package validator

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"blog-api/internal/domain"
)

// Error carries per-field validation failures. It matches domain.ErrValidation.
type Error struct {
	Fields validation.Errors
}

func (e *Error) Error() string {
	return "validation failed: " + e.Fields.Error()
}

func (e *Error) Unwrap() error {
	return domain.ErrValidation
}

// Validator provides validation methods for incoming payloads.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Signup is the payload of a registration.
type Signup struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateSignup validates a registration payload.
func (v *Validator) ValidateSignup(s *Signup) error {
	return wrap(validation.ValidateStruct(s,
		validation.Field(&s.Username,
			validation.Required.Error("username_required"),
			validation.By(notBlank("username_required")),
		),
		validation.Field(&s.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&s.Password,
			validation.Required.Error("password_required"),
		),
	))
}

// ValidateArticle validates an article about to be created.
func (v *Validator) ValidateArticle(a *domain.Article) error {
	return wrap(validation.ValidateStruct(a,
		validation.Field(&a.Title,
			validation.Required.Error("title_required"),
			validation.By(notBlank("title_required")),
		),
		validation.Field(&a.Content,
			validation.Required.Error("content_required"),
			validation.By(notBlank("content_required")),
		),
		validation.Field(&a.AuthorID,
			validation.Required.Error("author_id_required"),
		),
	))
}

// ValidateArticleUpdate rejects a title or content that is present but blank.
// Absent fields are fine.
func (v *Validator) ValidateArticleUpdate(u *domain.ArticleUpdate) error {
	return wrap(validation.ValidateStruct(u,
		validation.Field(&u.Title,
			validation.NilOrNotEmpty.Error("title_blank"),
			validation.By(notBlank("title_blank")),
		),
		validation.Field(&u.Content,
			validation.NilOrNotEmpty.Error("content_blank"),
			validation.By(notBlank("content_blank")),
		),
	))
}

// ValidateComment validates a comment about to be added.
func (v *Validator) ValidateComment(c *domain.Comment) error {
	return wrap(validation.ValidateStruct(c,
		validation.Field(&c.Content,
			validation.Required.Error("content_required"),
			validation.By(notBlank("content_required")),
		),
		validation.Field(&c.ArticleID,
			validation.Required.Error("article_id_required"),
		),
		validation.Field(&c.AuthorID,
			validation.Required.Error("author_id_required"),
		),
	))
}

// notBlank rejects strings made only of whitespace. Nil pointers pass.
func notBlank(code string) validation.RuleFunc {
	return func(value interface{}) error {
		var s string
		switch v := value.(type) {
		case string:
			s = v
		case *string:
			if v == nil {
				return nil
			}
			s = *v
		default:
			return nil
		}
		if s != "" && strings.TrimSpace(s) == "" {
			return validation.NewError(code, code)
		}
		return nil
	}
}

func wrap(err error) error {
	if err == nil {
		return nil
	}
	var fields validation.Errors
	if errors.As(err, &fields) {
		return &Error{Fields: fields}
	}
	return &Error{Fields: validation.Errors{"request": err}}
}

// Fields flattens the failures of a validation error into "field: code"
// strings, sorted by field. Other errors yield nil.
func Fields(err error) []string {
	var ve *Error
	if !errors.As(err, &ve) {
		return nil
	}
	out := make([]string, 0, len(ve.Fields))
	for field, fieldErr := range ve.Fields {
		out = append(out, field+": "+fieldErr.Error())
	}
	sort.Strings(out)
	return out
}
