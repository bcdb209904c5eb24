package validator

import (
	"errors"
	"strings"
	"testing"

	"blog-api/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestValidateSignup(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		signup  *Signup
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid signup",
			signup: &Signup{Username: "alice", Email: "alice@example.com", Password: "pw"},
		},
		{
			name:    "missing username",
			signup:  &Signup{Email: "alice@example.com", Password: "pw"},
			wantErr: true,
			errMsg:  "username",
		},
		{
			name:    "blank username",
			signup:  &Signup{Username: "   ", Email: "alice@example.com", Password: "pw"},
			wantErr: true,
			errMsg:  "username",
		},
		{
			name:    "missing email",
			signup:  &Signup{Username: "alice", Password: "pw"},
			wantErr: true,
			errMsg:  "email",
		},
		{
			name:    "invalid email format",
			signup:  &Signup{Username: "alice", Email: "not-an-email", Password: "pw"},
			wantErr: true,
			errMsg:  "invalid_email_format",
		},
		{
			name:    "missing password",
			signup:  &Signup{Username: "alice", Email: "alice@example.com"},
			wantErr: true,
			errMsg:  "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateSignup(tt.signup)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSignup() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("ValidateSignup() error = %v, want ErrValidation", err)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidateSignup() error = %v, want containing %q", err, tt.errMsg)
				}
			}
		})
	}
}

func TestValidateArticle(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		article *domain.Article
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid article",
			article: &domain.Article{Title: "Hello", Content: "# Body", AuthorID: "u1"},
		},
		{
			name:    "valid article with tags",
			article: &domain.Article{Title: "Hello", Content: "Body", Tags: []string{"go"}, AuthorID: "u1"},
		},
		{
			name:    "missing title",
			article: &domain.Article{Content: "Body", AuthorID: "u1"},
			wantErr: true,
			errMsg:  "title_required",
		},
		{
			name:    "whitespace title",
			article: &domain.Article{Title: " \t", Content: "Body", AuthorID: "u1"},
			wantErr: true,
			errMsg:  "title_required",
		},
		{
			name:    "missing content",
			article: &domain.Article{Title: "Hello", AuthorID: "u1"},
			wantErr: true,
			errMsg:  "content_required",
		},
		{
			name:    "missing author",
			article: &domain.Article{Title: "Hello", Content: "Body"},
			wantErr: true,
			errMsg:  "author_id_required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateArticle(tt.article)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateArticle() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidateArticle() error = %v, want containing %q", err, tt.errMsg)
			}
		})
	}
}

func TestValidateArticleUpdate(t *testing.T) {
	v := NewValidator()
	tags := []string{}

	tests := []struct {
		name    string
		update  *domain.ArticleUpdate
		wantErr bool
		errMsg  string
	}{
		{name: "nothing present", update: &domain.ArticleUpdate{}},
		{name: "only tags, even empty", update: &domain.ArticleUpdate{Tags: &tags}},
		{name: "new title", update: &domain.ArticleUpdate{Title: strPtr("New")}},
		{name: "empty title", update: &domain.ArticleUpdate{Title: strPtr("")}, wantErr: true, errMsg: "title_blank"},
		{name: "blank title", update: &domain.ArticleUpdate{Title: strPtr("  ")}, wantErr: true, errMsg: "title_blank"},
		{name: "empty content", update: &domain.ArticleUpdate{Content: strPtr("")}, wantErr: true, errMsg: "content_blank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateArticleUpdate(tt.update)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateArticleUpdate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidateArticleUpdate() error = %v, want containing %q", err, tt.errMsg)
			}
		})
	}
}

func TestValidateComment(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		comment *domain.Comment
		wantErr bool
		errMsg  string
	}{
		{name: "valid comment", comment: &domain.Comment{Content: "Nice", ArticleID: "a1", AuthorID: "u1"}},
		{name: "missing content", comment: &domain.Comment{ArticleID: "a1", AuthorID: "u1"}, wantErr: true, errMsg: "content_required"},
		{name: "blank content", comment: &domain.Comment{Content: "\n", ArticleID: "a1", AuthorID: "u1"}, wantErr: true, errMsg: "content_required"},
		{name: "missing article", comment: &domain.Comment{Content: "Nice", AuthorID: "u1"}, wantErr: true, errMsg: "article_id_required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateComment(tt.comment)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateComment() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidateComment() error = %v, want containing %q", err, tt.errMsg)
			}
		})
	}
}

func TestFields(t *testing.T) {
	v := NewValidator()

	err := v.ValidateSignup(&Signup{})
	got := Fields(err)
	want := []string{"email: email_required", "password: password_required", "username: username_required"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Fields() = %v, want %v", got, want)
	}

	if Fields(errors.New("other")) != nil {
		t.Error("Fields() on a non-validation error should be nil")
	}
}
