package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestArticleFilter_HasSearch(t *testing.T) {
	tests := []struct {
		search string
		want   bool
	}{
		{"react", true},
		{"  React  ", true},
		{"", false},
		{"   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			f := ArticleFilter{Search: tt.search}
			if got := f.HasSearch(); got != tt.want {
				t.Errorf("HasSearch(%q) = %v, want %v", tt.search, got, tt.want)
			}
		})
	}
}

func TestArticleUpdate_Apply(t *testing.T) {
	base := func() Article {
		return Article{
			ID:       "a1",
			Title:    "T1",
			Content:  "C1",
			Tags:     []string{"go", "web"},
			AuthorID: "u1",
		}
	}

	t.Run("empty update leaves article unchanged", func(t *testing.T) {
		a := base()
		u := ArticleUpdate{}
		if !u.IsEmpty() {
			t.Fatal("IsEmpty() = false, want true")
		}
		u.Apply(&a)
		if a.Title != "T1" || a.Content != "C1" || len(a.Tags) != 2 {
			t.Errorf("article changed: %+v", a)
		}
	})

	t.Run("present fields replace stored values", func(t *testing.T) {
		a := base()
		title := "T2"
		u := ArticleUpdate{Title: &title}
		u.Apply(&a)
		if a.Title != "T2" {
			t.Errorf("Title = %q, want T2", a.Title)
		}
		if a.Content != "C1" {
			t.Errorf("Content = %q, want C1", a.Content)
		}
	})

	t.Run("tags are replaced wholesale in submitted order", func(t *testing.T) {
		a := base()
		tags := []string{"rust", "go", "cli"}
		u := ArticleUpdate{Tags: &tags}
		u.Apply(&a)
		want := []string{"rust", "go", "cli"}
		if fmt.Sprint(a.Tags) != fmt.Sprint(want) {
			t.Errorf("Tags = %v, want %v", a.Tags, want)
		}
		tags[0] = "mutated"
		if a.Tags[0] != "rust" {
			t.Error("Apply must copy tags, not alias the request slice")
		}
	})

	t.Run("empty tag list clears tags", func(t *testing.T) {
		a := base()
		tags := []string{}
		u := ArticleUpdate{Tags: &tags}
		u.Apply(&a)
		if a.Tags == nil || len(a.Tags) != 0 {
			t.Errorf("Tags = %#v, want empty non-nil slice", a.Tags)
		}
	})

	t.Run("author is never touched", func(t *testing.T) {
		a := base()
		title, content := "x", "y"
		ArticleUpdate{Title: &title, Content: &content}.Apply(&a)
		if a.AuthorID != "u1" {
			t.Errorf("AuthorID = %q, want u1", a.AuthorID)
		}
	})
}

func TestNormalizeTags(t *testing.T) {
	if got := NormalizeTags(nil); got == nil || len(got) != 0 {
		t.Errorf("NormalizeTags(nil) = %#v, want empty non-nil slice", got)
	}
}

func TestUserShapes(t *testing.T) {
	u := &User{ID: "u1", Username: "alice", Email: "alice@example.com"}

	if ref := u.Ref(); ref.ID != "u1" {
		t.Errorf("Ref().ID = %q, want u1", ref.ID)
	}
	view := u.View()
	if view.ID != "u1" || view.Username != "alice" {
		t.Errorf("View() = %+v", view)
	}
}

func TestErrorsWrap(t *testing.T) {
	err := fmt.Errorf("delete article: %w", ErrForbidden)
	if !errors.Is(err, ErrForbidden) {
		t.Error("wrapped ErrForbidden not matched by errors.Is")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("ErrForbidden must not match ErrNotFound")
	}
}
