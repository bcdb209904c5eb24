package domain

import (
	"strings"
	"time"
)

// Article represents an article entity as it is stored.
type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ArticleView is an article with its author resolved for display.
type ArticleView struct {
	Article
	Author AuthorView `json:"author"`
}

// ArticleRef is the minimal article shape shown next to a comment.
type ArticleRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ArticleFilter narrows an article listing. Zero values mean "no filter".
type ArticleFilter struct {
	Search   string
	AuthorID string
}

// HasSearch reports whether a non-blank search term is set.
func (f ArticleFilter) HasSearch() bool {
	return strings.TrimSpace(f.Search) != ""
}

// ArticleUpdate carries a partial update. Nil fields are left unchanged.
type ArticleUpdate struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

// IsEmpty reports whether the update touches no field.
func (u ArticleUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.Tags == nil
}

// Apply copies the present fields of the update onto the article.
func (u ArticleUpdate) Apply(a *Article) {
	if u.Title != nil {
		a.Title = *u.Title
	}
	if u.Content != nil {
		a.Content = *u.Content
	}
	if u.Tags != nil {
		a.Tags = NormalizeTags(*u.Tags)
	}
}

// NormalizeTags returns a non-nil copy of tags, keeping submission order.
func NormalizeTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
