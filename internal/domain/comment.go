package domain

import "time"

// Comment represents a comment entity in the system.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	ArticleID string    `json:"articleId"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentWithAuthor is a comment listed under its article.
type CommentWithAuthor struct {
	Comment
	Author AuthorView `json:"author"`
}

// CommentWithArticle is a comment listed on its author's profile.
type CommentWithArticle struct {
	Comment
	Article ArticleRef `json:"article"`
}
