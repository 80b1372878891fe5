package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// User represents a registered account. PasswordHash is never serialized.
type User struct {
	ID           string `json:"id" validate:"required"`
	Username     string `json:"username" validate:"required,min=3"`
	Name         string `json:"name"`
	PasswordHash string `json:"-" validate:"required"`
}

// FeedbackBlog represents a feedback item posted by a user. Likes holds user
// ids, Comments holds comment ids in creation order.
type FeedbackBlog struct {
	ID       string   `json:"id" validate:"required"`
	Title    string   `json:"title" validate:"required"`
	Content  string   `json:"content"`
	Tag      string   `json:"tag" validate:"required"`
	AuthorID string   `json:"authorId" validate:"required"`
	Likes    []string `json:"likes"`
	Comments []string `json:"comments"`
}

// Comment represents a comment on a feedback item.
type Comment struct {
	ID       string `json:"id" validate:"required"`
	Comment  string `json:"comment" validate:"required"`
	AuthorID string `json:"authorId" validate:"required"`
}

// AuthorRef is the author summary attached to a populated feedback item.
type AuthorRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// FeedbackDetail is a feedback item with its author and comments resolved.
type FeedbackDetail struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Content  string     `json:"content"`
	Tag      string     `json:"tag"`
	Author   AuthorRef  `json:"author"`
	Likes    []string   `json:"likes"`
	Comments []*Comment `json:"comments"`
}
