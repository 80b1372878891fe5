package models

import "errors"

// Validate checks if the feedback item meets all validation requirements
func (f *FeedbackBlog) Validate() error {
	return validate.Struct(f)
}

// BeforeCreate sets up any necessary fields before creation
func (f *FeedbackBlog) BeforeCreate() {
	if f.Likes == nil {
		f.Likes = []string{}
	}
	if f.Comments == nil {
		f.Comments = []string{}
	}
}

// ToggleLike adds the user id to Likes if absent, removes it if present.
// Returns true when the id was added.
func (f *FeedbackBlog) ToggleLike(userID string) bool {
	for i, id := range f.Likes {
		if id == userID {
			f.Likes = append(f.Likes[:i], f.Likes[i+1:]...)
			return false
		}
	}
	f.Likes = append(f.Likes, userID)
	return true
}

// AddComment appends a comment id to the feedback item
func (f *FeedbackBlog) AddComment(commentID string) error {
	if commentID == "" {
		return errors.New("comment id cannot be empty")
	}
	f.Comments = append(f.Comments, commentID)
	return nil
}

// RemoveComment removes a comment id from the feedback item
func (f *FeedbackBlog) RemoveComment(commentID string) error {
	for i, id := range f.Comments {
		if id == commentID {
			f.Comments = append(f.Comments[:i], f.Comments[i+1:]...)
			return nil
		}
	}
	return errors.New("comment not found")
}
