package repositories

import "github.com/Beto2203/feedback-backend/app/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	List() ([]*models.User, error)
	Update(user *models.User) error
	Delete(id string) error
}

// FeedbackRepository defines the interface for feedback item data access
type FeedbackRepository interface {
	Create(feedback *models.FeedbackBlog) error
	GetByID(id string) (*models.FeedbackBlog, error)
	List() ([]*models.FeedbackBlog, error)
	Update(feedback *models.FeedbackBlog) error
	Delete(id string) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id string) (*models.Comment, error)
	GetMany(ids []string) ([]*models.Comment, error)
	List() ([]*models.Comment, error)
	Delete(id string) error
	DeleteMany(ids []string) error
}
