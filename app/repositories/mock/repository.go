package mock

import (
	"sync"

	"github.com/Beto2203/feedback-backend/app/models"
	"github.com/Beto2203/feedback-backend/app/repositories"

	"github.com/google/uuid"
)

type UserRepository struct {
	users map[string]*models.User
	mutex sync.RWMutex
}

type FeedbackRepository struct {
	feedbacks map[string]*models.FeedbackBlog
	mutex     sync.RWMutex
}

type CommentRepository struct {
	comments map[string]*models.Comment
	mutex    sync.RWMutex
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*models.User)}
}

func NewFeedbackRepository() *FeedbackRepository {
	return &FeedbackRepository{feedbacks: make(map[string]*models.FeedbackBlog)}
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{comments: make(map[string]*models.Comment)}
}

func (m *UserRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.users = make(map[string]*models.User)
}

func (m *FeedbackRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.feedbacks = make(map[string]*models.FeedbackBlog)
}

func (m *CommentRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.comments = make(map[string]*models.Comment)
}

// UserRepository implementation

func (m *UserRepository) Create(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	user.ID = uuid.NewString()
	m.users[user.ID] = user
	return nil
}

func (m *UserRepository) GetByID(id string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *UserRepository) GetByUsername(username string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *UserRepository) List() ([]*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var users []*models.User
	for _, user := range m.users {
		users = append(users, user)
	}
	return users, nil
}

func (m *UserRepository) Update(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.users[user.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.users[user.ID] = user
	return nil
}

func (m *UserRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.users[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

// FeedbackRepository implementation

func (m *FeedbackRepository) Create(feedback *models.FeedbackBlog) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	feedback.ID = uuid.NewString()
	feedback.BeforeCreate()
	m.feedbacks[feedback.ID] = feedback
	return nil
}

func (m *FeedbackRepository) GetByID(id string) (*models.FeedbackBlog, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	feedback, exists := m.feedbacks[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return feedback, nil
}

func (m *FeedbackRepository) List() ([]*models.FeedbackBlog, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var feedbacks []*models.FeedbackBlog
	for _, feedback := range m.feedbacks {
		feedbacks = append(feedbacks, feedback)
	}
	return feedbacks, nil
}

func (m *FeedbackRepository) Update(feedback *models.FeedbackBlog) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.feedbacks[feedback.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.feedbacks[feedback.ID] = feedback
	return nil
}

func (m *FeedbackRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.feedbacks[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.feedbacks, id)
	return nil
}

// CommentRepository implementation

func (m *CommentRepository) Create(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	comment.ID = uuid.NewString()
	m.comments[comment.ID] = comment
	return nil
}

func (m *CommentRepository) GetByID(id string) (*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comment, exists := m.comments[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return comment, nil
}

func (m *CommentRepository) GetMany(ids []string) ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comments := []*models.Comment{}
	for _, id := range ids {
		if comment, exists := m.comments[id]; exists {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

func (m *CommentRepository) List() ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var comments []*models.Comment
	for _, comment := range m.comments {
		comments = append(comments, comment)
	}
	return comments, nil
}

func (m *CommentRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.comments[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.comments, id)
	return nil
}

func (m *CommentRepository) DeleteMany(ids []string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, id := range ids {
		delete(m.comments, id)
	}
	return nil
}
