package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/Beto2203/feedback-backend/app/auth"
	"github.com/Beto2203/feedback-backend/app/models"
	"github.com/Beto2203/feedback-backend/app/repositories"
)

// FeedbackService handles business logic for feedback items
type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepository
	commentRepo  repositories.CommentRepository
	userRepo     repositories.UserRepository
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(feedbackRepo repositories.FeedbackRepository, commentRepo repositories.CommentRepository, userRepo repositories.UserRepository) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		commentRepo:  commentRepo,
		userRepo:     userRepo,
	}
}

// ListFeedbacks retrieves all feedback items with author and comments populated
func (s *FeedbackService) ListFeedbacks() ([]*models.FeedbackDetail, error) {
	feedbacks, err := s.feedbackRepo.List()
	if err != nil {
		return nil, err
	}

	details := []*models.FeedbackDetail{}
	for _, feedback := range feedbacks {
		detail, err := s.populate(feedback)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}

// CreateFeedback creates a new feedback item owned by the authenticated user
func (s *FeedbackService) CreateFeedback(identity auth.Identity, feedback *models.FeedbackBlog) error {
	if identity.UserID == "" {
		return ErrNotAuthenticated
	}
	if feedback.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if feedback.Tag == "" {
		return fmt.Errorf("%w: tag is required", ErrValidation)
	}

	feedback.AuthorID = identity.UserID
	feedback.Likes = []string{}
	feedback.Comments = []string{}

	return s.feedbackRepo.Create(feedback)
}

// DeleteFeedback deletes a feedback item and all its comments. Only the
// item's author may delete it. The comments are removed first; if the item
// delete then fails the inconsistency is logged, there is no rollback.
func (s *FeedbackService) DeleteFeedback(id string, identity auth.Identity) error {
	feedback, err := s.feedbackRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := assertOwner(feedback.AuthorID, identity); err != nil {
		return err
	}

	if err := s.commentRepo.DeleteMany(feedback.Comments); err != nil {
		return fmt.Errorf("failed to delete comments: %v", err)
	}

	if err := s.feedbackRepo.Delete(id); err != nil {
		log.Printf("inconsistent state: comments of feedback %s deleted but item remains: %v", id, err)
		return err
	}
	return nil
}

// ToggleLike adds the requester's id to the item's likes if absent, removes
// it if present. Any authenticated user may like; the item must exist.
func (s *FeedbackService) ToggleLike(id string, identity auth.Identity) (*models.FeedbackBlog, error) {
	if identity.UserID == "" {
		return nil, ErrNotAuthenticated
	}

	feedback, err := s.feedbackRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	feedback.ToggleLike(identity.UserID)

	if err := s.feedbackRepo.Update(feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// populate resolves the author and comment references of a feedback item.
// A dangling author reference degrades to an id-only author rather than an
// error; comment ids that no longer resolve are skipped.
func (s *FeedbackService) populate(feedback *models.FeedbackBlog) (*models.FeedbackDetail, error) {
	author := models.AuthorRef{ID: feedback.AuthorID}
	user, err := s.userRepo.GetByID(feedback.AuthorID)
	if err == nil {
		author.Username = user.Username
		author.Name = user.Name
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	comments, err := s.commentRepo.GetMany(feedback.Comments)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %v", err)
	}

	likes := feedback.Likes
	if likes == nil {
		likes = []string{}
	}

	return &models.FeedbackDetail{
		ID:       feedback.ID,
		Title:    feedback.Title,
		Content:  feedback.Content,
		Tag:      feedback.Tag,
		Author:   author,
		Likes:    likes,
		Comments: comments,
	}, nil
}
