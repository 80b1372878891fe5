package services

import (
	"fmt"
	"log"

	"github.com/Beto2203/feedback-backend/app/auth"
	"github.com/Beto2203/feedback-backend/app/models"
	"github.com/Beto2203/feedback-backend/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo  repositories.CommentRepository
	feedbackRepo repositories.FeedbackRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, feedbackRepo repositories.FeedbackRepository) *CommentService {
	return &CommentService{
		commentRepo:  commentRepo,
		feedbackRepo: feedbackRepo,
	}
}

// CreateComment creates a comment against a feedback item and appends its id
// to the item's comment list. The target item is checked before anything is
// persisted, so a bad id never leaves an orphaned comment behind.
func (s *CommentService) CreateComment(feedbackID string, identity auth.Identity, text string) (*models.Comment, error) {
	if identity.UserID == "" {
		return nil, ErrNotAuthenticated
	}
	if text == "" {
		return nil, fmt.Errorf("%w: comment is required", ErrValidation)
	}

	feedback, err := s.feedbackRepo.GetByID(feedbackID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Comment:  text,
		AuthorID: identity.UserID,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	if err := feedback.AddComment(comment.ID); err != nil {
		return nil, err
	}
	if err := s.feedbackRepo.Update(feedback); err != nil {
		log.Printf("inconsistent state: comment %s created but not linked to feedback %s: %v", comment.ID, feedbackID, err)
		return nil, err
	}

	return comment, nil
}

// DeleteComment removes a comment. Only the comment's author may delete it.
// The parent item's list is updated before the comment document is deleted,
// so a crash mid-operation leaves an orphaned document rather than a
// dangling reference in the list.
func (s *CommentService) DeleteComment(feedbackID, commentID string, identity auth.Identity) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		return err
	}

	if err := assertOwner(comment.AuthorID, identity); err != nil {
		return err
	}

	feedback, err := s.feedbackRepo.GetByID(feedbackID)
	if err != nil {
		return err
	}

	if err := feedback.RemoveComment(commentID); err == nil {
		if err := s.feedbackRepo.Update(feedback); err != nil {
			return err
		}
	}

	if err := s.commentRepo.Delete(commentID); err != nil {
		log.Printf("inconsistent state: comment %s unlinked from feedback %s but not deleted: %v", commentID, feedbackID, err)
		return err
	}
	return nil
}
