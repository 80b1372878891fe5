package repositories

import (
	"github.com/Beto2203/feedback-backend/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// BadgerFeedbackRepository implements FeedbackRepository using BadgerDB
type BadgerFeedbackRepository struct {
	db *badger.DB
}

// NewBadgerFeedbackRepository creates a new BadgerFeedbackRepository
func NewBadgerFeedbackRepository(db *badger.DB) *BadgerFeedbackRepository {
	return &BadgerFeedbackRepository{db: db}
}

// Create creates a new feedback item
func (r *BadgerFeedbackRepository) Create(feedback *models.FeedbackBlog) error {
	return r.db.Update(func(txn *badger.Txn) error {
		feedback.ID = uuid.NewString()
		feedback.BeforeCreate()

		if err := feedback.Validate(); err != nil {
			return err
		}

		data, err := marshalEntity(feedback)
		if err != nil {
			return err
		}

		return txn.Set(entityKey(FeedbackKeyPrefix, feedback.ID), data)
	})
}

// GetByID retrieves a feedback item by ID
func (r *BadgerFeedbackRepository) GetByID(id string) (*models.FeedbackBlog, error) {
	var feedback models.FeedbackBlog

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(entityKey(FeedbackKeyPrefix, id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &feedback)
		})
	})

	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

// List retrieves all feedback items
func (r *BadgerFeedbackRepository) List() ([]*models.FeedbackBlog, error) {
	var feedbacks []*models.FeedbackBlog

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(FeedbackKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var feedback models.FeedbackBlog
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &feedback)
			})
			if err != nil {
				return err
			}
			feedbacks = append(feedbacks, &feedback)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// Update updates an existing feedback item with full-document replace semantics
func (r *BadgerFeedbackRepository) Update(feedback *models.FeedbackBlog) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := entityKey(FeedbackKeyPrefix, feedback.ID)

		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		data, err := marshalEntity(feedback)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Delete deletes a feedback item by ID
func (r *BadgerFeedbackRepository) Delete(id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := entityKey(FeedbackKeyPrefix, id)

		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return txn.Delete(key)
	})
}
