package repositories

import (
	"github.com/Beto2203/feedback-backend/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// BadgerCommentRepository implements CommentRepository using BadgerDB
type BadgerCommentRepository struct {
	db *badger.DB
}

// NewBadgerCommentRepository creates a new BadgerCommentRepository
func NewBadgerCommentRepository(db *badger.DB) *BadgerCommentRepository {
	return &BadgerCommentRepository{db: db}
}

// Create creates a new comment
func (r *BadgerCommentRepository) Create(comment *models.Comment) error {
	return r.db.Update(func(txn *badger.Txn) error {
		comment.ID = uuid.NewString()

		if err := comment.Validate(); err != nil {
			return err
		}

		data, err := marshalEntity(comment)
		if err != nil {
			return err
		}

		return txn.Set(entityKey(CommentKeyPrefix, comment.ID), data)
	})
}

// GetByID retrieves a comment by ID
func (r *BadgerCommentRepository) GetByID(id string) (*models.Comment, error) {
	var comment models.Comment

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(entityKey(CommentKeyPrefix, id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &comment)
		})
	})

	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetMany retrieves the comments for the given ids, preserving order.
// Ids that no longer resolve are skipped.
func (r *BadgerCommentRepository) GetMany(ids []string) ([]*models.Comment, error) {
	comments := []*models.Comment{}

	err := r.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			item, err := txn.Get(entityKey(CommentKeyPrefix, id))
			if err == badger.ErrKeyNotFound {
				continue
			}
			if err != nil {
				return err
			}

			var comment models.Comment
			err = item.Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return err
			}
			comments = append(comments, &comment)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return comments, nil
}

// List retrieves all comments
func (r *BadgerCommentRepository) List() ([]*models.Comment, error) {
	var comments []*models.Comment

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(CommentKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var comment models.Comment
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return err
			}
			comments = append(comments, &comment)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Delete deletes a comment by ID
func (r *BadgerCommentRepository) Delete(id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := entityKey(CommentKeyPrefix, id)

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

// DeleteMany deletes all comments with the given ids in a single transaction.
// Missing ids are not an error; the delete is order-independent.
func (r *BadgerCommentRepository) DeleteMany(ids []string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		for _, id := range ids {
			if err := txn.Delete(entityKey(CommentKeyPrefix, id)); err != nil {
				return err
			}
		}
		return nil
	})
}
