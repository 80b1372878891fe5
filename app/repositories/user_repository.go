package repositories

import (
	"github.com/Beto2203/feedback-backend/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// storedUser is the persisted document shape. The API model hides the
// password hash from serialization; the stored document must keep it.
type storedUser struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"passwordHash"`
}

func encodeUser(user *models.User) ([]byte, error) {
	return marshalEntity(&storedUser{
		ID:           user.ID,
		Username:     user.Username,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
	})
}

func decodeUser(data []byte) (*models.User, error) {
	var stored storedUser
	if err := unmarshalEntity(data, &stored); err != nil {
		return nil, err
	}
	return &models.User{
		ID:           stored.ID,
		Username:     stored.Username,
		Name:         stored.Name,
		PasswordHash: stored.PasswordHash,
	}, nil
}

// BadgerUserRepository implements UserRepository using BadgerDB
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerUserRepository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

// Create creates a new user
func (r *BadgerUserRepository) Create(user *models.User) error {
	return r.db.Update(func(txn *badger.Txn) error {
		user.ID = uuid.NewString()

		if err := user.Validate(); err != nil {
			return err
		}

		data, err := encodeUser(user)
		if err != nil {
			return err
		}

		return txn.Set(entityKey(UserKeyPrefix, user.ID), data)
	})
}

// GetByID retrieves a user by ID
func (r *BadgerUserRepository) GetByID(id string) (*models.User, error) {
	var user *models.User

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(entityKey(UserKeyPrefix, id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			user, err = decodeUser(val)
			return err
		})
	})

	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetByUsername retrieves a user by username (case-sensitive exact match)
func (r *BadgerUserRepository) GetByUsername(username string) (*models.User, error) {
	var user *models.User

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(UserKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var candidate *models.User
			err := item.Value(func(val []byte) error {
				var decodeErr error
				candidate, decodeErr = decodeUser(val)
				return decodeErr
			})
			if err != nil {
				return err
			}
			if candidate.Username == username {
				user = candidate
				return nil
			}
		}
		return ErrNotFound
	})

	if err != nil {
		return nil, err
	}
	return user, nil
}

// List retrieves all users
func (r *BadgerUserRepository) List() ([]*models.User, error) {
	var users []*models.User

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(UserKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var user *models.User
			err := item.Value(func(val []byte) error {
				var decodeErr error
				user, decodeErr = decodeUser(val)
				return decodeErr
			})
			if err != nil {
				return err
			}
			users = append(users, user)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return users, nil
}

// Update updates an existing user
func (r *BadgerUserRepository) Update(user *models.User) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := entityKey(UserKeyPrefix, user.ID)

		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		data, err := encodeUser(user)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Delete deletes a user by ID
func (r *BadgerUserRepository) Delete(id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := entityKey(UserKeyPrefix, id)

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
