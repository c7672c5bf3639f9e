package user

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrNotFound error = errors.New("user not found")

type User struct {
	ID           string
	Username     string
	PasswordHash string
}

// Store holds the demo user accounts. The set is fixed at construction;
// there is no sign-up flow.
type Store struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewStore(users ...User) *Store {
	byName := make(map[string]User, len(users))
	for _, u := range users {
		byName[u.Username] = u
	}
	return &Store{users: byName}
}

// NewSeededStore builds a store with the demo accounts. All of them
// use the password "testpass".
func NewSeededStore() *Store {
	return NewStore(
		User{
			ID:           uuid.NewString(),
			Username:     "cleopatra",
			PasswordHash: "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky",
		},
		User{
			ID:           uuid.NewString(),
			Username:     "imhotep",
			PasswordHash: "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky",
		},
		User{
			ID:           uuid.NewString(),
			Username:     "ramses",
			PasswordHash: "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky",
		},
	)
}

func (s *Store) GetByUsername(username string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[username]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}
