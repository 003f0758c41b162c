package memdb

import (
	"context"
	"strings"

	"github.com/trezcool/bulletin/core/account"
)

type userRepository struct {
	db *userTable
}

var _ account.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *DB) *userRepository {
	return &userRepository{db: db.user}
}

func (repo *userRepository) findByEmail(email string) (*account.User, bool) {
	for _, usr := range repo.db.table {
		if strings.EqualFold(usr.Email, email) {
			return usr, true
		}
	}
	return nil, false
}

func (repo *userRepository) CreateUser(_ context.Context, usr account.User) (account.User, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, exists := repo.findByEmail(usr.Email); exists {
		return account.User{}, account.ErrEmailExists
	}
	repo.db.table[usr.ID] = &usr
	return usr, nil
}

func (repo *userRepository) GetUserByID(_ context.Context, id string) (account.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if usr, ok := repo.db.table[id]; ok {
		return *usr, nil
	}
	return account.User{}, account.ErrNotFound
}

func (repo *userRepository) GetUserByEmail(_ context.Context, email string) (account.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if email != "" {
		if usr, ok := repo.findByEmail(email); ok {
			return *usr, nil
		}
	}
	return account.User{}, account.ErrNotFound
}

func (repo *userRepository) UpdateUser(_ context.Context, usr account.User) (account.User, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[usr.ID]; !ok {
		return account.User{}, account.ErrNotFound
	}
	if other, exists := repo.findByEmail(usr.Email); exists && other.ID != usr.ID {
		return account.User{}, account.ErrEmailExists
	}
	repo.db.table[usr.ID] = &usr
	return usr, nil
}
