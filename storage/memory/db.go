// Package memdb keeps accounts in memory for the lifetime of the process.
package memdb

import (
	"sync"

	"github.com/trezcool/bulletin/core/account"
)

type (
	DB struct {
		user *userTable
	}

	userTable struct {
		sync.RWMutex
		table map[string]*account.User
	}
)

func Open() *DB {
	return &DB{
		user: &userTable{table: make(map[string]*account.User)},
	}
}
