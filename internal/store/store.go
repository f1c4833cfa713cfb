// Package store is the persistence gateway: explicit create/list/get/update/
// delete functions per record type, each mutation inside a single
// transaction. Absence is an expected outcome — getters return
// gorm.ErrRecordNotFound and callers check with errors.Is.
package store

import (
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
