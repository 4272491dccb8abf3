package service

import (
	"context"

	"gorm.io/gorm"
)

// runTx executes fn inside a database transaction. When db is nil (unit
// tests with stub repositories) fn runs directly with a nil tx — the stubs
// ignore the tx handle.
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}
