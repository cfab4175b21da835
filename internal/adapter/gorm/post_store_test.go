package gorm

import (
	"path/filepath"
	"testing"

	"github.com/bornholm/billet/internal/core/port"
	"github.com/bornholm/billet/internal/core/port/testsuite"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestPostStore(t *testing.T) {
	testsuite.TestPostStore(t, func(t *testing.T) (port.PostStore, error) {
		store, err := newTestStore(t)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return NewPostStore(store), nil
	})
}

func newTestStore(t *testing.T) (*Store, error) {
	dsn := filepath.Join(t.TempDir(), "test.sqlite")

	db, err := gorm.Open(gormlite.Open(dsn), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err != nil {
			return
		}

		sqlDB.Close()
	})

	return NewStore(db), nil
}
