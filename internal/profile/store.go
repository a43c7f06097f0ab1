// Package profile persists the client's durable local state: the anonymous
// cart session identifier, the access token, and the signed-in username. It
// is the desktop counterpart of the page's localStorage, backed by SQLite.
package profile

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// Well-known profile keys.
const (
	KeySession  = "user_session"
	KeyToken    = "access_token"
	KeyUsername = "username"
)

// ErrNotFound is returned when a profile key has no stored value.
var ErrNotFound = errors.New("profile entry not found")

// Entry is a single key/value row in the profile database.
type Entry struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     string `gorm:"column:value"`
	UpdatedAt time.Time
}

// TableName implements the gorm table naming convention.
func (Entry) TableName() string { return "profile_entries" }

// Store is a durable key/value store scoped to this machine's user profile.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the profile database at path and migrates the
// schema. The special path ":memory:" yields an ephemeral store for tests.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open profile database")
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, errors.Wrap(err, "migrate profile schema")
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return errors.Wrap(err, "profile database")
	}
	return db.Close()
}

// Get returns the stored value for key, or ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var entry Entry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", errors.Wrapf(ErrNotFound, "%s", key)
	}
	if err != nil {
		return "", errors.Wrapf(err, "get %s", key)
	}
	return entry.Value, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	entry := Entry{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&entry).Error
	if err != nil {
		return errors.Wrapf(err, "set %s", key)
	}
	return nil
}

// Delete removes key from the store. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&Entry{}, "key = ?", key).Error; err != nil {
		return errors.Wrapf(err, "delete %s", key)
	}
	return nil
}

// Token returns the stored access token, or an empty string when the user has
// never signed in.
func (s *Store) Token(ctx context.Context) (string, error) {
	return s.getOrEmpty(ctx, KeyToken)
}

// Username returns the stored username, or an empty string.
func (s *Store) Username(ctx context.Context) (string, error) {
	return s.getOrEmpty(ctx, KeyUsername)
}

// SetCredentials stores the access token and username after a login.
func (s *Store) SetCredentials(ctx context.Context, token, username string) error {
	if err := s.Set(ctx, KeyToken, token); err != nil {
		return err
	}
	return s.Set(ctx, KeyUsername, username)
}

// ClearCredentials removes the access token and username, keeping the session.
func (s *Store) ClearCredentials(ctx context.Context) error {
	if err := s.Delete(ctx, KeyToken); err != nil {
		return err
	}
	return s.Delete(ctx, KeyUsername)
}

func (s *Store) getOrEmpty(ctx context.Context, key string) (string, error) {
	v, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return v, err
}
