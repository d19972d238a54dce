package repositories

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"cmsadmin/database"
	"cmsadmin/domain/contracts"
	"cmsadmin/gen/db"
)

// BaseRepository provides common SQL type conversion methods and database access that can be embedded in all repositories.
type BaseRepository struct {
	db *database.Database
}

// NewBaseRepository creates a new BaseRepository with database access
func NewBaseRepository(database *database.Database) *BaseRepository {
	return &BaseRepository{
		db: database,
	}
}

// ReadQueries returns the read-optimized queries interface for SELECT operations
func (b *BaseRepository) ReadQueries() *db.Queries {
	return b.db.ReadQueries()
}

// WriteQueries returns the write-serialized queries interface for INSERT/UPDATE/DELETE operations
func (b *BaseRepository) WriteQueries() *db.Queries {
	return b.db.WriteQueries()
}

// ReadDB returns the read pool for queries composed at runtime
func (b *BaseRepository) ReadDB() *sql.DB {
	return b.db.ReadDB()
}

// WithTx executes a function within a write transaction
func (b *BaseRepository) WithTx(fn func(*db.Queries) error) error {
	return b.db.WithTx(fn)
}

// WithReadTx executes a function within a read transaction
func (b *BaseRepository) WithReadTx(fn func(*db.Queries) error) error {
	return b.db.WithReadTx(fn)
}

// NotFound translates sql.ErrNoRows into contracts.ErrNotFound and leaves other errors untouched.
func (b *BaseRepository) NotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return contracts.ErrNotFound
	}
	return err
}

// FromNullString safely converts sql.NullString to string.
// Returns empty string if the SQL value is NULL.
func (b *BaseRepository) FromNullString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

// FromNullStringList splits a comma separated column into its trimmed, non-empty parts.
func (b *BaseRepository) FromNullStringList(ns sql.NullString) []string {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	var values []string
	for _, part := range strings.Split(ns.String, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}

// FromNullTime safely converts sql.NullTime to *time.Time.
// Returns nil if the SQL value is NULL.
func (b *BaseRepository) FromNullTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	return &nt.Time
}

// ToNullString converts a string to sql.NullString.
// Empty string becomes NULL for database storage.
func (b *BaseRepository) ToNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

// ToNullStringList joins values into a comma separated column. An empty list becomes NULL.
func (b *BaseRepository) ToNullStringList(values []string) sql.NullString {
	return b.ToNullString(strings.Join(values, ","))
}

// ToNullTime converts a *time.Time to sql.NullTime.
// Nil pointer becomes NULL for database storage.
func (b *BaseRepository) ToNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
