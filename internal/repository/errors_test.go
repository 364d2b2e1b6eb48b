package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"article-query/internal/domain"
)

func TestErrorClassification(t *testing.T) {
	t.Run("detects unique violation through wrapping", func(t *testing.T) {
		err := fmt.Errorf("insert article: %w", &pgconn.PgError{Code: pgUniqueViolation})
		assert.True(t, isUniqueViolation(err))
		assert.False(t, isForeignKeyViolation(err))
	})

	t.Run("detects foreign key violation through wrapping", func(t *testing.T) {
		err := fmt.Errorf("attach tag: %w", &pgconn.PgError{Code: pgForeignKeyViolation})
		assert.True(t, isForeignKeyViolation(err))
		assert.False(t, isUniqueViolation(err))
	})

	t.Run("ignores non-postgres errors", func(t *testing.T) {
		err := errors.New("connection reset")
		assert.False(t, isUniqueViolation(err))
		assert.False(t, isForeignKeyViolation(err))
	})
}

func TestStorageErr(t *testing.T) {
	t.Run("wraps storage failures as unavailable", func(t *testing.T) {
		err := storageErr("query tags", errors.New("broken pipe"))
		assert.ErrorIs(t, err, domain.ErrUnavailable)
	})

	t.Run("passes cancellation through untranslated", func(t *testing.T) {
		err := storageErr("query tags", context.Canceled)
		assert.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, domain.ErrUnavailable)
	})
}
