package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"go", "go"},
		{"100%", `100\%`},
		{"snake_case", `snake\_case`},
		{`back\slash`, `back\\slash`},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeLike(tt.in), tt.in)
	}
}

func TestLimitArg(t *testing.T) {
	assert.Nil(t, limitArg(0))
	assert.Nil(t, limitArg(-3))
	if got := limitArg(20); assert.NotNil(t, got) {
		assert.Equal(t, 20, *got)
	}
}

func TestPgErrorCode(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgUniqueViolation})
	assert.Equal(t, pgUniqueViolation, pgErrorCode(wrapped))
	assert.Equal(t, "", pgErrorCode(errors.New("plain")))
}

func TestTrack_AcceptsAllOutcomes(t *testing.T) {
	for _, err := range []error{
		nil,
		apperrors.NotFoundError("task"),
		apperrors.StoreError("listTasks", errors.New("connection reset")),
	} {
		_, done := track(context.Background(), "testOperation")
		done(err)
	}
}
