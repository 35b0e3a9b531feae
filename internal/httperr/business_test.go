package httperr

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsBusiness_Wrapped(t *testing.T) {
	err := fmt.Errorf("confirm: %w", ErrBusiness("invalid_state"))

	assert.True(t, IsBusiness(err, "invalid_state"))
	assert.False(t, IsBusiness(err, "time_conflict"))

	code, ok := Code(err)
	assert.True(t, ok)
	assert.Equal(t, "invalid_state", code)
}

func TestCode_NotBusiness(t *testing.T) {
	_, ok := Code(fmt.Errorf("boom"))
	assert.False(t, ok)
}

func TestIsForeignKeyViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"})
	assert.True(t, IsForeignKeyViolation(err))

	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsForeignKeyViolation(fmt.Errorf("boom")))
}
