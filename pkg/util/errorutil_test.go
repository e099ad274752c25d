package util

import (
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError_Passthrough(t *testing.T) {
	original := NewUnauthorized("invalid username or password")

	de := ToDomainError(original)
	require.NotNil(t, de)
	assert.Equal(t, http.StatusUnauthorized, de.HTTPStatus)
	assert.Equal(t, "UNAUTHORIZED", de.Code)
	assert.Same(t, original, de)
}

func TestToDomainError_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("outer"), NewForbidden("admin access required"))

	de := ToDomainError(wrapped)
	require.NotNil(t, de)
	assert.Equal(t, http.StatusForbidden, de.HTTPStatus)
}

func TestToDomainError_NoRows(t *testing.T) {
	for _, err := range []error{pgx.ErrNoRows, sql.ErrNoRows} {
		de := ToDomainError(err)
		require.NotNil(t, de)
		assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
		assert.Equal(t, "NOT_FOUND", de.Code)
	}
}

func TestToDomainError_PgErrors(t *testing.T) {
	tests := []struct {
		code       string
		wantStatus int
		wantCode   string
	}{
		{"23505", http.StatusConflict, "CONFLICT"},
		{"23503", http.StatusBadRequest, "INVALID_REFERENCE"},
		{"23502", http.StatusBadRequest, "MISSING_FIELD"},
		{"23514", http.StatusBadRequest, "INVALID_VALUE"},
		{"22P02", http.StatusBadRequest, "INVALID_FORMAT"},
		{"57014", http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			de := ToDomainError(&pgconn.PgError{Code: tt.code, ConstraintName: "accounts_user_name_key"})
			require.NotNil(t, de)
			assert.Equal(t, tt.wantStatus, de.HTTPStatus)
			assert.Equal(t, tt.wantCode, de.Code)
		})
	}
}

func TestToDomainError_UniqueViolationDetails(t *testing.T) {
	de := ToDomainError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_user_name_key"})
	require.NotNil(t, de)
	assert.Equal(t, "accounts_user_name_key", de.Details["constraint"])
}

func TestToDomainError_Unknown(t *testing.T) {
	de := ToDomainError(errors.New("disk on fire"))
	require.NotNil(t, de)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	assert.Equal(t, "internal server error", de.Message, "internal detail never leaks")
}

func TestToDomainError_Nil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestDomainError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	de := &DomainError{Message: "internal server error", Err: cause}

	assert.Equal(t, "internal server error: connection refused", de.Error())
	assert.ErrorIs(t, de, cause)
}
