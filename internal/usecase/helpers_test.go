package usecase

import (
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestGenerateCode(t *testing.T) {
	pattern := regexp.MustCompile(`^PAT-[0-9A-F]{8}$`)

	code := generateCode("PAT")
	assert.Regexp(t, pattern, code)

	// codes are effectively unique
	assert.NotEqual(t, code, generateCode("PAT"))
}

func TestGenerateTemporaryPassword(t *testing.T) {
	pw, err := generateTemporaryPassword(12)
	assert.NoError(t, err)
	assert.Len(t, pw, 12)
	assert.Regexp(t, regexp.MustCompile(`^[a-zA-Z0-9]+$`), pw)
}

func TestIsDuplicateKeyError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "fk_patients_clinic"}

	assert.True(t, isDuplicateKeyError(dup, "email"))
	assert.False(t, isDuplicateKeyError(dup, "license"))
	assert.False(t, isDuplicateKeyError(fk, "email"))
	assert.True(t, isForeignKeyError(fk, "clinic"))
	assert.False(t, isForeignKeyError(dup, "clinic"))
	assert.False(t, isDuplicateKeyError(assert.AnError, "email"))
}

func TestParseDateOnly(t *testing.T) {
	got, err := parseDateOnly("1990-05-20")
	assert.NoError(t, err)
	assert.Equal(t, "1990-05-20", got.Format("2006-01-02"))

	got, err = parseDateOnly("")
	assert.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseDateOnly("20-05-1990")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}
