package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestFoldSearch_QuitaTildesYMayusculas(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Café", "cafe"},
		{"  TALADRO ", "taladro"},
		{"Ñandú", "nandu"},
		{"perforación", "perforacion"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, foldSearch(tc.in), "fold(%q)", tc.in)
	}
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%cafe%", likePattern("Café"))
	assert.Equal(t, "%%", likePattern(""))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("otro error")))
}
