package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminet-io/luminet/internal/store"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", pgx.ErrNoRows, store.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, store.ErrDuplicateUUID},
		{"fk violation", &pgconn.PgError{Code: "23503"}, store.ErrNotFound},
		{"check violation", &pgconn.PgError{Code: "23514"}, store.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate(tt.in, "asset 7")
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
			assert.Contains(t, got.Error(), "asset 7")
		})
	}

	t.Run("other errors pass through", func(t *testing.T) {
		cause := errors.New("connection reset")
		got := translate(cause, "list assets")
		assert.ErrorIs(t, got, cause)
		assert.NotErrorIs(t, got, store.ErrNotFound)
	})
}

func TestLocationColumns(t *testing.T) {
	assert.Nil(t, locationOf(nil, nil))

	lat, long := 55.7, 12.6
	loc := locationOf(&lat, &long)
	require.NotNil(t, loc)
	assert.Equal(t, 55.7, loc.Latitude)

	// Half-set columns never yield a location.
	assert.Nil(t, locationOf(&lat, nil))
	assert.Nil(t, locationOf(nil, &long))

	gotLat, gotLong := locationCols(loc)
	require.NotNil(t, gotLat)
	require.NotNil(t, gotLong)
	assert.Equal(t, 55.7, *gotLat)
	assert.Equal(t, 12.6, *gotLong)

	gotLat, gotLong = locationCols(nil)
	assert.Nil(t, gotLat)
	assert.Nil(t, gotLong)
}
