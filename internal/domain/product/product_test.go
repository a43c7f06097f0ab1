package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByName(t *testing.T) {
	menu := []Product{
		{ID: 1, Name: "Ensalada Cesar", Price: decimal.RequireFromString("8.50")},
		{ID: 2, Name: "Agua Mineral", Price: decimal.RequireFromString("1.25")},
	}

	p, err := FindByName(menu, "Agua Mineral")
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.ID)

	_, err = FindByName(menu, "Gazpacho")
	require.ErrorIs(t, err, ErrNotFound)
}
