package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msb-dashboard/backend/internal/model/types"
)

func TestBinRangeGenerate(t *testing.T) {
	s := NewBinRange(testConfig(""))

	res, err := s.Generate(&types.BinRangeQuery{Start: "C0001", End: "C0003"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	require.Len(t, res.Bins, 3)
	assert.Equal(t, 1, res.Bins[0].Column)

	res, err = s.Generate(&types.BinRangeQuery{Start: "C0001", End: "D0003", Column: 2})
	require.NoError(t, err)
	assert.NotNil(t, res.Bins)
	assert.Empty(t, res.Bins)

	_, err = s.Generate(&types.BinRangeQuery{Start: "C0001", End: "C0101"})
	assert.ErrorIs(t, err, ErrBinRangeTooLarge)
}

func TestBinRangeGenerateOverflow(t *testing.T) {
	s := NewBinRange(testConfig(""))

	var err error
	require.NotPanics(t, func() {
		_, err = s.Generate(&types.BinRangeQuery{Start: "C0", End: "C9223372036854775807"})
	})
	assert.ErrorIs(t, err, ErrBinRangeTooLarge)
}
