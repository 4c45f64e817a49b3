package rekuest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msb-dashboard/backend/internal/model/types"
	"github.com/msb-dashboard/backend/internal/pkg/dasherr"
)

type binQuery struct {
	Start string `validate:"required,binlocation"`
}

func TestValidStruct(t *testing.T) {
	assert.NoError(t, ValidStruct(&binQuery{Start: "A0001"}))

	err := ValidStruct(&binQuery{Start: "0001A"})
	require.Error(t, err)

	var de *dasherr.DashError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, dasherr.CodeInvalidRequest, de.ErrorCode)
	require.NotNil(t, de.Extras)

	violations, ok := (*de.Extras)["violations"].([]*ErrorResponse)
	require.True(t, ok)
	require.Len(t, violations, 1)
	assert.Equal(t, "binlocation", violations[0].Violation)
	assert.Equal(t, "binQuery.Start", violations[0].Field)
	assert.Contains(t, violations[0].Message, "bin location")
}

func TestValidStructRequired(t *testing.T) {
	err := ValidStruct(&binQuery{})
	var de *dasherr.DashError
	require.ErrorAs(t, err, &de)
	violations := (*de.Extras)["violations"].([]*ErrorResponse)
	assert.Equal(t, "required", violations[0].Violation)
}

func TestValidVar(t *testing.T) {
	assert.NoError(t, ValidVar("ZZ12", "binlocation"))
	assert.Error(t, ValidVar("ZZ", "binlocation"))
}

func TestValidStructBinRangeColumn(t *testing.T) {
	assert.NoError(t, ValidStruct(&types.BinRangeQuery{Start: "C0001", End: "C0003"}))
	assert.NoError(t, ValidStruct(&types.BinRangeQuery{Start: "C0001", End: "C0003", Column: 4}))

	err := ValidStruct(&types.BinRangeQuery{Start: "C0001", End: "C0003", Column: -1})
	var de *dasherr.DashError
	require.ErrorAs(t, err, &de)
	violations := (*de.Extras)["violations"].([]*ErrorResponse)
	require.Len(t, violations, 1)
	assert.Equal(t, "min", violations[0].Violation)
	assert.Equal(t, "BinRangeQuery.Column", violations[0].Field)
}
