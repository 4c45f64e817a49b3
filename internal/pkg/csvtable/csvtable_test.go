package csvtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		raw  string
		kind Kind
	}{
		{"", KindNull},
		{"NA", KindNull},
		{"NaN", KindNull},
		{"null", KindNull},
		{"12", KindNumber},
		{"3.5", KindNumber},
		{"TRUE", KindBool},
		{"false", KindBool},
		{"A0001", KindText},
		{"yes", KindText},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.kind, ParseCell(tt.raw).Kind)
		})
	}

	assert.Equal(t, 3.5, ParseCell("3.5").Number)
	assert.True(t, ParseCell("True").Bool)
}

func TestParse(t *testing.T) {
	doc := "\xEF\xBB\xBFSOURCE_BIN,QTY\nA0001,3\nB0002\n,4\n"
	table, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"SOURCE_BIN", "QTY"}, table.Header)
	assert.True(t, table.HasColumn("SOURCE_BIN"))
	assert.False(t, table.HasColumn("DEST_BIN"))

	bins, err := table.Column("SOURCE_BIN")
	require.NoError(t, err)
	require.Len(t, bins, 3)

	text, ok := bins[0].Text()
	assert.True(t, ok)
	assert.Equal(t, "A0001", text)
	assert.True(t, bins[2].IsNull())

	qty, err := table.Column("QTY")
	require.NoError(t, err)
	assert.True(t, qty[1].IsNull(), "short rows are padded with nulls")
	assert.Equal(t, float64(4), qty[2].Number)
}

func TestParseHeaderOnly(t *testing.T) {
	table, err := Parse([]byte("SOURCE_BIN\n"))
	require.NoError(t, err)
	assert.Empty(t, table.Rows)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(nil)
	assert.ErrorIs(t, err, ErrNoColumns)

	_, err = Parse([]byte("\xEF\xBB\xBF\n\n"))
	assert.ErrorIs(t, err, ErrNoColumns)

	_, err = Parse([]byte("A,B\n1,2,3\n"))
	assert.ErrorContains(t, err, "Expected 2 fields")

	table, err := Parse([]byte("A\n1\n"))
	require.NoError(t, err)
	_, err = table.Column("SOURCE_BIN")
	assert.ErrorIs(t, err, ErrColumnNotFound)
}
