package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	require.Equal(t, 66, Len())
	assert.Equal(t, 65, MaxLimit())
	assert.Equal(t, []int{0, 1, 3, 6, 2}, Values[:5])
	assert.Equal(t, 91, Values[MaxLimit()])

	for i, v := range Values {
		assert.GreaterOrEqual(t, v, 0, "term %d", i)
	}
}

func TestScaled(t *testing.T) {
	s := Scaled(10)
	require.Len(t, s, Len())
	assert.InDelta(t, 0, s[0], 1e-9)
	assert.InDelta(t, 30, s[2], 1e-9)
	assert.InDelta(t, 1140, s[36], 1e-9)

	s[1] = -1
	assert.Equal(t, 1, Values[1], "Scaled must not alias the table")
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-3, 0},
		{0, 0},
		{17, 17},
		{65, 65},
		{66, 65},
		{1000, 65},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clamp(tt.in), "Clamp(%d)", tt.in)
	}
}

func TestParseLimit(t *testing.T) {
	n, err := ParseLimit(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	n, err = ParseLimit("99")
	require.NoError(t, err)
	assert.Equal(t, MaxLimit(), n)

	n, err = ParseLimit("-5")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = ParseLimit("twelve")
	assert.Error(t, err)
}
