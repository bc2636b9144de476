package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHHType(t *testing.T) {
	tests := []struct {
		code     string
		expected HHType
	}{
		{"ii-hyper", HHType{Immediate, Immediate, Hyper}},
		{"ir-hypo", HHType{Immediate, Recursive, Hypo}},
		{"RI-Both", HHType{Recursive, Immediate, Both}},
		{" rr-hyper ", HHType{Recursive, Recursive, Hyper}},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := ParseHHType(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseHHType_Invalid(t *testing.T) {
	for _, code := range []string{"", "ii", "ii-", "iii-hyper", "ix-hyper", "ii-sideways", "hyper"} {
		t.Run(code, func(t *testing.T) {
			_, err := ParseHHType(code)
			require.ErrorIs(t, err, ErrUnknownType)
		})
	}
}

func TestAllHHTypes_CodesRoundTrip(t *testing.T) {
	all := AllHHTypes()
	require.Len(t, all, 12)

	seen := map[string]bool{}

	for _, ht := range all {
		code := ht.Code()
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true

		back, err := ParseHHType(code)
		require.NoError(t, err)
		assert.Equal(t, ht, back)
	}
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "Immediate", Immediate.String())
	assert.Equal(t, "Recursive", Recursive.String())
	assert.Equal(t, "Both", Both.String())
	assert.Equal(t, "Direction(9)", Direction(9).String())
	assert.Equal(t, "rr-both", HHType{Recursive, Recursive, Both}.String())
}
