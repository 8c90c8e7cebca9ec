package converters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeNumericString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{name: "integer", input: "100", want: "100"},
		{name: "decimal", input: "0.0001", want: "0.0001"},
		{name: "trailing zeros trimmed", input: "1.500", want: "1.5"},
		{name: "leading plus", input: "+42", want: "42"},
		{name: "negative", input: "-3.25", want: "-3.25"},
		{name: "leading zeros", input: "007", want: "7"},
		{name: "scientific notation rejected", input: "1e6", wantErr: "not a plain decimal string"},
		{name: "multiple decimal points rejected", input: "1.2.3", wantErr: "not a plain decimal string"},
		{name: "empty rejected", input: "", wantErr: "not a plain decimal string"},
		{name: "whitespace rejected", input: " 1", wantErr: "not a plain decimal string"},
		{name: "alpha rejected", input: "abc", wantErr: "not a plain decimal string"},
		{name: "bare point rejected", input: ".5", wantErr: "not a plain decimal string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NormalizeNumericString(tt.input)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeNumericString_Idempotent(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"100", "1.500", "007", "+42", "-0.001"} {
		once, err := NormalizeNumericString(input)
		require.NoError(t, err)

		twice, err := NormalizeNumericString(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "input %q", input)
	}
}

func TestDateConversion(t *testing.T) {
	t.Parallel()

	t.Run("native date widens to midnight UTC", func(t *testing.T) {
		t.Parallel()

		got, err := dateToWire("tx.date", "2024-03-15")
		require.NoError(t, err)
		assert.Equal(t, "2024-03-15T00:00:00Z", got)
	})

	t.Run("malformed date rejected with field path", func(t *testing.T) {
		t.Parallel()

		_, err := dateToWire("tx.date", "15/03/2024")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tx.date")
	})

	t.Run("read back truncates time of day", func(t *testing.T) {
		t.Parallel()

		got, err := dateFromWire("tx.date", "2024-03-15T17:45:09Z")
		require.NoError(t, err)
		assert.Equal(t, "2024-03-15", got)
	})

	t.Run("read side accepts bare date", func(t *testing.T) {
		t.Parallel()

		got, err := dateFromWire("tx.date", "2024-03-15")
		require.NoError(t, err)
		assert.Equal(t, "2024-03-15", got)
	})
}
