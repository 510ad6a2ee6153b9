package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYear_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Year
	}{
		{"number", `{"year":2021}`, 2021},
		{"numeric string", `{"year":"2019"}`, 2019},
		{"padded string", `{"year":" 2018 "}`, 2018},
		{"empty string", `{"year":""}`, 0},
		{"null", `{"year":null}`, 0},
		{"missing", `{}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var edu Education
			require.NoError(t, json.Unmarshal([]byte(tt.input), &edu))
			assert.Equal(t, tt.want, edu.Year)
		})
	}

	t.Run("not a year", func(t *testing.T) {
		var edu Education
		err := json.Unmarshal([]byte(`{"year":"present"}`), &edu)
		assert.ErrorIs(t, err, ErrInvalidYear)
	})

	t.Run("marshals as a number", func(t *testing.T) {
		out, err := json.Marshal(Education{Year: 2020})
		require.NoError(t, err)
		assert.Contains(t, string(out), `"year":2020`)
	})
}
