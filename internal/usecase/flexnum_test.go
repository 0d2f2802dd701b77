package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexFloat_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "number", input: `42000`, expected: 42000},
		{name: "decimal", input: `42.5`, expected: 42.5},
		{name: "numeric string", input: `"42000"`, expected: 42000},
		{name: "padded numeric string", input: `" 42.5 "`, expected: 42.5},
		{name: "null keeps zero", input: `null`, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexFloat
			err := json.Unmarshal([]byte(tt.input), &f)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, f.Float64(), 0.0001)
		})
	}
}

func TestFlexFloat_UnmarshalJSON_Invalid(t *testing.T) {
	var f FlexFloat

	err := json.Unmarshal([]byte(`"not a number"`), &f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid numeric string")

	err = json.Unmarshal([]byte(`true`), &f)
	require.Error(t, err)
}

func TestFlexFloat_InsideStruct(t *testing.T) {
	payload := []byte(`{"price": "85000", "totalAmount": 170000}`)

	var body struct {
		Price       FlexFloat `json:"price"`
		TotalAmount FlexFloat `json:"totalAmount"`
	}
	require.NoError(t, json.Unmarshal(payload, &body))
	assert.InDelta(t, 85000, body.Price.Float64(), 0.0001)
	assert.InDelta(t, 170000, body.TotalAmount.Float64(), 0.0001)
}
