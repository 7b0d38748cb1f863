package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mashup/internal/domain/entity"
)

func TestParseMashupRequest_Valid(t *testing.T) {
	req, err := ParseMashupRequest(map[string]interface{}{
		"mashup_name": "Project Nexus",
		"game1_data":  "x",
		"game2_data":  "y",
	})

	require.NoError(t, err)
	assert.Equal(t, "Project Nexus", req.MashupName)
	assert.Equal(t, "x", req.Game1Data)
	assert.Equal(t, "y", req.Game2Data)
}

func TestParseMashupRequest_MissingFieldsInFixedOrder(t *testing.T) {
	tests := []struct {
		name      string
		payload   map[string]interface{}
		wantField string
	}{
		{
			name:      "empty mashup_name reported first",
			payload:   map[string]interface{}{"mashup_name": "", "game1_data": "x", "game2_data": "y"},
			wantField: "mashup_name",
		},
		{
			name:      "absent game1_data",
			payload:   map[string]interface{}{"mashup_name": "n", "game2_data": "y"},
			wantField: "game1_data",
		},
		{
			name:      "empty game2_data",
			payload:   map[string]interface{}{"mashup_name": "n", "game1_data": "x", "game2_data": ""},
			wantField: "game2_data",
		},
		{
			name:      "all missing reports mashup_name",
			payload:   map[string]interface{}{},
			wantField: "mashup_name",
		},
		{
			name:      "null value counts as missing",
			payload:   map[string]interface{}{"mashup_name": nil, "game1_data": "x", "game2_data": "y"},
			wantField: "mashup_name",
		},
		{
			name:      "non-string value counts as missing",
			payload:   map[string]interface{}{"mashup_name": "n", "game1_data": 42, "game2_data": "y"},
			wantField: "game1_data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ParseMashupRequest(tt.payload)
			require.Error(t, err)
			assert.Nil(t, req)

			var genErr *entity.GenerationError
			require.True(t, errors.As(err, &genErr))
			assert.Equal(t, entity.ErrKindValidation, genErr.Kind)
			assert.Equal(t, "Missing required field: "+tt.wantField, genErr.Message)
		})
	}
}
