package usecase

import "mashup/internal/domain/entity"

// requiredFields is the fixed validation order; the first offender is the
// one reported.
var requiredFields = []string{"mashup_name", "game1_data", "game2_data"}

// ParseMashupRequest decodes an untyped payload into a typed MashupRequest.
// A field counts as missing when the key is absent, nil, a non-string value,
// or an empty string.
func ParseMashupRequest(data map[string]interface{}) (*entity.MashupRequest, error) {
	values := make(map[string]string, len(requiredFields))
	for _, field := range requiredFields {
		s, ok := data[field].(string)
		if !ok || s == "" {
			return nil, entity.NewValidationError(field)
		}
		values[field] = s
	}

	return &entity.MashupRequest{
		MashupName: values["mashup_name"],
		Game1Data:  values["game1_data"],
		Game2Data:  values["game2_data"],
	}, nil
}
