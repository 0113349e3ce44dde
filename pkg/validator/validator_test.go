package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	type settings struct {
		Token string  `validate:"required"`
		Speed float64 `validate:"min=0.5,max=2"`
	}

	tests := []struct {
		name    string
		input   settings
		wantErr []string
	}{
		{
			name:  "valid",
			input: settings{Token: "abc", Speed: 1.0},
		},
		{
			name:    "missing required field",
			input:   settings{Speed: 1.0},
			wantErr: []string{`Token failed "required"`},
		},
		{
			name:    "all problems reported at once",
			input:   settings{Speed: 9},
			wantErr: []string{`Token failed "required"`, `Speed failed "max" (param 2)`},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(tt.input)
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration:")
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
