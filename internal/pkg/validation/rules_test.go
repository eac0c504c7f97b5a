package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringValidation(t *testing.T) {
	cases := []struct {
		name    string
		v       *StringValidation
		wantErr string
	}{
		{"required empty", NewStringValidation("name", "   "), "name cannot be empty"},
		{"optional empty", NewStringValidation("date_of_birth", "").WithRequired(false).WithPattern(CompiledPatterns.Date), ""},
		{"trimmed value", NewStringValidation("roll_no", "  HA001 "), ""},
		{"bad email", NewStringValidation("email", "not-an-email").WithPattern(CompiledPatterns.Email), "email has an invalid format"},
		{"mixed case email", NewStringValidation("email", "Asha@Example.COM").WithPattern(CompiledPatterns.Email), ""},
		{"bad date", NewStringValidation("date_of_birth", "01-05-2008").WithPattern(CompiledPatterns.Date), "date_of_birth has an invalid format"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.v.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestFirstStopsAtFirstFailure(t *testing.T) {
	err := First(
		NewStringValidation("name", "Asha"),
		NewStringValidation("roll_no", ""),
		NewStringValidation("email", "bad"),
	)
	assert.EqualError(t, err, "roll_no cannot be empty")
	assert.NoError(t, First())
}
