package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safeline/internal/common"
)

func TestParseGender(t *testing.T) {
	tests := []struct {
		input string
		want  Gender
	}{
		{"male", GenderMale},
		{"female", GenderFemale},
		{"FEMALE", GenderFemale},
		{" male ", GenderMale},
	}
	for _, tc := range tests {
		got, err := ParseGender(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got)
	}
}

func TestParseGender_Rejected(t *testing.T) {
	for _, input := range []string{"", "m", "other", "robot"} {
		_, err := ParseGender(input)
		require.ErrorIs(t, err, common.ErrValidation, "input %q", input)
	}
}
