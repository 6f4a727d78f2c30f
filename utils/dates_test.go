package utils

import "testing"

func TestNormalizeDate(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Day month year",
			input:    "04/10/2001",
			expected: "2001-10-04",
		},
		{
			name:     "Already normalized",
			input:    "2001-10-04",
			expected: "2001-10-04",
		},
		{
			name:     "Padded input",
			input:    " 25/12/2023 ",
			expected: "2023-12-25",
		},
		{
			name:     "Empty",
			input:    "",
			expected: "",
		},
		{
			name:     "Garbage",
			input:    "not a date",
			expected: "",
		},
		{
			name:     "Out of range day",
			input:    "32/01/2023",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := NormalizeDate(tc.input)
			if result != tc.expected {
				t.Errorf("NormalizeDate(%q): expected %q, got %q", tc.input, tc.expected, result)
			}
		})
	}
}
