package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"+31 6 12345678", "+31612345678"},
		{"  +31612345678  ", "+31612345678"},
		{"+442079460958", "+442079460958"},
		// Unparseable or invalid input passes through trimmed.
		{"not a number", "not a number"},
		{"  12 ", "12"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := NormalizeE164(tc.input); got != tc.want {
			t.Errorf("NormalizeE164(%q): expected %q, got %q", tc.input, tc.want, got)
		}
	}
}
