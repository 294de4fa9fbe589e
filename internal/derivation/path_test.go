package derivation

import "testing"

func TestParseAndString(t *testing.T) {
	cases := []struct {
		in   string
		want []Component
	}{
		{"m/44'/60'/0'/0/0", []Component{
			{44, true}, {60, true}, {0, true}, {0, false}, {0, false},
		}},
		{"m/44h/354h/0h/0h/0h", []Component{
			{44, true}, {354, true}, {0, true}, {0, true}, {0, true},
		}},
		{"m", nil},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tc.in, err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("component %d = %v, want %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "44'/60'", "m/abc", "m//0"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) expected error, got nil", in)
		}
	}
}

func TestRawIndex(t *testing.T) {
	c := Component{Index: 44, Hardened: true}
	if c.RawIndex() != 44+HardenedOffset {
		t.Errorf("RawIndex() = %d, want %d", c.RawIndex(), 44+HardenedOffset)
	}
	c2 := Component{Index: 0, Hardened: false}
	if c2.RawIndex() != 0 {
		t.Errorf("RawIndex() = %d, want 0", c2.RawIndex())
	}
}

func TestRoundTrip(t *testing.T) {
	const path = "m/44'/60'/0'/0/0"
	parsed, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := parsed.String(); got != path {
		t.Errorf("String() = %q, want %q", got, path)
	}
}
