package id

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "plain ascii passes through", input: "230127197908177456", expect: "230127197908177456"},
		{name: "full-width digits fold to ascii", input: "２３０１２７", expect: "230127"},
		{name: "whitespace is trimmed", input: "  G123456A\n", expect: "G123456A"},
		{name: "case is preserved", input: "g123456a", expect: "g123456a"},
		{name: "full-width X folds", input: "21021119810503545Ｘ", expect: "21021119810503545X"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tc.input); got != tc.expect {
				t.Errorf("Normalize(%q) = %q, expected %q", tc.input, got, tc.expect)
			}
		})
	}
}

func TestNormalizeUpper(t *testing.T) {
	t.Parallel()

	if got := normalizeUpper(" a123456789 "); got != "A123456789" {
		t.Errorf("normalizeUpper = %q, expected %q", got, "A123456789")
	}
}
