package id

import (
	"errors"
	"testing"
)

func TestWeightedSum(t *testing.T) {
	t.Parallel()

	t.Run("computes positional sum", func(t *testing.T) {
		t.Parallel()
		sum, err := WeightedSum([]int{1, 2, 3}, []int{4, 5, 6})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sum != 1*4+2*5+3*6 {
			t.Errorf("sum = %d, expected %d", sum, 32)
		}
	})

	t.Run("rejects length mismatch instead of returning zero", func(t *testing.T) {
		t.Parallel()
		_, err := WeightedSum([]int{1, 2}, []int{4, 5, 6})
		if !errors.Is(err, ErrLengthMismatch) {
			t.Fatalf("error = %v, expected ErrLengthMismatch", err)
		}
	})

	t.Run("empty slices sum to zero", func(t *testing.T) {
		t.Parallel()
		sum, err := WeightedSum(nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sum != 0 {
			t.Errorf("sum = %d, expected 0", sum)
		}
	})
}

func TestCheckSymbol(t *testing.T) {
	t.Parallel()

	// The full sum%11 -> symbol table.
	tests := []struct {
		mod  int
		want byte
	}{
		{0, '1'}, {1, '0'}, {2, 'X'}, {3, '9'}, {4, '8'}, {5, '7'},
		{6, '6'}, {7, '5'}, {8, '4'}, {9, '3'}, {10, '2'},
	}
	for _, tc := range tests {
		if got := CheckSymbol(tc.mod); got != tc.want {
			t.Errorf("CheckSymbol(%d) = %c, expected %c", tc.mod, got, tc.want)
		}
		// Symbols repeat with the modulus.
		if got := CheckSymbol(tc.mod + 11); got != tc.want {
			t.Errorf("CheckSymbol(%d) = %c, expected %c", tc.mod+11, got, tc.want)
		}
	}
}

func TestCheckSymbolFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		significant string
		want        byte
		wantErr     error
	}{
		{
			name:        "known check digit 8",
			significant: "63212319820927051",
			want:        '8',
		},
		{
			name:        "known check digit 7",
			significant: "31011219850409522",
			want:        '7',
		},
		{
			name:        "known check symbol X",
			significant: "21021119810503545",
			want:        'X',
		},
		{
			name:        "too short",
			significant: "6321231982092705",
			wantErr:     ErrLengthMismatch,
		},
		{
			name:        "non-digit",
			significant: "6321231982092705X",
			wantErr:     ErrNonDigit,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := CheckSymbolFor(tc.significant)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("error = %v, expected %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("CheckSymbolFor(%q) = %c, expected %c", tc.significant, got, tc.want)
			}
		})
	}
}
