package id

// cn17Weights is the positional weight vector for the first 17 digits of a
// CN-18 number, defined by GB 11643-1999. Position i carries weight
// 2^(17-i) mod 11.
var cn17Weights = [17]int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2}

// checkSymbols maps sum % 11 to the CN check symbol.
// Index 2 is the only non-digit symbol, 'X' (worth 10).
var checkSymbols = [11]byte{'1', '0', 'X', '9', '8', '7', '6', '5', '4', '3', '2'}

// WeightedSum returns the positional weighted sum over digits.
// It requires len(digits) == len(weights) and returns ErrLengthMismatch
// otherwise; a silently wrong sum must never reach the symbol table.
func WeightedSum(digits, weights []int) (int, error) {
	if len(digits) != len(weights) {
		return 0, ErrLengthMismatch
	}
	sum := 0
	for i, d := range digits {
		sum += d * weights[i]
	}
	return sum, nil
}

// CheckSymbol maps a weighted sum to the CN check symbol via sum mod 11.
// The result is total: the modulus is always in [0, 10].
func CheckSymbol(sum int) byte {
	return checkSymbols[sum%11]
}

// cn18CheckSymbol computes the check symbol for the 17 significant digits of
// a CN-18 number.
func cn18CheckSymbol(digits []int) (byte, error) {
	sum, err := WeightedSum(digits, cn17Weights[:])
	if err != nil {
		return 0, err
	}
	return CheckSymbol(sum), nil
}

// CheckSymbolFor computes the CN-18 check symbol for a 17-digit significant
// string. It returns ErrNonDigit for non-digit characters and
// ErrLengthMismatch when the string is not 17 digits long.
func CheckSymbolFor(significant string) (byte, error) {
	digits, err := Digits(significant)
	if err != nil {
		return 0, err
	}
	return cn18CheckSymbol(digits)
}
