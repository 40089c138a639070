package id

import "regexp"

// twLetterCode pairs the numeric checksum code and the place of household
// registration for a Taiwan ID prefix letter. The codes are historical
// assignment order, not alphabetical: I and O are valid letters (嘉义市 and
// 新竹市) and carry the two highest codes.
type twLetterCode struct {
	code  int
	place string
}

// twPrefixLetters maps the prefix letter of a Taiwan ID number to its
// checksum code and place of registration.
var twPrefixLetters = map[byte]twLetterCode{
	'A': {10, "台北市"},
	'B': {11, "台中市"},
	'C': {12, "基隆市"},
	'D': {13, "台南市"},
	'E': {14, "高雄市"},
	'F': {15, "新北市"},
	'G': {16, "宜兰县"},
	'H': {17, "桃园市"},
	'J': {18, "新竹县"},
	'K': {19, "苗栗县"},
	'L': {20, "台中县"}, // obsoleted
	'M': {21, "南投县"},
	'N': {22, "彰化县"},
	'P': {23, "云林县"},
	'Q': {24, "嘉义县"},
	'R': {25, "台南县"}, // obsoleted
	'S': {26, "高雄县"}, // obsoleted
	'T': {27, "屏东县"},
	'U': {28, "花莲县"},
	'V': {29, "台东县"},
	'X': {30, "澎湖县"},
	'Y': {31, "阳明山管理局"}, // obsoleted
	'W': {32, "金门县"},
	'Z': {33, "连江县"},
	'I': {34, "嘉义市"},
	'O': {35, "新竹市"},
}

// twPattern matches a Taiwan ID number after normalization: one letter and
// nine digits.
var twPattern = regexp.MustCompile(`^[A-Z][0-9]{9}$`)

// checkTW validates a Taiwan ID number.
//
// The prefix letter maps to a two-digit code whose tens digit is weighted 1
// and units digit 9; the eight middle digits (the first of which must be the
// gender marker '1' or '2') are weighted 8 down to 1. The final digit must
// equal (10 - sum % 10) % 10.
func checkTW(number string) error {
	number = normalizeUpper(number)
	if len(number) != 10 || !twPattern.MatchString(number) {
		return ErrUnrecognizedFormat
	}
	if number[1] != '1' && number[1] != '2' {
		return ErrUnrecognizedFormat
	}

	letter, ok := twPrefixLetters[number[0]]
	if !ok {
		return ErrUnknownRegion
	}

	sum := letter.code/10 + (letter.code%10)*9
	weight := 8
	for i := 1; i < 9; i++ {
		sum += int(number[i]-'0') * weight
		weight--
	}

	check := (10 - sum%10) % 10
	if check != int(number[9]-'0') {
		return ErrChecksumMismatch
	}
	return nil
}

// TWGender returns the gender encoded in the second character of a Taiwan
// ID number. It reports absence when the number does not validate.
func TWGender(number string) (Gender, bool) {
	number = normalizeUpper(number)
	if checkTW(number) != nil {
		return GenderUnknown, false
	}
	switch number[1] {
	case '1':
		return GenderMale, true
	case '2':
		return GenderFemale, true
	}
	return GenderUnknown, false
}

// TWRegion returns the place of household registration for the prefix
// letter of a Taiwan ID number. It reports absence when the number does not
// validate.
func TWRegion(number string) (string, bool) {
	number = normalizeUpper(number)
	if checkTW(number) != nil {
		return "", false
	}
	letter, ok := twPrefixLetters[number[0]]
	if !ok {
		return "", false
	}
	return letter.place, true
}
