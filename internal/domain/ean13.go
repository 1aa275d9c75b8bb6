package domain

import (
	"fmt"
	"strings"

	m "github.com/emoryluqian/LumosX-Generator/internal/model"
)

// Guard patterns framing an EAN-13 symbol.
const (
	leftGuard   = "101"
	centerGuard = "01010"
	rightGuard  = "101"
)

// Standard EAN-13 encoding tables, indexed by digit value. The six left
// payload digits use the odd (A) or even (B) table as selected by the
// parity pattern of the leading digit; the six right digits always use C.
var leftOddCodes = [10]string{
	"0001101", "0011001", "0010011", "0111101", "0100011",
	"0110001", "0101111", "0111011", "0110111", "0001011",
}

var leftEvenCodes = [10]string{
	"0100111", "0110011", "0011011", "0100001", "0011101",
	"0111001", "0000101", "0010001", "0001001", "0010111",
}

var rightCodes = [10]string{
	"1110010", "1100110", "1101100", "1000010", "1011100",
	"1001110", "1010000", "1000100", "1001000", "1110100",
}

// parityPatterns maps the leading digit to the A/B table choice for each of
// the six left payload digits.
var parityPatterns = [10]string{
	"AAAAAA", "AABABB", "AABBAB", "AABBBA", "ABAABB",
	"ABBAAB", "ABBBAA", "ABABAB", "ABABBA", "ABBABA",
}

// Checksum computes the EAN-13 check digit for a 12-digit sequence using
// modulo-10 weighting: digits at even index weigh 1, odd index weigh 3.
func Checksum(sequence string) (int, error) {
	if len(sequence) != 12 || !isNumeric(sequence) {
		return 0, fmt.Errorf("%w: checksum requires a 12-digit numeric sequence, got %q", ErrInvalidInput, sequence)
	}

	sum := 0

	for i := 0; i < len(sequence); i++ {
		digit := int(sequence[i] - '0')
		if i%2 == 1 {
			digit *= 3
		}

		sum += digit
	}

	if remainder := sum % 10; remainder != 0 {
		return 10 - remainder, nil
	}

	return 0, nil
}

// Encode converts a 12- or 13-digit numeric sequence into the 95-module
// bit string of an EAN-13 symbol. A 12-digit sequence gets its check digit
// computed and appended; a 13-digit sequence is rejected unless its final
// digit matches the checksum of the first 12.
func Encode(sequence string) (string, error) {
	if (len(sequence) != 12 && len(sequence) != 13) || !isNumeric(sequence) {
		return "", fmt.Errorf("%w: sequence must be 12 or 13 digits, got %q", ErrInvalidInput, sequence)
	}

	check, err := Checksum(sequence[:12])
	if err != nil {
		return "", err
	}

	if len(sequence) == 13 && int(sequence[12]-'0') != check {
		return "", fmt.Errorf("%w: check digit %c does not match computed %d", ErrInvalidInput, sequence[12], check)
	}

	parity := parityPatterns[sequence[0]-'0']

	var modules strings.Builder

	modules.Grow(m.ModuleLength)
	modules.WriteString(leftGuard)

	for i := 1; i <= 6; i++ {
		digit := sequence[i] - '0'
		if parity[i-1] == 'A' {
			modules.WriteString(leftOddCodes[digit])
		} else {
			modules.WriteString(leftEvenCodes[digit])
		}
	}

	modules.WriteString(centerGuard)

	for i := 7; i <= 11; i++ {
		modules.WriteString(rightCodes[sequence[i]-'0'])
	}

	modules.WriteString(rightCodes[check])
	modules.WriteString(rightGuard)

	return modules.String(), nil
}

func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return len(s) > 0
}
