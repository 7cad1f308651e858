package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// Initials returns the uppercase first letter of each word in name, used as
// the prefix of product display codes. "Cerveza Brava" yields "CB".
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(unicode.ToUpper(r))
			}
			break
		}
	}
	if b.Len() == 0 {
		return "P"
	}
	return b.String()
}

// FormatProductCode builds a display code like "CB-007" from a product name
// and its sequence number.
func FormatProductCode(name string, seq int64) string {
	return fmt.Sprintf("%s-%03d", Initials(name), seq)
}

// FormatCustomerCode builds a display code like "0042" from a sequence number.
func FormatCustomerCode(seq int64) string {
	return fmt.Sprintf("%04d", seq)
}

// FormatReceiptNo builds a receipt number like "REC-000123".
func FormatReceiptNo(seq int64) string {
	return fmt.Sprintf("REC-%06d", seq)
}
