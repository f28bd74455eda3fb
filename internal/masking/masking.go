// Package masking provides irreversible, display-only partial redaction of
// sensitive values. Masking is distinct from decryption: Mask only ever
// receives already-decrypted plaintext and never touches an encrypted blob.
package masking

import "strings"

// Kind identifies the redaction rule applied to a value.
type Kind string

const (
	// KindPhone masks an 11-digit mobile number: 138****5678.
	KindPhone Kind = "phone"

	// KindIDCard masks an 18-character resident ID: 110***********1234.
	KindIDCard Kind = "id_card"

	// KindBankCard masks a card number of at least 12 digits: **** **** **** 7890.
	KindBankCard Kind = "bank_card"
)

// bankCardPrefix is the fixed redaction prefix shown before the last 4 digits.
const bankCardPrefix = "**** **** **** "

// Mask returns the masked display form of value for the given kind.
//
// Inputs not matching the expected shape pass through unchanged; this is a
// documented edge case, not an error. Empty input returns an empty string.
// Masked output is always safe to return even under partial denial of access,
// and must never be confused with or substituted for a decryption failure.
func Mask(value string, kind Kind) string {
	if value == "" {
		return ""
	}

	switch kind {
	case KindPhone:
		return maskPhone(value)
	case KindIDCard:
		return maskIDCard(value)
	case KindBankCard:
		return maskBankCard(value)
	default:
		return value
	}
}

// maskPhone keeps the first 3 and last 4 digits of an 11-digit number.
func maskPhone(value string) string {
	if len(value) != 11 || !isDigits(value) {
		return value
	}
	return value[:3] + "****" + value[7:]
}

// maskIDCard keeps the first 3 and last 4 characters of an 18-character ID.
func maskIDCard(value string) string {
	if len(value) != 18 {
		return value
	}
	return value[:3] + strings.Repeat("*", 11) + value[14:]
}

// maskBankCard shows only the last 4 digits behind a fixed prefix. Spaces and
// dashes are stripped before the shape check; anything shorter than 12 digits
// or containing other characters passes through unchanged.
func maskBankCard(value string) string {
	digits := strings.NewReplacer(" ", "", "-", "").Replace(value)
	if len(digits) < 12 || !isDigits(digits) {
		return value
	}
	return bankCardPrefix + digits[len(digits)-4:]
}

// isDigits reports whether s consists solely of ASCII digits.
func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
