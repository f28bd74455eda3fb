package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask_Phone(t *testing.T) {
	t.Run("Success_ElevenDigitNumber", func(t *testing.T) {
		assert.Equal(t, "138****5678", Mask("13812345678", KindPhone))
		assert.Equal(t, "150****0000", Mask("15099990000", KindPhone))
	})

	t.Run("Success_WrongShapePassesThrough", func(t *testing.T) {
		assert.Equal(t, "1381234567", Mask("1381234567", KindPhone))     // 10 digits
		assert.Equal(t, "138123456789", Mask("138123456789", KindPhone)) // 12 digits
		assert.Equal(t, "1381234567a", Mask("1381234567a", KindPhone))   // non-digit
		assert.Equal(t, "+8613812345", Mask("+8613812345", KindPhone))
	})
}

func TestMask_IDCard(t *testing.T) {
	t.Run("Success_EighteenCharID", func(t *testing.T) {
		assert.Equal(t, "110***********1234", Mask("110101199001011234", KindIDCard))
		// Check digit X is part of the 18-character shape.
		assert.Equal(t, "110***********012X", Mask("11010119900101012X", KindIDCard))
	})

	t.Run("Success_WrongShapePassesThrough", func(t *testing.T) {
		assert.Equal(t, "11010119900101123", Mask("11010119900101123", KindIDCard))     // 17 chars
		assert.Equal(t, "1101011990010112345", Mask("1101011990010112345", KindIDCard)) // 19 chars
	})
}

func TestMask_BankCard(t *testing.T) {
	t.Run("Success_PlainNumber", func(t *testing.T) {
		assert.Equal(t, "**** **** **** 7890", Mask("6222021234567890", KindBankCard))
		assert.Equal(t, "**** **** **** 0123", Mask("6217001234567890123", KindBankCard))
	})

	t.Run("Success_SpacesAndDashesStripped", func(t *testing.T) {
		assert.Equal(t, "**** **** **** 7890", Mask("6222 0212 3456 7890", KindBankCard))
		assert.Equal(t, "**** **** **** 7890", Mask("6222-0212-3456-7890", KindBankCard))
	})

	t.Run("Success_WrongShapePassesThrough", func(t *testing.T) {
		assert.Equal(t, "62220212345", Mask("62220212345", KindBankCard)) // 11 digits
		assert.Equal(t, "6222x2123456789", Mask("6222x2123456789", KindBankCard))
	})
}

func TestMask_EdgeCases(t *testing.T) {
	t.Run("Success_EmptyInputReturnsEmpty", func(t *testing.T) {
		assert.Equal(t, "", Mask("", KindPhone))
		assert.Equal(t, "", Mask("", KindIDCard))
		assert.Equal(t, "", Mask("", KindBankCard))
	})

	t.Run("Success_UnknownKindPassesThrough", func(t *testing.T) {
		assert.Equal(t, "value", Mask("value", Kind("unknown")))
	})
}
