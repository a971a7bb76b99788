package sogou

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupCode(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{CodeUnsupportedLanguage, "Translate API: Unsupported language type"},
		{CodeTextTooLong, "Translate API: Text too long"},
		{CodeInvalidPID, "Translate API: Invalid PID"},
		{CodeTrialLimitReached, "Translate API: Trial PID limit reached"},
		{CodeTrafficTooHigh, "Translate API: PID traffic too high"},
		{CodeInsufficientBalance, "Translate API: Insufficient balance"},
		{CodeMissingSalt, "Translate API: Random number does not exist"},
		{CodeMissingSignature, "Translate API: Signature does not exist"},
		{CodeIncorrectSignature, "Translate API: The signature is incorrect"},
		{CodeMissingText, "Translate API: Text does not exist"},
		{CodeInternalServerError, "Translate API: Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, ok := LookupCode(tt.code)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := LookupCode(CodeSuccess)
	assert.False(t, ok)
	_, ok = LookupCode("1010")
	assert.False(t, ok)
}

func TestCodes(t *testing.T) {
	codes := Codes()

	assert.Len(t, codes, 11)
	assert.Equal(t, CodeUnsupportedLanguage, codes[0].Code)
	assert.Equal(t, CodeInternalServerError, codes[9].Code)
	assert.Equal(t, CodeMissingText, codes[10].Code)

	// Mutating the copy must not leak into the table.
	codes[0].Message = "changed"
	msg, _ := LookupCode(CodeUnsupportedLanguage)
	assert.Equal(t, "Translate API: Unsupported language type", msg)
}
