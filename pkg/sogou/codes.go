package sogou

import "sort"

// Error codes returned in the errorCode field of a translate response.
const (
	CodeSuccess             = "0"
	CodeUnsupportedLanguage = "1001"
	CodeTextTooLong         = "1002"
	CodeInvalidPID          = "1003"
	CodeTrialLimitReached   = "1004"
	CodeTrafficTooHigh      = "1005"
	CodeInsufficientBalance = "1006"
	CodeMissingSalt         = "1007"
	CodeMissingSignature    = "1008"
	CodeIncorrectSignature  = "1009"
	CodeMissingText         = "10010"
	CodeInternalServerError = "1050"
)

// remoteCodes must stay verbatim: callers match on these messages.
var remoteCodes = map[string]string{
	CodeUnsupportedLanguage: "Translate API: Unsupported language type",
	CodeTextTooLong:         "Translate API: Text too long",
	CodeInvalidPID:          "Translate API: Invalid PID",
	CodeTrialLimitReached:   "Translate API: Trial PID limit reached",
	CodeTrafficTooHigh:      "Translate API: PID traffic too high",
	CodeInsufficientBalance: "Translate API: Insufficient balance",
	CodeMissingSalt:         "Translate API: Random number does not exist",
	CodeMissingSignature:    "Translate API: Signature does not exist",
	CodeIncorrectSignature:  "Translate API: The signature is incorrect",
	CodeMissingText:         "Translate API: Text does not exist",
	CodeInternalServerError: "Translate API: Internal server error",
}

// CodeDescriptor pairs a remote error code with its message.
type CodeDescriptor struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// LookupCode returns the message for a remote error code.
func LookupCode(code string) (string, bool) {
	msg, ok := remoteCodes[code]
	return msg, ok
}

// Codes returns a copy of the error table ordered by numeric code.
func Codes() []CodeDescriptor {
	out := make([]CodeDescriptor, 0, len(remoteCodes))
	for code, msg := range remoteCodes {
		out = append(out, CodeDescriptor{Code: code, Message: msg})
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].Code) != len(out[j].Code) {
			return len(out[i].Code) < len(out[j].Code)
		}
		return out[i].Code < out[j].Code
	})
	return out
}
