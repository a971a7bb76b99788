// Package domain contains the Lambda payload types for the translator.
package domain

// Request is the input to the translator Lambda.
type Request struct {
	Text       string `json:"text"`
	SourceLang string `json:"sourceLang"`
	TargetLang string `json:"targetLang"`
}

// Response is the output from the translator Lambda. On failure Translation
// is empty and Error describes the problem.
type Response struct {
	Translation string `json:"translation,omitempty"`
	Error       string `json:"error,omitempty"`
	ErrorKind   string `json:"errorKind,omitempty"`
	ErrorCode   string `json:"errorCode,omitempty"`
}
