// Package handler provides the Lambda handler for the translator.
package handler

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pricofy/sogou-translate/internal/domain"
	"github.com/pricofy/sogou-translate/pkg/sogou"
)

// Translator translates a single text. *sogou.Client satisfies it.
type Translator interface {
	Translate(ctx context.Context, text string, from, to sogou.Language) (string, error)
}

// Handler serves translate invocations.
type Handler struct {
	translator Translator
	logger     zerolog.Logger
}

// New creates a Handler.
func New(t Translator, logger zerolog.Logger) *Handler {
	return &Handler{translator: t, logger: logger}
}

// Handle processes a translation request.
// Failures are reported in the Response, never as a Go error.
func (h *Handler) Handle(ctx context.Context, req domain.Request) (*domain.Response, error) {
	from, to, err := validateRequest(req)
	if err != nil {
		return &domain.Response{Error: err.Error(), ErrorKind: sogou.OutcomeValidation}, nil
	}

	translation, err := h.translator.Translate(ctx, req.Text, from, to)
	if err != nil {
		resp := &domain.Response{
			Error:     fmt.Sprintf("translation failed: %v", err),
			ErrorKind: sogou.Outcome(err),
		}
		if code, ok := sogou.RemoteCode(err); ok {
			resp.ErrorCode = code
		}
		h.logger.Warn().
			Err(err).
			Str("sourceLang", req.SourceLang).
			Str("targetLang", req.TargetLang).
			Str("errorKind", resp.ErrorKind).
			Msg("translate invocation failed")
		return resp, nil
	}

	return &domain.Response{Translation: translation}, nil
}

// validateRequest checks the request is valid and resolves its languages.
func validateRequest(req domain.Request) (sogou.Language, sogou.Language, error) {
	if req.SourceLang == "" {
		return "", "", fmt.Errorf("sourceLang is required")
	}
	if req.TargetLang == "" {
		return "", "", fmt.Errorf("targetLang is required")
	}
	if req.SourceLang == req.TargetLang {
		return "", "", fmt.Errorf("sourceLang and targetLang must be different")
	}
	if req.Text == "" {
		return "", "", fmt.Errorf("text is required")
	}

	from, err := sogou.ParseLanguage(req.SourceLang)
	if err != nil {
		return "", "", fmt.Errorf("sourceLang: %w", err)
	}
	to, err := sogou.ParseLanguage(req.TargetLang)
	if err != nil {
		return "", "", fmt.Errorf("targetLang: %w", err)
	}
	return from, to, nil
}
