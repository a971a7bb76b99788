// Package main is the entry point for the translator Lambda function.
package main

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/pricofy/sogou-translate/internal/config"
	"github.com/pricofy/sogou-translate/internal/domain"
	"github.com/pricofy/sogou-translate/internal/handler"
	"github.com/pricofy/sogou-translate/internal/logger"
	"github.com/pricofy/sogou-translate/pkg/sogou"
)

func main() {
	cfg, err := config.Load(nil, "")
	if err != nil {
		panic(err)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)
	log := logger.Logger()

	client, err := sogou.New(cfg.Sogou.PID, cfg.Sogou.SecretKey,
		sogou.WithEndpoint(cfg.Sogou.Endpoint),
		sogou.WithTimeout(cfg.Sogou.Timeout),
		sogou.WithLogger(log),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create translate client")
	}

	h := handler.New(client, log)
	lambda.Start(func(ctx context.Context, event json.RawMessage) (interface{}, error) {
		return handleRequest(ctx, h, event)
	})
}

func handleRequest(ctx context.Context, h *handler.Handler, event json.RawMessage) (interface{}, error) {
	// Warmup detection (MUST be first - before any other processing)
	if warmup, ok := IsWarmupEvent(event); ok {
		return HandleWarmup(ctx, warmup)
	}

	var req domain.Request
	if err := json.Unmarshal(event, &req); err != nil {
		return nil, err
	}

	return h.Handle(ctx, req)
}
