package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"free-game-tracker/internal/common/logger"
)

type gatewayService struct {
	upstream UpstreamClient
}

// NewGatewayService builds the gateway on top of an upstream client.
func NewGatewayService(upstream UpstreamClient) GatewayService {
	return &gatewayService{upstream: upstream}
}

// ListGiveaways makes exactly one upstream call. Errors wrap
// ErrUpstreamUnavailable and keep the upstream cause for logging.
func (s *gatewayService) ListGiveaways(ctx context.Context) (json.RawMessage, error) {
	start := time.Now()

	payload, err := s.upstream.FetchGiveaways(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	logger.Debug().
		Int("bytes", len(payload)).
		Dur("latency", time.Since(start)).
		Msg("Fetched giveaways from upstream")

	return payload, nil
}
