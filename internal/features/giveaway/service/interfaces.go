package service

import (
	"context"
	"encoding/json"
)

// GatewayService relays the upstream giveaway listing.
type GatewayService interface {
	ListGiveaways(ctx context.Context) (json.RawMessage, error)
}

// UpstreamClient is the outbound side of the gateway.
type UpstreamClient interface {
	FetchGiveaways(ctx context.Context) (json.RawMessage, error)
}
