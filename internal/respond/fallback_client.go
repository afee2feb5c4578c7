package respond

import (
	"context"

	"github.com/swcleaning/ai-responder/pkg/logging"
)

// FallbackLLMClient wraps a primary provider with a secondary one that is
// tried when the primary fails.
type FallbackLLMClient struct {
	primary  LLMClient
	fallback LLMClient
	log      *logging.Logger
}

// NewFallbackLLMClient creates a fallback-enabled client. A nil fallback
// means only the primary is used.
func NewFallbackLLMClient(primary, fallback LLMClient, log *logging.Logger) *FallbackLLMClient {
	if log == nil {
		log = logging.Default()
	}
	return &FallbackLLMClient{primary: primary, fallback: fallback, log: log}
}

func (c *FallbackLLMClient) Complete(ctx context.Context, req LLMRequest) (LLMResponse, error) {
	resp, err := c.primary.Complete(ctx, req)
	if err == nil {
		return resp, nil
	}

	c.log.Warn("primary LLM failed, attempting fallback",
		"error", err.Error(),
		"fallback_available", c.fallback != nil,
	)

	if c.fallback == nil {
		return LLMResponse{}, err
	}

	fallbackResp, fallbackErr := c.fallback.Complete(ctx, req)
	if fallbackErr != nil {
		c.log.Error("fallback LLM also failed",
			"primary_error", err.Error(),
			"fallback_error", fallbackErr.Error(),
		)
		return LLMResponse{}, fallbackErr
	}

	c.log.Info("fallback LLM succeeded after primary failure")
	return fallbackResp, nil
}
