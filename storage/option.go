package storage

import "go.uber.org/zap"

// ClientOption configures a DefaultClient.
type ClientOption func(*DefaultClient)

// WithLogger sets the structured logger emitted at each decision point.  Defaults to a no-op
// logger.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *DefaultClient) {
		c.logger = logger
	}
}
