package account

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"go.uber.org/zap"
)

// ClientOption configures a DefaultClient.
type ClientOption func(*DefaultClient)

// WithCredential sets the token credential used for resource-manager calls, replacing the
// azidentity default chain.
func WithCredential(cred azcore.TokenCredential) ClientOption {
	return func(c *DefaultClient) {
		c.credential = cred
	}
}

// WithARMClientOptions sets the underlying resource-manager client options.  Mostly useful
// for pointing the client at a fake service in tests.
func WithARMClientOptions(opts *arm.ClientOptions) ClientOption {
	return func(c *DefaultClient) {
		c.armOptions = opts
	}
}

// WithLogger sets the structured logger emitted at each decision point.  Defaults to a no-op
// logger.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *DefaultClient) {
		c.logger = logger
	}
}
