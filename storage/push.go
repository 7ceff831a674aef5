package storage

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/skylift/azstore/utils"
)

// Push stats the local file, compares it against the blobs already in the container, and
// uploads it when the decision calls for it.  The returned Decision records why the upload
// did or did not happen; it is valid even when the subsequent transfer fails.  Transfer
// failures are fatal and propagated immediately.
func (c *DefaultClient) Push(ctx context.Context, containerName, localPath string, force bool, timeout time.Duration) (Decision, error) {
	local, err := Stat(localPath)
	if err != nil {
		return Decision{}, err
	}

	blobs, err := c.List(ctx, containerName)
	if err != nil {
		return Decision{}, utils.WrapPushError(err)
	}

	var remote *FileDescriptor
	for i := range blobs {
		if blobs[i].Name == local.Name {
			remote = &blobs[i]
			break
		}
	}

	decision := Decide(local, remote, force)
	c.logger.Info("upload decision",
		zap.String("container", containerName),
		zap.String("blob", local.Name),
		zap.Int64("sizeBytes", local.Size),
		zap.Bool("upload", decision.ShouldUpload),
		zap.String("reason", string(decision.Reason)))

	if !decision.ShouldUpload {
		return decision, nil
	}

	if err := c.Upload(ctx, containerName, local.Name, localPath, timeout); err != nil {
		return decision, err
	}
	return decision, nil
}
