package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/skylift/azstore"
	"github.com/skylift/azstore/utils"
)

// The Client interface contains the data-plane operations performed against a storage
// account.  This interface is here so we can write mocks over the actual functionality.
type Client interface {
	ContainerExists(ctx context.Context, containerName string) (bool, error)
	CreateContainer(ctx context.Context, containerName string) error
	DeleteContainer(ctx context.Context, containerName string) error
	List(ctx context.Context, containerName string) ([]FileDescriptor, error)
	Upload(ctx context.Context, containerName, blobName, localPath string, timeout time.Duration) error
}

// DefaultClient is the main implementation that actually makes the calls to the Azure blob
// service.
type DefaultClient struct {
	svc    *azblob.Client
	logger *zap.Logger
}

// NewClient initializes a new DefaultClient for the given connection.
func NewClient(conn *Connection, opts ...ClientOption) (*DefaultClient, error) {
	svc, err := conn.serviceClient()
	if err != nil {
		return nil, err
	}

	c := &DefaultClient{svc: svc, logger: zap.NewNop()}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// ContainerExists returns true/false if the container exists/does not exist in the account.
func (c *DefaultClient) ContainerExists(ctx context.Context, containerName string) (bool, error) {
	_, err := c.svc.ServiceClient().NewContainerClient(containerName).GetProperties(ctx, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.ContainerNotFound) {
			return false, nil
		}
		return false, utils.WrapExistsError(err)
	}
	return true, nil
}

// CreateContainer creates the named container.  Creating a container that already exists is
// not an error.
func (c *DefaultClient) CreateContainer(ctx context.Context, containerName string) error {
	if _, err := c.svc.CreateContainer(ctx, containerName, nil); err != nil {
		if bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
			return nil
		}
		return utils.WrapCreateError(err)
	}

	c.logger.Info("container created", zap.String("container", containerName))
	return nil
}

// DeleteContainer deletes the named container and every blob it holds.
func (c *DefaultClient) DeleteContainer(ctx context.Context, containerName string) error {
	if _, err := c.svc.DeleteContainer(ctx, containerName, nil); err != nil {
		return utils.WrapDeleteError(err)
	}

	c.logger.Info("container deleted", zap.String("container", containerName))
	return nil
}

// List will return a listing of the contents of the given container.  Each item carries the
// full blob name (including any virtual 'path') and its size in bytes.
func (c *DefaultClient) List(ctx context.Context, containerName string) ([]FileDescriptor, error) {
	var list []FileDescriptor

	pager := c.svc.NewListBlobsFlatPager(containerName, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, utils.WrapListError(err)
		}

		if page.Segment == nil {
			continue
		}
		for _, item := range page.Segment.BlobItems {
			if item == nil || item.Name == nil {
				continue
			}
			fd := FileDescriptor{Name: *item.Name}
			if item.Properties != nil && item.Properties.ContentLength != nil {
				fd.Size = *item.Properties.ContentLength
			}
			list = append(list, fd)
		}
	}

	return list, nil
}

// Upload ships the local file at localPath to the given container under blobName.  A
// positive timeout bounds the transfer.  Transfer failures are wrapped with
// azstore.ErrTransfer and are fatal to the calling workflow; there is no retry and no
// partial-state cleanup.
func (c *DefaultClient) Upload(ctx context.Context, containerName, blobName, localPath string, timeout time.Duration) error {
	path, err := utils.ExpandLocalPath(localPath)
	if err != nil {
		return utils.WrapStatError(err)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", azstore.ErrLocalNotFound, localPath)
		}
		return utils.WrapStatError(err)
	}
	defer func() { _ = f.Close() }()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	_, err = c.svc.UploadFile(ctx, containerName, utils.RemoveLeadingSlash(blobName), f, &azblob.UploadFileOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: to.Ptr(detectContentType(path))},
	})
	if err != nil {
		return fmt.Errorf("%w: %w", azstore.ErrTransfer, err)
	}

	return nil
}

// detectContentType sniffs the file content where possible, falling back to a generic type.
func detectContentType(path string) string {
	if mt, err := mimetype.DetectFile(path); err == nil {
		return mt.String()
	}
	return "application/octet-stream"
}
