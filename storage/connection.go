package storage

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

// Connection is a credential-bearing handle for data-plane operations against a single
// storage account.
type Connection struct {
	// AccountName holds the storage account name
	AccountName string

	// AccountKey holds the shared access key for the account
	AccountKey string

	// ServiceURL holds the blob service endpoint.  NewConnection defaults it to the
	// public-cloud endpoint for AccountName; override it to target an emulator such as
	// azurite.
	ServiceURL string
}

// NewConnection derives a Connection for the given account using the public-cloud blob
// endpoint.
func NewConnection(accountName, accountKey string) *Connection {
	return &Connection{
		AccountName: accountName,
		AccountKey:  accountKey,
		ServiceURL:  fmt.Sprintf("https://%s.blob.core.windows.net", accountName),
	}
}

// SharedKeyCredential builds an azblob shared-key credential from the connection.
func (c *Connection) SharedKeyCredential() (*azblob.SharedKeyCredential, error) {
	return azblob.NewSharedKeyCredential(c.AccountName, c.AccountKey)
}

// serviceClient builds the azblob service client for this connection.  A connection without
// an account key falls back to anonymous access.
func (c *Connection) serviceClient() (*azblob.Client, error) {
	if c.AccountKey == "" {
		return azblob.NewClientWithNoCredential(c.ServiceURL, nil)
	}

	cred, err := c.SharedKeyCredential()
	if err != nil {
		return nil, err
	}
	return azblob.NewClientWithSharedKeyCredential(c.ServiceURL, cred, nil)
}
