package storage

import "os"

// Options contains the connection settings for the data-plane client.
type Options struct {
	// AccountName holds the storage account name
	AccountName string

	// AccountKey holds the shared access key for authentication
	AccountKey string

	// ServiceURL overrides the blob service endpoint, e.g. to target azurite
	ServiceURL string
}

// NewOptions returns Options populated from the environment.
func NewOptions() *Options {
	return &Options{
		AccountName: os.Getenv("AZSTORE_ACCOUNT"),
		AccountKey:  os.Getenv("AZSTORE_ACCESS_KEY"),
		ServiceURL:  os.Getenv("AZSTORE_SERVICE_URL"),
	}
}

// Connection derives the credential-bearing Connection for these options.
func (o *Options) Connection() *Connection {
	conn := NewConnection(o.AccountName, o.AccountKey)
	if o.ServiceURL != "" {
		conn.ServiceURL = o.ServiceURL
	}
	return conn
}
