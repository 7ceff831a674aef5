package account

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
	"go.uber.org/zap"

	"github.com/skylift/azstore"
	"github.com/skylift/azstore/utils"
)

// resourceType is the ARM resource type storage account names are checked against.
const resourceType = "Microsoft.Storage/storageAccounts"

// The Client interface contains methods that manage Azure storage accounts.  This interface is
// here so we can write mocks over the actual functionality.
type Client interface {
	Exists(ctx context.Context, accountName string) (bool, error)
	Create(ctx context.Context, accountName, resourceGroup, location string) error
	Key(ctx context.Context, accountName, resourceGroup string) (string, error)
	Delete(ctx context.Context, accountName, resourceGroup string) error
}

// DefaultClient is the main implementation that actually makes the calls to the Azure
// resource-manager API.
type DefaultClient struct {
	accounts   *armstorage.AccountsClient
	credential azcore.TokenCredential
	armOptions *arm.ClientOptions
	logger     *zap.Logger
}

// NewClient initializes a new DefaultClient for the given subscription.  When no credential
// option is supplied, the azidentity default chain (environment, workload identity, managed
// identity, CLI) is used.
func NewClient(subscriptionID string, opts ...ClientOption) (*DefaultClient, error) {
	c := &DefaultClient{logger: zap.NewNop()}
	for _, o := range opts {
		o(c)
	}

	if c.credential == nil {
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return nil, err
		}
		c.credential = cred
	}

	accounts, err := armstorage.NewAccountsClient(subscriptionID, c.credential, c.armOptions)
	if err != nil {
		return nil, err
	}
	c.accounts = accounts

	return c, nil
}

// Exists returns true/false if a storage account with the given name already exists.  Account
// names are a global namespace, so this asks the service whether the name is still available
// rather than looking inside a single resource group.
func (c *DefaultClient) Exists(ctx context.Context, accountName string) (bool, error) {
	resp, err := c.accounts.CheckNameAvailability(ctx, armstorage.AccountCheckNameAvailabilityParameters{
		Name: to.Ptr(accountName),
		Type: to.Ptr(resourceType),
	}, nil)
	if err != nil {
		return false, utils.WrapExistsError(err)
	}

	if resp.NameAvailable != nil && *resp.NameAvailable {
		return false, nil
	}

	// An unavailable name does not necessarily mean the account exists; the service also
	// reports unavailable for names it considers invalid.
	exists := resp.Reason != nil && *resp.Reason == armstorage.ReasonAlreadyExists
	c.logger.Debug("storage account name unavailable",
		zap.String("account", accountName),
		zap.Bool("exists", exists),
		zap.Stringp("message", resp.Message))
	return exists, nil
}

// Create provisions a new StorageV2/Standard_LRS storage account and blocks until
// provisioning completes.  The name is validated locally first; an invalid name fails with
// azstore.ErrInvalidAccountName before any call is made.
func (c *DefaultClient) Create(ctx context.Context, accountName, resourceGroup, location string) error {
	if verdict := ValidateAccountName(accountName); !verdict.Valid {
		return utils.WrapCreateError(fmt.Errorf("%w: %s", azstore.ErrInvalidAccountName, verdict))
	}

	poller, err := c.accounts.BeginCreate(ctx, resourceGroup, accountName, armstorage.AccountCreateParameters{
		Kind:     to.Ptr(armstorage.KindStorageV2),
		Location: to.Ptr(location),
		SKU:      &armstorage.SKU{Name: to.Ptr(armstorage.SKUNameStandardLRS)},
	}, nil)
	if err != nil {
		return utils.WrapCreateError(err)
	}

	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		return utils.WrapCreateError(err)
	}

	c.logger.Info("storage account created",
		zap.String("account", accountName),
		zap.String("resourceGroup", resourceGroup),
		zap.String("location", location))
	return nil
}

// Key returns the first usable access key for the given storage account.
func (c *DefaultClient) Key(ctx context.Context, accountName, resourceGroup string) (string, error) {
	resp, err := c.accounts.ListKeys(ctx, resourceGroup, accountName, nil)
	if err != nil {
		return "", utils.WrapKeyError(err)
	}

	for _, k := range resp.Keys {
		if k != nil && k.Value != nil && *k.Value != "" {
			return *k.Value, nil
		}
	}

	return "", utils.WrapKeyError(azstore.ErrNoKeys)
}

// Delete deletes the given storage account along with every container and blob it holds.
func (c *DefaultClient) Delete(ctx context.Context, accountName, resourceGroup string) error {
	if _, err := c.accounts.Delete(ctx, resourceGroup, accountName, nil); err != nil {
		return utils.WrapDeleteError(err)
	}

	c.logger.Info("storage account deleted",
		zap.String("account", accountName),
		zap.String("resourceGroup", resourceGroup))
	return nil
}
