/*
Package azstore provides a thin, testable wrapper around Azure Storage
management: provisioning storage accounts (control plane, via the
resource-manager SDK), deriving shared-key connections, managing blob
containers, and conditionally uploading local files (data plane, via the
azblob SDK).

The interesting logic lives in two pure functions:

  - account.ValidateAccountName checks a candidate storage account name
    against the provider naming rules and returns a structured verdict
    listing every violation.
  - storage.Decide compares a local file against an optional remote blob
    and decides whether an upload should proceed ("skip-if-same-size"
    with a force override).

Everything else is deliberate single-call glue over the Azure SDKs.

Usage

Control plane (account management):

  import "github.com/skylift/azstore/account"

  func Provision(ctx context.Context, subscriptionID string) error {
      client, err := account.NewClient(subscriptionID)
      if err != nil {
          return err
      }
      return client.Create(ctx, "mystorageacct", "my-rg", "eastus")
  }

Data plane (containers and blobs):

  import "github.com/skylift/azstore/storage"

  func Ship(ctx context.Context, name, key string) error {
      client, err := storage.NewClient(storage.NewConnection(name, key))
      if err != nil {
          return err
      }
      _, err = client.Push(ctx, "backups", "./dump.tar.gz", false, 5*time.Minute)
      return err
  }

See the azput command for a complete end-to-end workflow.
*/
package azstore
