// azput conditionally uploads a local file to an Azure blob container, optionally
// provisioning the storage account and container first.  Files whose size already matches
// the remote blob are skipped unless --force is given.
package main

import (
	"errors"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/skylift/azstore/account"
	"github.com/skylift/azstore/storage"
)

func main() {
	app := &cli.App{
		Name:      "azput",
		Usage:     "Uploads a file to an Azure blob container, skipping blobs that already match by size",
		ArgsUsage: "LOCAL_FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "account",
				Usage:   "storage account name",
				EnvVars: []string{"AZSTORE_ACCOUNT"},
			},
			&cli.StringFlag{
				Name:    "key",
				Usage:   "storage account access key; fetched via the management API when omitted",
				EnvVars: []string{"AZSTORE_ACCESS_KEY"},
			},
			&cli.StringFlag{
				Name:    "service-url",
				Usage:   "blob service endpoint override, e.g. for azurite",
				EnvVars: []string{"AZSTORE_SERVICE_URL"},
			},
			&cli.StringFlag{
				Name:    "subscription",
				Usage:   "subscription id, required for management API calls",
				EnvVars: []string{"AZSTORE_SUBSCRIPTION_ID"},
			},
			&cli.StringFlag{
				Name:    "resource-group",
				Usage:   "resource group holding the storage account",
				EnvVars: []string{"AZSTORE_RESOURCE_GROUP"},
			},
			&cli.StringFlag{
				Name:    "location",
				Usage:   "region used when provisioning a new account",
				Value:   "eastus",
				EnvVars: []string{"AZSTORE_LOCATION"},
			},
			&cli.StringFlag{
				Name:  "container",
				Usage: "target blob container",
			},
			&cli.BoolFlag{
				Name:  "provision",
				Usage: "create the storage account and container if they do not exist",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "upload even when a blob of identical size already exists",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "upper bound on the transfer",
				Value: 5 * time.Minute,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log every decision point",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		color.Red("azput: %v", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	localPath := c.Args().Get(0)
	accountName := c.String("account")
	containerName := c.String("container")
	key := c.String("key")

	if localPath == "" {
		return errors.New("azput requires a local file argument")
	}
	if accountName == "" || containerName == "" {
		return errors.New("--account and --container are required")
	}

	needsManagement := c.Bool("provision") || key == ""
	if needsManagement && (c.String("subscription") == "" || c.String("resource-group") == "") {
		return errors.New("--subscription and --resource-group are required unless --key is given without --provision")
	}

	logger := zap.NewNop()
	if c.Bool("verbose") {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
	}

	ctx := c.Context

	if needsManagement {
		acct, err := account.NewClient(c.String("subscription"), account.WithLogger(logger))
		if err != nil {
			return err
		}

		if c.Bool("provision") {
			exists, err := acct.Exists(ctx, accountName)
			if err != nil {
				return err
			}
			if !exists {
				if err := acct.Create(ctx, accountName, c.String("resource-group"), c.String("location")); err != nil {
					return err
				}
				color.Green("created storage account %s", accountName)
			}
		}

		if key == "" {
			key, err = acct.Key(ctx, accountName, c.String("resource-group"))
			if err != nil {
				return err
			}
		}
	}

	conn := storage.NewConnection(accountName, key)
	if u := c.String("service-url"); u != "" {
		conn.ServiceURL = u
	}

	client, err := storage.NewClient(conn, storage.WithLogger(logger))
	if err != nil {
		return err
	}

	if c.Bool("provision") {
		if err := client.CreateContainer(ctx, containerName); err != nil {
			return err
		}
	}

	decision, err := client.Push(ctx, containerName, localPath, c.Bool("force"), c.Duration("timeout"))
	if err != nil {
		return err
	}

	if decision.ShouldUpload {
		color.Green("uploaded %s to %s (%s)", localPath, containerName, decision.Reason)
	} else {
		color.Yellow("skipped %s, a blob of identical size is already in %s", localPath, containerName)
	}
	return nil
}
