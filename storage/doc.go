/*
Package storage performs data-plane operations against a single Azure storage account:
container management, blob listing, and conditional file upload.

A Connection pairs an account name with its shared access key and blob endpoint.  The
DefaultClient built from it exposes single-call wrappers over the azblob SDK plus Push, the
one workflow with real logic: stat the local file, look for a blob with the same name, and
let Decide choose between shipping and skipping.

The decision is intentionally shallow.  A blob whose size matches the local file is treated
as identical; no content hash is computed, so two different files of equal length are
indistinguishable unless the caller forces the upload.

	client, err := storage.NewClient(storage.NewConnection(name, key))
	if err != nil {
	    return err
	}
	decision, err := client.Push(ctx, "backups", "~/dump.tar.gz", false, 5*time.Minute)

Use storage.MockClient in tests that only need the Client interface.
*/
package storage
