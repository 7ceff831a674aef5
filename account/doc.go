/*
Package account manages Azure storage accounts through the resource-manager API: existence
checks, provisioning, access-key retrieval, and deletion.

Account names live in a global namespace and are constrained by provider naming rules;
ValidateAccountName checks a candidate name locally and reports every violation in a single
structured Verdict, so callers can fail fast before making any network call.

Authentication

By default the client authenticates with azidentity.NewDefaultAzureCredential, which tries
environment variables, workload identity, managed identity, and the Azure CLI in order.  A
specific credential can be injected with WithCredential:

  client, err := account.NewClient(subscriptionID, account.WithCredential(cred))

Use account.MockClient in tests that only need the Client interface.
*/
package account
