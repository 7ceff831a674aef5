package azstore

// Error is a type that allows for error constants below
type Error string

// Error returns a string representation of the error
func (e Error) Error() string { return string(e) }

const (
	// ErrLocalNotFound - the local file to upload does not exist
	ErrLocalNotFound = Error("local file does not exist")

	// ErrTransfer - the blob transfer failed (timeout, network, or service error).  Fatal to the
	// calling workflow; callers must not retry.
	ErrTransfer = Error("blob transfer failed")

	// ErrInvalidAccountName - the storage account name violates the provider naming rules
	ErrInvalidAccountName = Error("storage account name is invalid")

	// ErrNoKeys - the storage account reported no usable access keys
	ErrNoKeys = Error("storage account has no access keys")
)
