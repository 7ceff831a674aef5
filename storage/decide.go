package storage

// DecisionReason explains why an upload should or should not proceed.
type DecisionReason string

const (
	// NotPresentRemotely - no blob with the local file's name exists in the container
	NotPresentRemotely DecisionReason = "NotPresentRemotely"

	// SizeMismatch - a blob with the same name exists but its size differs from the local file
	SizeMismatch DecisionReason = "SizeMismatch"

	// ForcedOverride - the remote blob matches but the caller forced the upload
	ForcedOverride DecisionReason = "ForcedOverride"

	// SkippedIdentical - the remote blob matches the local file's size, so the upload is skipped
	SkippedIdentical DecisionReason = "SkippedIdentical"
)

// Decision is the ship/skip verdict for a single candidate upload.
type Decision struct {
	ShouldUpload bool
	Reason       DecisionReason
}

// Decide determines whether a local file should be uploaded, given the matching remote blob
// (nil when no blob with that name exists) and a force flag.  Size equality is a weak
// identity check: two different files of identical byte length are treated as the same and
// skipped unless force is set.  Pure function of its inputs; makes no calls and never
// returns an error.
func Decide(local FileDescriptor, remote *FileDescriptor, force bool) Decision {
	switch {
	case remote == nil:
		return Decision{ShouldUpload: true, Reason: NotPresentRemotely}
	case remote.Size != local.Size:
		return Decision{ShouldUpload: true, Reason: SizeMismatch}
	case force:
		return Decision{ShouldUpload: true, Reason: ForcedOverride}
	default:
		return Decision{ShouldUpload: false, Reason: SkippedIdentical}
	}
}
