// Package utils provides small path and error-wrapping helpers shared by the
// account and storage packages.
package utils

import (
	"regexp"

	"github.com/mitchellh/go-homedir"
)

var hasLeadingSlash = regexp.MustCompile("^/")

// RemoveLeadingSlash removes a leading slash, if it exists.  Blob names are stored without
// one, so paths must be normalized before being handed to the service.
func RemoveLeadingSlash(path string) string {
	return hasLeadingSlash.ReplaceAllString(path, "")
}

// ExpandLocalPath expands a leading "~" in the given local path to the current
// user's home directory.  Paths without a tilde are returned unchanged.
func ExpandLocalPath(path string) (string, error) {
	return homedir.Expand(path)
}
