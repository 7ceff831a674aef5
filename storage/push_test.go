package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylift/azstore"
)

// pushHandler serves a fixed blob listing and records uploads.
type pushHandler struct {
	listing  string
	uploads  int
	failPuts bool
}

func (h *pushHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Query().Get("comp") == "list":
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprint(w, listBody(h.listing))
	case r.Method == http.MethodPut:
		if h.failPuts {
			// non-retriable, so the pipeline fails fast
			w.Header().Set("x-ms-error-code", "AuthenticationFailed")
			w.WriteHeader(http.StatusForbidden)
			return
		}
		h.uploads++
		w.WriteHeader(http.StatusCreated)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func writeLocalFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func blobEntry(name string, size int) string {
	return fmt.Sprintf("<Blob><Name>%s</Name><Properties><Content-Length>%d</Content-Length></Properties></Blob>", name, size)
}

func TestDefaultClient_Push_NotPresentRemotely(t *testing.T) {
	handler := &pushHandler{listing: ""}
	client := newTestClient(t, handler)
	path := writeLocalFile(t, "dump.tar.gz", "0123456789")

	decision, err := client.Push(context.Background(), "backups", path, false, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, Decision{ShouldUpload: true, Reason: NotPresentRemotely}, decision)
	assert.Equal(t, 1, handler.uploads)
}

func TestDefaultClient_Push_SkipsIdentical(t *testing.T) {
	handler := &pushHandler{listing: blobEntry("dump.tar.gz", 10)}
	client := newTestClient(t, handler)
	path := writeLocalFile(t, "dump.tar.gz", "0123456789")

	decision, err := client.Push(context.Background(), "backups", path, false, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, Decision{ShouldUpload: false, Reason: SkippedIdentical}, decision)
	assert.Zero(t, handler.uploads)
}

func TestDefaultClient_Push_SizeMismatch(t *testing.T) {
	handler := &pushHandler{listing: blobEntry("dump.tar.gz", 50)}
	client := newTestClient(t, handler)
	path := writeLocalFile(t, "dump.tar.gz", "0123456789")

	decision, err := client.Push(context.Background(), "backups", path, false, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, Decision{ShouldUpload: true, Reason: SizeMismatch}, decision)
	assert.Equal(t, 1, handler.uploads)
}

func TestDefaultClient_Push_ForcedOverride(t *testing.T) {
	handler := &pushHandler{listing: blobEntry("dump.tar.gz", 10)}
	client := newTestClient(t, handler)
	path := writeLocalFile(t, "dump.tar.gz", "0123456789")

	decision, err := client.Push(context.Background(), "backups", path, true, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, Decision{ShouldUpload: true, Reason: ForcedOverride}, decision)
	assert.Equal(t, 1, handler.uploads)
}

func TestDefaultClient_Push_MissingLocalFileAbortsBeforeDeciding(t *testing.T) {
	handler := &pushHandler{}
	client := newTestClient(t, handler)

	_, err := client.Push(context.Background(), "backups", filepath.Join(t.TempDir(), "nope"), false, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, azstore.ErrLocalNotFound))
	assert.Zero(t, handler.uploads)
}

func TestDefaultClient_Push_TransferFailureIsFatal(t *testing.T) {
	handler := &pushHandler{listing: "", failPuts: true}
	client := newTestClient(t, handler)
	path := writeLocalFile(t, "dump.tar.gz", "0123456789")

	decision, err := client.Push(context.Background(), "backups", path, false, time.Minute)
	require.Error(t, err)
	assert.True(t, errors.Is(err, azstore.ErrTransfer))
	// the decision itself was made before the transfer failed
	assert.Equal(t, Decision{ShouldUpload: true, Reason: NotPresentRemotely}, decision)
}
