//go:build azstoreintegration

package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// ClientIntegrationTestSuite runs against a real storage account (or azurite).  Configure it
// with AZSTORE_ACCOUNT, AZSTORE_ACCESS_KEY, and optionally AZSTORE_SERVICE_URL, then run
// with -tags azstoreintegration.
type ClientIntegrationTestSuite struct {
	suite.Suite
	client        *DefaultClient
	containerName string
}

func (s *ClientIntegrationTestSuite) SetupSuite() {
	opts := NewOptions()
	if opts.AccountName == "" {
		s.T().Skip("AZSTORE_ACCOUNT not set")
	}

	client, err := NewClient(opts.Connection())
	s.Require().NoError(err)
	s.client = client

	s.containerName = fmt.Sprintf("azstore-it-%d", time.Now().UnixNano())
	s.Require().NoError(s.client.CreateContainer(s.T().Context(), s.containerName))
}

func (s *ClientIntegrationTestSuite) TearDownSuite() {
	if s.client != nil && s.containerName != "" {
		_ = s.client.DeleteContainer(s.T().Context(), s.containerName)
	}
}

func (s *ClientIntegrationTestSuite) localFile(content string) string {
	path := filepath.Join(s.T().TempDir(), "payload.bin")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *ClientIntegrationTestSuite) TestContainerExists() {
	ctx := s.T().Context()

	exists, err := s.client.ContainerExists(ctx, s.containerName)
	s.NoError(err)
	s.True(exists)

	exists, err = s.client.ContainerExists(ctx, "azstore-it-does-not-exist")
	s.NoError(err)
	s.False(exists)
}

func (s *ClientIntegrationTestSuite) TestPushLifecycle() {
	ctx := s.T().Context()
	path := s.localFile("integration payload")

	decision, err := s.client.Push(ctx, s.containerName, path, false, time.Minute)
	s.Require().NoError(err)
	s.Equal(NotPresentRemotely, decision.Reason)

	decision, err = s.client.Push(ctx, s.containerName, path, false, time.Minute)
	s.Require().NoError(err)
	s.Equal(SkippedIdentical, decision.Reason)
	s.False(decision.ShouldUpload)

	decision, err = s.client.Push(ctx, s.containerName, path, true, time.Minute)
	s.Require().NoError(err)
	s.Equal(ForcedOverride, decision.Reason)

	list, err := s.client.List(ctx, s.containerName)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("payload.bin", list[0].Name)
	s.Equal(int64(len("integration payload")), list[0].Size)
}

func TestClientIntegration(t *testing.T) {
	suite.Run(t, new(ClientIntegrationTestSuite))
}
