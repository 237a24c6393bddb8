package selfupdate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"tag_name": %q, "html_url": "https://example.com/releases/%s"}`, tag, tag)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckUpdateAvailable(t *testing.T) {
	srv := releaseServer(t, "v1.2.0")
	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.2.0", result.LatestVersion)
}

func TestCheckAlreadyLatest(t *testing.T) {
	srv := releaseServer(t, "v1.2.0")
	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheckDevBuild(t *testing.T) {
	srv := releaseServer(t, "v9.9.9")
	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "(devel)"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
	assert.Equal(t, "v9.9.9", result.LatestVersion)
}

func TestCheckUnprefixedVersions(t *testing.T) {
	srv := releaseServer(t, "1.3.0")
	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "1.2.9"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
}

func TestCheckServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "preptalk_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "preptalk_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "preptalk_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "preptalk_Linux_arm64.tar.gz", false},
		{"windows amd64", "windows", "amd64", "preptalk_Windows_x86_64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	input := "abc123  preptalk_Linux_x86_64.tar.gz\nbadline\n\ndef456  preptalk_Darwin_all.tar.gz\n"
	got := parseChecksums([]byte(input))
	assert.Equal(t, map[string]string{
		"preptalk_Linux_x86_64.tar.gz": "abc123",
		"preptalk_Darwin_all.tar.gz":   "def456",
	}, got)
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("hello")
	// sha256("hello")
	good := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	require.NoError(t, verifyChecksum(data, good))
	assert.ErrorIs(t, verifyChecksum(data, "deadbeef"), ErrChecksum)
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "v1.2.3", canonical("1.2.3"))
	assert.Equal(t, "v1.2.3", canonical("v1.2.3"))
	assert.Equal(t, "", canonical(""))
}
