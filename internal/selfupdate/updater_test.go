package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Mode: 0o755,
		Size: int64(len(content)),
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func buildZip(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create(name)
	require.NoError(t, err)
	_, err = f.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func buildArchive(t *testing.T, asset string, content []byte) []byte {
	t.Helper()
	if strings.HasSuffix(asset, ".zip") {
		return buildZip(t, "preptalk.exe", content)
	}
	return buildTarGz(t, "preptalk", content)
}

func TestExtractBinary(t *testing.T) {
	t.Run("tar.gz", func(t *testing.T) {
		archive := buildTarGz(t, "preptalk", []byte("binary-data"))
		got, err := extractBinary(archive, "preptalk_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, []byte("binary-data"), got)
	})

	t.Run("zip", func(t *testing.T) {
		archive := buildZip(t, "preptalk.exe", []byte("binary-data"))
		got, err := extractBinary(archive, "preptalk_Windows_x86_64.zip")
		require.NoError(t, err)
		assert.Equal(t, []byte("binary-data"), got)
	})

	t.Run("binary missing from archive", func(t *testing.T) {
		archive := buildTarGz(t, "README.md", []byte("docs"))
		_, err := extractBinary(archive, "preptalk_Linux_x86_64.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestApplyUpdate(t *testing.T) {
	t.Run("replaces binary and keeps mode", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "preptalk")
		require.NoError(t, os.WriteFile(target, []byte("old"), 0o755))

		newBinary := []byte("new-binary")
		hash := sha256.Sum256(newBinary)
		require.NoError(t, applyUpdate(newBinary, target, hash[:]))

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, newBinary, got)

		info, err := os.Stat(target)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	})

	t.Run("hash mismatch leaves target untouched", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "preptalk")
		require.NoError(t, os.WriteFile(target, []byte("old"), 0o755))

		err := applyUpdate([]byte("new-binary"), target, []byte("wrong-hash"))
		require.ErrorIs(t, err, ErrChecksum)

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, []byte("old"), got)
	})
}

func TestUpdate(t *testing.T) {
	asset, err := assetName()
	if err != nil {
		t.Skipf("no release asset for this platform: %v", err)
	}
	newBinary := []byte("v2-binary-payload")
	archive := buildArchive(t, asset, newBinary)
	archiveSum := sha256.Sum256(archive)
	checksums := fmt.Sprintf("%x  %s\n", archiveSum, asset)

	newServer := func(t *testing.T, checksumLine string) *httptest.Server {
		t.Helper()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/abhisek/preptalk/releases/latest":
				fmt.Fprint(w, `{"tag_name": "v2.0.0", "html_url": "https://example.com/releases/v2.0.0"}`)
			case "/abhisek/preptalk/releases/download/v2.0.0/" + asset:
				_, _ = w.Write(archive)
			case "/abhisek/preptalk/releases/download/v2.0.0/checksums.txt":
				fmt.Fprint(w, checksumLine)
			default:
				http.NotFound(w, r)
			}
		}))
		t.Cleanup(srv.Close)
		return srv
	}

	t.Run("happy path", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "preptalk")
		require.NoError(t, os.WriteFile(target, []byte("old"), 0o755))

		srv := newServer(t, checksums)
		c := NewChecker(
			WithBaseURLs(srv.URL, srv.URL),
			withExecPath(func() (string, error) { return target, nil }),
		)

		var stages []string
		err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, newBinary, got)
	})

	t.Run("dev build", func(t *testing.T) {
		c := NewChecker()
		err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		require.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		srv := newServer(t, checksums)
		c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
		err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "v2.0.0"}, func(UpdateProgress) {})
		require.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		srv := newServer(t, fmt.Sprintf("%064d  %s\n", 0, asset))
		c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
		err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(http.NotFound))
		t.Cleanup(srv.Close)
		c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
		err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0", TargetVersion: "v2.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}
