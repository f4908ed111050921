package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin", "amd64", "lessonforge_Darwin_all.tar.gz", false},
		{"darwin", "arm64", "lessonforge_Darwin_all.tar.gz", false},
		{"linux", "amd64", "lessonforge_Linux_x86_64.tar.gz", false},
		{"linux", "arm64", "lessonforge_Linux_arm64.tar.gz", false},
		{"linux", "386", "lessonforge_Linux_i386.tar.gz", false},
		{"windows", "amd64", "lessonforge_Windows_x86_64.zip", false},
		{"windows", "arm64", "lessonforge_Windows_arm64.zip", false},
		{"freebsd", "amd64", "", true},
		{"linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
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
	input := "abc123  lessonforge_Darwin_all.tar.gz\nbadline\n  \nfoo  bar  baz\ndef456  lessonforge_Linux_x86_64.tar.gz\n"
	got := parseChecksums([]byte(input))
	assert.Equal(t, map[string]string{
		"lessonforge_Darwin_all.tar.gz":   "abc123",
		"lessonforge_Linux_x86_64.tar.gz": "def456",
	}, got)
	assert.Empty(t, parseChecksums(nil))
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("hello world")
	h := sha256.Sum256(data)

	assert.NoError(t, verifyChecksum(data, hex.EncodeToString(h[:])))

	err := verifyChecksum(data, "0000000000000000000000000000000000000000000000000000000000000000")
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestExtractBinary(t *testing.T) {
	content := []byte("#!/bin/sh\necho lessonforge")

	got, err := extractBinary(buildTarGz(t, "lessonforge", content), "lessonforge_Darwin_all.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, content, got)

	_, err = extractBinary(buildTarGz(t, "other-file", content), "lessonforge_Darwin_all.tar.gz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplyUpdate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "lessonforge")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	newData := []byte("new-binary-content")
	h := sha256.Sum256(newData)
	require.NoError(t, applyUpdate(newData, target, h[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newData, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

// updateServer serves a v2.0.0 release whose platform asset is archive;
// checksums is the body of checksums.txt, or empty to 404 the download.
func updateServer(t *testing.T, asset string, archive []byte, checksums string) *httptest.Server {
	t.Helper()
	const base = "/lessonforge/lessonforge/releases/download/v2.0.0/"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/lessonforge/lessonforge/releases/latest":
			_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
		case base + asset:
			if len(checksums) == 0 {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write(archive)
		case base + "checksums.txt":
			_, _ = w.Write([]byte(checksums))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestUpdate(t *testing.T) {
	asset, err := assetName()
	require.NoError(t, err)

	binaryContent := []byte("new-lessonforge-binary")
	archive := buildTarGz(t, "lessonforge", binaryContent)
	archiveHash := sha256.Sum256(archive)
	goodChecksums := fmt.Sprintf("%s  %s\n", hex.EncodeToString(archiveHash[:]), asset)

	t.Run("happy path", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "lessonforge")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := updateServer(t, asset, archive, goodChecksums)
		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := updateServer(t, asset, archive, goodChecksums)
		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v2.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		bad := "0000000000000000000000000000000000000000000000000000000000000000  " + asset + "\n"
		server := updateServer(t, asset, archive, bad)
		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		server := updateServer(t, asset, nil, "")
		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// buildTarGz creates a tar.gz archive containing a single file.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
