package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/lessonforge/lessonforge/releases/latest" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"tag_name":"` + tag + `","html_url":"https://example.com/` + tag + `"}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name          string
		current       string
		latest        string
		wantAvailable bool
	}{
		{"newer release available", "v1.0.0", "v1.1.0", true},
		{"already latest", "v1.1.0", "v1.1.0", false},
		{"running ahead of release", "v2.0.0", "v1.1.0", false},
		{"tag without v prefix", "1.0.0", "v1.1.0", true},
		{"patch bump", "v1.1.0", "v1.1.1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := releaseServer(t, tt.latest)
			checker := NewChecker(WithBaseURL(server.URL))

			result, err := checker.Check(context.Background(), &CheckInput{Version: tt.current})
			require.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, result.UpdateAvailable)
			assert.Equal(t, tt.latest, result.LatestVersion)
		})
	}
}

func TestCheck_DevBuildNeverUpdates(t *testing.T) {
	server := releaseServer(t, "v9.9.9")
	checker := NewChecker(WithBaseURL(server.URL))

	result, err := checker.Check(context.Background(), &CheckInput{Version: "(devel)"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
	assert.Equal(t, "v9.9.9", result.LatestVersion)
}

func TestCheck_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	checker := NewChecker(WithBaseURL(server.URL))
	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}
