package distserver

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T, files map[string]string) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return New(Config{DistDir: dir}, nil)
}

func get(s *Server, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestIndexShowsInstallerSize(t *testing.T) {
	s := setupTestServer(t, map[string]string{
		"Office97 Setup 1.0.0.exe": strings.Repeat("x", 2048),
	})

	w := get(s, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Version 1.0.0 | Windows x64 | 2.0 kB")
	assert.Contains(t, w.Body.String(), `href="/download"`)
}

func TestIndexWithoutInstaller(t *testing.T) {
	s := setupTestServer(t, nil)

	w := get(s, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "| 0 B</p>")
}

func TestDownloadStreamsInstaller(t *testing.T) {
	s := setupTestServer(t, map[string]string{
		"readme.txt":             "not this",
		"Office97-Portable.exe":  "nor this",
		"Office97 Setup 1.0.exe": "MZ-installer",
	})

	for _, path := range []string{"/download", "/anything/else"} {
		w := get(s, http.MethodGet, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "MZ-installer", w.Body.String())
		assert.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="Microsoft Office 97 Setup.exe"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, "12", w.Header().Get("Content-Length"))
	}
}

func TestDownloadMissingInstaller(t *testing.T) {
	s := setupTestServer(t, map[string]string{"Setup.msi": "wrong type"})

	w := get(s, http.MethodGet, "/download")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadRejectsWrites(t *testing.T) {
	s := setupTestServer(t, map[string]string{"Setup.exe": "MZ"})

	w := get(s, http.MethodPost, "/download")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestFindInstallerMissingDir(t *testing.T) {
	_, _, err := FindInstaller(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
