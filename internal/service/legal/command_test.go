package legal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newDocumentServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/EULA.txt":
			_, _ = w.Write([]byte("eula text"))
		case "/TermsOfEvaluation.txt":
			_, _ = w.Write([]byte("terms text"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	return server
}

func newCheckoutRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "LICENSE"), []byte("license text"), 0o644))

	return root
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	contents, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(contents)
}

func TestRun_StagesDocuments(t *testing.T) {
	t.Parallel()

	server := newDocumentServer(t)
	root := newCheckoutRoot(t)

	err := Run(context.Background(), &Options{
		ServerURL: server.URL,
		RepoRoot:  root,
	})
	require.NoError(t, err)

	require.Equal(t, "eula text", readFile(t, filepath.Join(root, "dist", "EULA.txt")))
	require.Equal(t, "terms text", readFile(t, filepath.Join(root, "dist", "TermsOfEvaluation.txt")))
	require.Equal(t, "license text", readFile(t, filepath.Join(root, ".release", "LICENSE.txt")))
}

func TestRun_ReplacesExistingDocuments(t *testing.T) {
	t.Parallel()

	server := newDocumentServer(t)
	root := newCheckoutRoot(t)

	distDir := filepath.Join(root, "dist")
	require.NoError(t, os.MkdirAll(distDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(distDir, "EULA.txt"), []byte("stale"), 0o644))

	err := Run(context.Background(), &Options{
		ServerURL: server.URL,
		RepoRoot:  root,
	})
	require.NoError(t, err)

	require.Equal(t, "eula text", readFile(t, filepath.Join(distDir, "EULA.txt")))
	require.NoFileExists(t, filepath.Join(distDir, "EULA.txt.old"))
}

func TestRun_ServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(server.Close)

	root := newCheckoutRoot(t)

	err := Run(context.Background(), &Options{
		ServerURL: server.URL,
		RepoRoot:  root,
	})
	require.ErrorIs(t, err, errBadHTTPStatus)
	require.NoFileExists(t, filepath.Join(root, ".release", "LICENSE.txt"))
}

func TestRun_MissingLicense(t *testing.T) {
	t.Parallel()

	server := newDocumentServer(t)

	err := Run(context.Background(), &Options{
		ServerURL: server.URL,
		RepoRoot:  t.TempDir(),
	})
	require.ErrorIs(t, err, os.ErrNotExist)
}
