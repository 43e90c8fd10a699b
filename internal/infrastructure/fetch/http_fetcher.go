package fetch

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/doeshing/foundryup-init/internal/domain"
	"github.com/doeshing/foundryup-init/internal/ports"
)

// HTTPFetcher downloads the installer with a single GET.
type HTTPFetcher struct {
	httpClient *http.Client
	logger     ports.Logger
}

// NewHTTPFetcher builds a fetcher. A nil client uses a plain http.Client,
// which keeps transport-default redirects and sets no timeout.
func NewHTTPFetcher(client *http.Client, logger ports.Logger) *HTTPFetcher {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPFetcher{httpClient: client, logger: logger}
}

// Fetch implements ports.Fetcher. The body is fully read before anything is
// written, then renamed into place and marked owner-executable.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string, dest string) (domain.FetchResult, error) {
	body, err := f.download(ctx, url)
	if err != nil {
		return domain.FetchResult{}, domain.FetchError(err)
	}
	f.logger.Debug("downloaded installer", map[string]interface{}{
		"url":   url,
		"bytes": len(body),
	})

	if err := writeFile(dest, body); err != nil {
		return domain.FetchResult{}, domain.FetchError(err)
	}
	if err := makeExecutable(dest); err != nil {
		return domain.FetchResult{}, domain.FetchError(err)
	}

	return domain.FetchResult{URL: url, Path: dest, Bytes: int64(len(body))}, nil
}

func (f *HTTPFetcher) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeFile writes data next to dest and renames it over dest. An existing
// dest keeps its permission bits.
func writeFile(dest string, data []byte) error {
	var perm os.FileMode = domain.BinaryFilePermissions
	if info, err := os.Stat(dest); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	// CreateTemp opens with 0600.
	if err := os.Chmod(tmpName, perm); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, dest); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

// makeExecutable adds the owner-execute bit, keeping the other bits.
func makeExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.Chmod(path, info.Mode().Perm()|domain.OwnerExecute)
}

var _ ports.Fetcher = (*HTTPFetcher)(nil)
