package releases

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"worbots-setup/internal/logger"
)

// Download fetches url into destPath, creating parent directories, and returns
// the number of bytes written. The file is written to a temporary name first so
// a failed download never leaves a truncated installer behind.
func (c *Client) Download(ctx context.Context, url, destPath string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to build request for %s", url)
	}
	req.Header.Set("User-Agent", UserAgent)

	logger.Debug("[DEBUG] Downloading %s to %s\n", url, destPath)
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, &NetworkError{URL: url, Err: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, &HTTPError{URL: url, Status: resp.StatusCode}
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return 0, errors.Wrapf(err, "failed to create directory for %s", destPath)
	}

	tmp := destPath + ".part"
	out, err := os.Create(tmp)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to create file %s", tmp)
	}

	n, err := io.Copy(out, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp)
		return 0, errors.Wrapf(err, "failed to write %s to file", url)
	}

	if err := os.Rename(tmp, destPath); err != nil {
		_ = os.Remove(tmp)
		return 0, errors.Wrapf(err, "failed to move download into place at %s", destPath)
	}

	logger.Debug("[DEBUG] Downloaded %s to %s\n", humanize.Bytes(uint64(n)), destPath)
	return n, nil
}
