package releases

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

const latestBody = `{
	"tag_name": "v1.2.0",
	"assets": [
		{"name": "tool-Windows-x64.exe", "browser_download_url": "https://x/y"},
		{"name": "tool-macOS.dmg", "browser_download_url": "https://x/z"}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewClient(Options{APIURL: server.URL, Token: token, HTTPClient: server.Client()})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestLatestRelease(t *testing.T) {
	var gotPath, gotAgent, gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(latestBody))
	}, "")

	release, err := c.LatestRelease(context.Background(), "acme", "tool")
	if err != nil {
		t.Fatalf("LatestRelease: %v", err)
	}

	if gotPath != "/repos/acme/tool/releases/latest" {
		t.Errorf("requested path %q", gotPath)
	}
	if gotAgent != UserAgent {
		t.Errorf("User-Agent = %q, want %q", gotAgent, UserAgent)
	}
	if gotAuth != "" {
		t.Errorf("anonymous client sent Authorization %q", gotAuth)
	}
	if diff := cmp.Diff(toolRelease, release); diff != "" {
		t.Errorf("release mismatch (-want +got):\n%s", diff)
	}

	if asset, ok := SelectAsset(release, "Windows", ".exe"); !ok || asset.DownloadURL != "https://x/y" {
		t.Errorf("SelectAsset(Windows, .exe) = %+v, %v", asset, ok)
	}
	if _, ok := SelectAsset(release, "Linux"); ok {
		t.Error("SelectAsset(Linux) matched")
	}
}

func TestLatestReleaseWithToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(latestBody))
	}, "secret")

	if _, err := c.LatestRelease(context.Background(), "acme", "tool"); err != nil {
		t.Fatalf("LatestRelease: %v", err)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
}

func TestLatestReleaseNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Not Found"}`))
	}, "")

	_, err := c.LatestRelease(context.Background(), "acme", "tool")
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error = %v (%T), want *HTTPError", err, err)
	}
	if httpErr.Status != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", httpErr.Status)
	}
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		t.Error("404 was reported as a DecodeError")
	}
}

func TestLatestReleaseServerErrorWithGarbageBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}, "")

	_, err := c.LatestRelease(context.Background(), "acme", "tool")
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.Status != http.StatusBadGateway {
		t.Fatalf("error = %v, want HTTPError 502", err)
	}
}

func TestLatestReleaseMalformedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name": "v1", "assets": [`))
	}, "")

	_, err := c.LatestRelease(context.Background(), "acme", "tool")
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("error = %v (%T), want *DecodeError", err, err)
	}
}

func TestLatestReleaseEmptyBody(t *testing.T) {
	for _, body := range []string{"", "null", "{}"} {
		t.Run(fmt.Sprintf("%q", body), func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}, "")

			_, err := c.LatestRelease(context.Background(), "acme", "tool")
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("error = %v (%T), want *DecodeError", err, err)
			}
		})
	}
}

func TestAllReleasesEntryWithoutTag(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"tag_name": "v1", "assets": []}, {}]`))
	}, "")

	_, err := c.AllReleases(context.Background(), "acme", "tool")
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("error = %v (%T), want *DecodeError", err, err)
	}
}

func TestLatestReleaseNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c, err := NewClient(Options{APIURL: url})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	_, err = c.LatestRelease(context.Background(), "acme", "tool")
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("error = %v (%T), want *NetworkError", err, err)
	}
}

func TestAllReleases(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[
			{"tag_name": "rhc-1.6.4", "assets": [{"name": "REV-Hardware-Client-Setup-FRC.exe", "browser_download_url": "https://rev/frc"}]},
			{"tag_name": "spark-1.5", "assets": [{"name": "firmware-FRC.dfu", "browser_download_url": "https://rev/fw"}]}
		]`))
	}, "")

	releases, err := c.AllReleases(context.Background(), "REVrobotics", "REV-Software-Binaries")
	if err != nil {
		t.Fatalf("AllReleases: %v", err)
	}
	if gotPath != "/repos/REVrobotics/REV-Software-Binaries/releases" {
		t.Errorf("requested path %q", gotPath)
	}

	want := []Release{
		{Tag: "rhc-1.6.4", Assets: []Asset{{Name: "REV-Hardware-Client-Setup-FRC.exe", DownloadURL: "https://rev/frc"}}},
		{Tag: "spark-1.5", Assets: []Asset{{Name: "firmware-FRC.dfu", DownloadURL: "https://rev/fw"}}},
	}
	if diff := cmp.Diff(want, releases); diff != "" {
		t.Errorf("releases mismatch (-want +got):\n%s", diff)
	}
}

func TestDownload(t *testing.T) {
	payload := []byte("MZ fake installer")
	var gotAgent string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write(payload)
	}, "")

	dest := filepath.Join(t.TempDir(), "nested", "installer.exe")
	n, err := c.Download(context.Background(), c.baseURL+"installer.exe", dest)
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if n != int64(len(payload)) {
		t.Errorf("wrote %d bytes, want %d", n, len(payload))
	}
	if gotAgent != UserAgent {
		t.Errorf("User-Agent = %q", gotAgent)
	}
	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading download: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("downloaded %q, want %q", got, payload)
	}
}

func TestDownloadHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}, "")

	dest := filepath.Join(t.TempDir(), "installer.exe")
	_, err := c.Download(context.Background(), c.baseURL+"installer.exe", dest)
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.Status != http.StatusForbidden {
		t.Fatalf("error = %v, want HTTPError 403", err)
	}
	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Errorf("failed download left a file behind: %v", statErr)
	}
}
