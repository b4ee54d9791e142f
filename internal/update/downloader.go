package update

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// Downloader streams release artifacts to local temporary storage.
type Downloader struct {
	client *http.Client
}

// NewDownloader creates a downloader. The client carries no overall
// timeout; large artifacts on slow links take as long as they take.
func NewDownloader() *Downloader {
	return &Downloader{
		client: &http.Client{},
	}
}

// Download fetches url into a uniquely-named temporary file and returns its
// path. The file's suffix follows the URL: ".exe" for Windows binaries,
// ".zip" for everything else.
//
// While streaming, onProgress (if non-nil) receives a monotonically
// non-decreasing percentage clamped to [0,100], but only when the server
// reports a content length. On any failure the temporary file is removed
// and an ErrDownloadFailed-wrapped error returned; a partial file is never
// handed to the caller. On success the caller owns the file and is
// responsible for deleting it.
func (d *Downloader) Download(url string, onProgress func(percent int)) (string, error) {
	suffix := ".zip"
	if strings.HasSuffix(url, ".exe") {
		suffix = ".exe"
	}

	tmp, err := os.CreateTemp("", "worklogger-update-*"+suffix)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	path := tmp.Name()

	resp, err := d.client.Get(url)
	if err != nil {
		discard(tmp, path)
		return "", fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		discard(tmp, path)
		return "", fmt.Errorf("%w: server returned status %d", ErrDownloadFailed, resp.StatusCode)
	}

	total := resp.ContentLength
	var written int64
	last := -1

	buf := make([]byte, 32*1024)
	for {
		n, rerr := resp.Body.Read(buf)
		if n > 0 {
			if _, werr := tmp.Write(buf[:n]); werr != nil {
				discard(tmp, path)
				return "", fmt.Errorf("%w: %v", ErrDownloadFailed, werr)
			}
			written += int64(n)
			if onProgress != nil && total > 0 {
				percent := int(written * 100 / total)
				if percent > 100 {
					percent = 100
				}
				if percent > last {
					last = percent
					onProgress(percent)
				}
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			discard(tmp, path)
			return "", fmt.Errorf("%w: %v", ErrDownloadFailed, rerr)
		}
	}

	if err := tmp.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	return path, nil
}

// discard abandons a partial download.
func discard(f *os.File, path string) {
	_ = f.Close()
	_ = os.Remove(path)
}
