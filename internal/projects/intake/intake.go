// Package intake normalizes admin-supplied images, either uploaded files or
// pasted URLs, into the embedded-payload-or-URL strings a project's images
// sequence holds.
package intake

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/bokyaa/portfolio-backend/internal/projects/domain"
)

// MaxFileSize is the per-file upload limit.
const MaxFileSize = 5 * 1024 * 1024

// File is one member of an upload batch.
type File struct {
	Name   string
	Size   int64
	Reader io.Reader
}

// Rejection reports one file that did not make it into the batch result.
type Rejection struct {
	Name string
	Err  error
}

// AddFiles validates an upload batch against the current images and returns
// the merged sequence. The whole batch is refused when it would push the
// total past the cap; individual files failing type, size or read checks are
// rejected one by one without aborting their siblings. Accepted files are
// read concurrently and appended in completion order.
func AddFiles(current []string, files []File) ([]string, []Rejection, error) {
	if len(files) == 0 {
		return current, nil, nil
	}
	if len(current)+len(files) > domain.MaxImages {
		return current, nil, domain.ErrTooManyImages
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		accepted []string
		rejected []Rejection
	)
	for _, f := range files {
		wg.Add(1)
		go func(f File) {
			defer wg.Done()
			payload, err := embed(f)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				rejected = append(rejected, Rejection{Name: f.Name, Err: err})
				return
			}
			accepted = append(accepted, payload)
		}(f)
	}
	wg.Wait()

	merged := append(append([]string{}, current...), accepted...)
	return merged, rejected, nil
}

// AddURL appends a pasted image URL, subject to the same cap.
func AddURL(current []string, url string) ([]string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return current, nil
	}
	if len(current) >= domain.MaxImages {
		return current, domain.ErrTooManyImages
	}
	return append(append([]string{}, current...), url), nil
}

// RemoveAt drops the image at the given position. Out-of-range positions
// leave the sequence unchanged.
func RemoveAt(current []string, i int) []string {
	if i < 0 || i >= len(current) {
		return current
	}
	out := make([]string, 0, len(current)-1)
	out = append(out, current[:i]...)
	out = append(out, current[i+1:]...)
	return out
}

// embed reads one file into a data-URI payload, enforcing the image type
// and size limits.
func embed(f File) (string, error) {
	if f.Size > MaxFileSize {
		return "", fmt.Errorf("%s: %w", f.Name, domain.ErrImageTooLarge)
	}
	// Read one byte past the limit so oversized files with an unknown
	// declared size are still caught.
	data, err := io.ReadAll(io.LimitReader(f.Reader, MaxFileSize+1))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", f.Name, err)
	}
	if len(data) > MaxFileSize {
		return "", fmt.Errorf("%s: %w", f.Name, domain.ErrImageTooLarge)
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%s: %w", f.Name, domain.ErrNotImage)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
