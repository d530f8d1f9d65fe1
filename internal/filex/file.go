// Package filex contains local file helpers for the CLI: preparing the
// session database location and loading images picked for upload.
package filex

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotImage = errors.New("file is not an image")

// File is a local file loaded into memory for a multipart upload.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// EnsureParentDir creates the directory that will hold path, if any.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// ReadImage loads the file at path and sniffs its content type. Anything
// that does not sniff as image/* is rejected with ErrNotImage.
func ReadImage(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	ct := http.DetectContentType(data)
	if !strings.HasPrefix(ct, "image/") {
		return nil, fmt.Errorf("%s (%s): %w", filepath.Base(path), ct, ErrNotImage)
	}

	return &File{Name: filepath.Base(path), ContentType: ct, Data: data}, nil
}
