// Package attachment validates uploaded profile PDFs. It records what was
// uploaded (name, size, page count) and never extracts text.
package attachment

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// MaxSize caps accepted uploads.
const MaxSize = 10 << 20 // 10MB

var (
	// ErrNotPDF is returned for files that are not named *.pdf or fail to open as a PDF.
	ErrNotPDF = errors.New("attachment must be a PDF")
	// ErrTooLarge is returned for uploads over MaxSize.
	ErrTooLarge = errors.New("attachment too large")
	// ErrEmpty is returned for zero-byte uploads.
	ErrEmpty = errors.New("attachment is empty")
)

// Info describes an accepted upload. The file contents are not retained and
// Info itself is never persisted.
type Info struct {
	Name  string
	Size  int64
	Pages int
}

// Inspect checks that data is a readable PDF and returns its Info.
func Inspect(name string, data []byte) (*Info, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	if len(data) > MaxSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrTooLarge, len(data), MaxSize)
	}
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return nil, fmt.Errorf("%w: %q", ErrNotPDF, name)
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPDF, err)
	}

	return &Info{
		Name:  filepath.Base(name),
		Size:  int64(len(data)),
		Pages: r.NumPage(),
	}, nil
}
