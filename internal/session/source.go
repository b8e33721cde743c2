package session

import (
	"bufio"
	"io"
	"strings"
)

// LineSource yields input lines without their terminator. It returns
// io.EOF once input is exhausted.
type LineSource interface {
	ReadLine() (string, error)
}

type readResult struct {
	line string
	err  error
}

// ScannerSource reads lines from an io.Reader.
type ScannerSource struct {
	r       io.Reader
	scanner *bufio.Scanner
}

// NewScannerSource wraps r.
func NewScannerSource(r io.Reader) *ScannerSource {
	return &ScannerSource{r: r, scanner: bufio.NewScanner(r)}
}

// Close closes the underlying reader if it is an io.Closer.
func (s *ScannerSource) Close() error {
	if c, ok := s.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ReadLine returns the next line with any trailing carriage return removed.
func (s *ScannerSource) ReadLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(s.scanner.Text(), "\r"), nil
}
