// Package source reads text files and decodes them as UTF-8.
// In lenient mode invalid byte sequences are replaced and a leading BOM is
// dropped; in strict mode they make the read fail.
package source

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var ErrInvalidEncoding = errors.New("file is not valid UTF-8")

type Reader struct {
	fs     afero.Fs
	strict bool
}

func NewReader(fs afero.Fs, strict bool) *Reader {
	return &Reader{
		fs:     fs,
		strict: strict,
	}
}

// ReadFile returns the decoded content of the file.
func (r *Reader) ReadFile(p string) (string, error) {
	b, err := afero.ReadFile(r.fs, p)
	if err != nil {
		return "", fmt.Errorf("read a file: %w", err)
	}
	return r.Decode(b)
}

func (r *Reader) Decode(b []byte) (string, error) {
	if r.strict {
		if _, _, err := transform.Bytes(encoding.UTF8Validator, b); err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
		}
		return string(b), nil
	}
	out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), b)
	if err != nil {
		return "", fmt.Errorf("decode a file as UTF-8: %w", err)
	}
	return string(out), nil
}
