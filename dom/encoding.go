package dom

import (
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// NewReader returns a reader that converts the document bytes to UTF-8.
// label names the source charset by its IANA/WHATWG label ("utf-8",
// "windows-1252", "shift_jis", ...). An empty label enables automatic
// detection from a byte-order mark or <meta> declaration in the stream.
func NewReader(r io.Reader, label string) (io.Reader, error) {
	if label == "" {
		cr, err := charset.NewReader(r, "")
		if err != nil {
			return nil, fmt.Errorf("detecting charset: %w", err)
		}
		return cr, nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q", label)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
