// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package xmlmode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// The token in an XML document that declares the DTD to validate against.
const doctype = "DOCTYPE"

// A Detector classifies XML documents by validation mode.
//
// The zero value assumes input encoded as UTF-8 and is ready to use.
// A Detector holds configuration only, never per-document state, so a single
// Detector may be shared between goroutines.
type Detector struct {
	// Encoding is the character encoding the input is decoded from before it
	// is scanned.
	// If nil, the input is assumed to already be UTF-8.
	Encoding encoding.Encoding

	// Label is the name of the character encoding the input is decoded from,
	// in any of the forms accepted by WHATWG encoding labels (for example
	// "utf-8", "latin1", or "windows-1252").
	// If Encoding is also set it takes precedence over Label.
	Label string
}

// Detect scans r and reports the validation mode of the XML document it
// contains.
//
// Reading stops at the first line of content that decides the mode: a line
// containing a DOCTYPE declaration decides DTD and a line containing the
// opening tag of an element decides XSD.
// Comments and blank lines are skipped, as are lines that contain no markup
// (such as a lone XML declaration).
// A document that ends without a DOCTYPE declaration, including an empty one,
// is reported as XSD.
// If the input cannot be decoded the mode cannot be determined and Auto is
// reported with a nil error; the caller must pick a validation strategy
// itself.
//
// Detect takes ownership of r: if r implements io.Closer it is closed before
// Detect returns, on every path.
func (d Detector) Detect(r io.Reader) (mode Mode, err error) {
	if c, ok := r.(io.Closer); ok {
		defer func() {
			if closeErr := c.Close(); closeErr != nil && err == nil {
				err = closeErr
			}
		}()
	}

	enc := d.Encoding
	if enc == nil && d.Label != "" {
		enc, _ = charset.Lookup(d.Label)
		if enc == nil {
			return None, fmt.Errorf("xmlmode: unsupported encoding label %q", d.Label)
		}
	}
	t := transform.Transformer(encoding.UTF8Validator)
	if enc != nil {
		t = transform.Chain(enc.NewDecoder(), encoding.UTF8Validator)
	}
	return scan(transform.NewReader(r, t))
}

// Detect is shorthand for calling the Detect method of a zero value Detector:
// it scans UTF-8 input and closes r (if it implements io.Closer) before
// returning.
func Detect(r io.Reader) (Mode, error) {
	var d Detector
	return d.Detect(r)
}

// scan drives the line-by-line mode decision.
func scan(r io.Reader) (Mode, error) {
	var s commentScanner
	buf := bufio.NewReader(r)
	for {
		line, err := buf.ReadString('\n')
		switch {
		case errors.Is(err, encoding.ErrInvalidUTF8):
			// Blocked by the character encoding: whatever was read before the
			// bad byte sequence cannot be trusted, so leave the decision to
			// the caller.
			return Auto, nil
		case err != nil && err != io.EOF:
			return None, err
		}

		content, ok := s.strip(line)
		if ok && !s.inComment && strings.TrimSpace(content) != "" {
			// DOCTYPE wins over an opening tag on the same line.
			if strings.Contains(content, doctype) {
				return DTD, nil
			}
			if hasOpeningTag(content) {
				// The first element has started, so a DOCTYPE declaration can
				// no longer appear.
				return XSD, nil
			}
		}

		if err == io.EOF {
			return XSD, nil
		}
	}
}

// hasOpeningTag reports whether content contains a "<" immediately followed
// by a letter, ie. the opening tag of an element.
// Comment tokens are expected to have been stripped from content already.
func hasOpeningTag(content string) bool {
	idx := strings.IndexByte(content, '<')
	if idx == -1 || idx+1 >= len(content) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(content[idx+1:])
	return unicode.IsLetter(r)
}
