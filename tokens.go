// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package xmlmode

import (
	"bytes"
	"encoding/xml"
	"io"

	"golang.org/x/net/html/charset"
	"mellium.im/xmlstream"

	"mellium.im/xmlmode/internal/decl"
)

// DetectTokens scans r like Detect and then returns a token reader over the
// complete document, including the portion that was consumed while scanning,
// with any leading XML declaration skipped.
// It lets a caller pick a parser based on the reported mode without having to
// reopen or rewind the underlying stream.
//
// Unlike Detect, DetectTokens does not close r: the returned token reader
// continues to read from it and the caller retains ownership.
func DetectTokens(r io.Reader) (Mode, xml.TokenReader, error) {
	var buf bytes.Buffer
	var d Detector
	// Hide the Closer (if any) from Detect so that the stream remains open for
	// the token reader.
	mode, err := d.Detect(struct{ io.Reader }{io.TeeReader(r, &buf)})
	if err != nil {
		return None, nil, err
	}
	dec := xml.NewDecoder(io.MultiReader(&buf, r))
	dec.CharsetReader = charset.NewReaderLabel
	return mode, decl.Skip(dec), nil
}

// RemoveComments returns a token reader that reads from r and drops all
// comment tokens.
// It is the token-level counterpart of the line scanning performed by Detect,
// for callers that already have a token stream.
func RemoveComments(r xml.TokenReader) xml.TokenReader {
	return xmlstream.ReaderFunc(func() (xml.Token, error) {
		for {
			tok, err := r.Token()
			if _, ok := tok.(xml.Comment); !ok {
				return tok, err
			}
			if err != nil {
				return nil, err
			}
		}
	})
}
