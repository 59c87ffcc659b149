// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package xmlmode

import (
	"strings"
)

const (
	startComment = "<!--"
	endComment   = "-->"
)

// commentScanner strips comment spans from the lines of an XML document as
// they are read.
// The zero value is ready to use at the start of a document; a scanner is
// only valid for a single forward pass over a single document because the
// comment state carries over from one line to the next.
type commentScanner struct {
	inComment bool
}

// strip returns the portion of line that is not part of a comment and reports
// whether any usable content remains.
// A false report means the line was absorbed entirely by comment spans, which
// is distinct from the line stripping to an empty (or all whitespace) string.
//
// If the line contains no comment tokens it is returned unchanged, even in
// the middle of a multi-line comment; callers are expected to check the
// comment state before treating the result as content.
func (s *commentScanner) strip(line string) (string, bool) {
	start := strings.Index(line, startComment)
	if start == -1 && !strings.Contains(line, endComment) {
		return line, true
	}

	var prefix string
	rest := line
	if start >= 0 {
		prefix = line[:start]
		rest = line[start:]
	}
	for {
		var ok bool
		rest, ok = s.consume(rest)
		if !ok {
			return "", false
		}
		// Another comment may open immediately after the one that just closed
		// (ignoring whitespace), in which case keep consuming tokens.
		if !s.inComment && !strings.HasPrefix(strings.TrimSpace(rest), startComment) {
			return prefix + rest, true
		}
	}
}

// consume advances past the next expected comment token in line, flipping the
// comment state, and returns the remainder of the line after the token.
// It reports false if the expected token does not appear in line.
func (s *commentScanner) consume(line string) (string, bool) {
	if s.inComment {
		return s.token(line, endComment, false)
	}
	return s.token(line, startComment, true)
}

func (s *commentScanner) token(line, token string, inComment bool) (string, bool) {
	idx := strings.Index(line, token)
	if idx == -1 {
		return "", false
	}
	s.inComment = inComment
	return line[idx+len(token):], true
}
