// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package decl contains functionality related to XML declarations.
package decl

import (
	"encoding/xml"
	"strings"
)

type skipper struct {
	r       xml.TokenReader
	started bool
}

// Token implements xml.TokenReader for skipper.
func (r *skipper) Token() (xml.Token, error) {
	tok, err := r.r.Token()
	if tok != nil && !r.started {
		r.started = true
		if proc, ok := tok.(xml.ProcInst); ok && proc.Target == "xml" {
			if err != nil {
				return nil, err
			}
			return r.r.Token()
		}
	}
	return tok, err
}

// Skip wraps a token reader and skips any XML declaration.
func Skip(r xml.TokenReader) xml.TokenReader {
	return &skipper{r: r}
}

// EncodingLabel returns the value of the encoding pseudo-attribute of an XML
// declaration, or the empty string if proc is not an XML declaration or does
// not declare an encoding.
func EncodingLabel(proc xml.ProcInst) string {
	if proc.Target != "xml" {
		return ""
	}
	inst := string(proc.Inst)
	idx := strings.Index(inst, "encoding=")
	if idx == -1 {
		return ""
	}
	inst = inst[idx+len("encoding="):]
	if inst == "" {
		return ""
	}
	quote := inst[0]
	if quote != '"' && quote != '\'' {
		return ""
	}
	end := strings.IndexByte(inst[1:], quote)
	if end == -1 {
		return ""
	}
	return inst[1 : 1+end]
}
