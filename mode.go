// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

//go:generate go run -tags=tools golang.org/x/tools/cmd/stringer -type=Mode

package xmlmode

// Mode represents the mechanism that should be used to validate the structure
// of an XML document.
//
// The numeric values of the modes are fixed and may be stored or passed to
// other systems.
type Mode int

const (
	// None disables validation entirely.
	None Mode = iota

	// Auto means the validation mode could not be determined (for example
	// because the input could not be decoded) and the caller must choose a
	// mechanism itself.
	Auto

	// DTD means a DOCTYPE declaration was found and the document should be
	// validated against the DTD it names.
	DTD

	// XSD means no DOCTYPE declaration was found before the first element and
	// the document is assumed to be validated against an XML Schema.
	XSD
)
