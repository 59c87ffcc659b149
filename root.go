// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package xmlmode

import (
	"encoding/xml"
	"io"

	"golang.org/x/net/html/charset"

	"mellium.im/xmlmode/internal/decl"
)

// NSSchemaInstance is the XML Schema instance namespace, exported as a
// convenience.
const NSSchemaInstance = "http://www.w3.org/2001/XMLSchema-instance"

// A RootElement describes the first start element of an XML document, which
// is where schema-validated documents advertise the schemas they conform to.
type RootElement struct {
	// Name is the (possibly namespaced) name of the element.
	Name xml.Name

	// Encoding is the encoding label declared in the XML declaration, if the
	// document had one.
	Encoding string

	// SchemaLocation and NoNamespaceSchemaLocation are the values of the
	// corresponding attributes from the XML Schema instance namespace, if
	// present.
	SchemaLocation            string
	NoNamespaceSchemaLocation string
}

// Root reads tokens from r until the first start element and describes it.
// Documents in encodings other than UTF-8 are converted as long as the XML
// declaration labels the encoding.
// If the input ends before any element starts, the error is io.EOF.
//
// Root is a complement to Detect for documents reported as XSD: the
// namespace and schema location attributes of the root element are what a
// caller needs in order to locate the schema to validate against.
func Root(r io.Reader) (RootElement, error) {
	d := xml.NewDecoder(r)
	d.Strict = false
	d.CharsetReader = charset.NewReaderLabel

	var root RootElement
	for {
		tok, err := d.Token()
		if err != nil {
			return RootElement{}, err
		}
		switch tok := tok.(type) {
		case xml.ProcInst:
			if label := decl.EncodingLabel(tok); label != "" {
				root.Encoding = label
			}
		case xml.StartElement:
			root.Name = tok.Name
			for _, attr := range tok.Attr {
				if attr.Name.Space != NSSchemaInstance {
					continue
				}
				switch attr.Name.Local {
				case "schemaLocation":
					root.SchemaLocation = attr.Value
				case "noNamespaceSchemaLocation":
					root.NoNamespaceSchemaLocation = attr.Value
				}
			}
			return root, nil
		}
	}
}
