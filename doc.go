// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package xmlmode detects the validation mode of XML documents.
//
// XML documents are validated either against a Document Type Definition
// (DTD), declared with a DOCTYPE declaration near the top of the document, or
// against an XML Schema (XSD), which is not declared in a way that is visible
// before parsing begins.
// Parsers that support both mechanisms need to know which one to configure
// before they consume the document, so this package scans the leading portion
// of a document, skipping comments, and reports DTD if a DOCTYPE declaration
// appears before the first element and XSD otherwise.
// The scan is a single forward pass over the input and does not require (or
// perform) XML parsing.
package xmlmode // import "mellium.im/xmlmode"
