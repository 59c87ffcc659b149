// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package xmlmode

import (
	"fmt"

	"mellium.im/xmlmode/resource"
)

// DetectResource opens res, detects the validation mode of the document it
// contains, and closes the underlying stream before returning.
func (d Detector) DetectResource(res resource.Resource) (Mode, error) {
	rc, err := res.Open()
	if err != nil {
		return None, fmt.Errorf("xmlmode: opening %s: %w", res.Name(), err)
	}
	return d.Detect(rc)
}

// DetectResource is shorthand for calling the DetectResource method of a zero
// value Detector.
func DetectResource(res resource.Resource) (Mode, error) {
	var d Detector
	return d.DetectResource(res)
}
