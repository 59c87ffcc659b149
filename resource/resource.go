// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package resource maps logical locations to readable streams.
//
// Components that inspect XML documents rarely care where the bytes come
// from: a file on disk, an HTTP URL, or a stream that was already opened by
// someone else. This package provides a small Resource abstraction over such
// locations and a Loader that resolves location strings into resources,
// optionally through caller registered resolvers.
package resource // import "mellium.im/xmlmode/resource"

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
)

// ErrConsumed is returned by the Open method of one shot resources that have
// already been opened.
var ErrConsumed = errors.New("resource: stream already consumed")

// A Resource is a readable source of bytes at some logical location.
type Resource interface {
	// Open returns a reader positioned at the first byte of the resource.
	// Most implementations return an independent stream on every call; one
	// shot resources return ErrConsumed from the second call on.
	Open() (io.ReadCloser, error)

	// Exists reports whether the resource can currently be opened.
	Exists() bool

	// Name returns a description of the location suitable for error messages.
	Name() string
}

// File is a resource backed by a file on disk.
type File string

// Open opens the file for reading.
func (f File) Open() (io.ReadCloser, error) {
	return os.Open(string(f))
}

// Exists reports whether the file exists.
func (f File) Exists() bool {
	_, err := os.Stat(string(f))
	return err == nil
}

// Name returns the file path.
func (f File) Name() string {
	return string(f)
}

// Bytes is an in-memory resource.
// It may be opened any number of times.
type Bytes struct {
	// Location is an optional description of where the data came from.
	Location string

	// Data is the content of the resource.
	Data []byte
}

// Open returns a reader over the data.
func (b Bytes) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b.Data)), nil
}

// Exists always reports true.
func (b Bytes) Exists() bool {
	return true
}

// Name returns the location, or a generic description if none was provided.
func (b Bytes) Name() string {
	if b.Location != "" {
		return b.Location
	}
	return fmt.Sprintf("%d bytes in memory", len(b.Data))
}

// HTTP is a resource fetched over HTTP or HTTPS.
type HTTP struct {
	// URL is the location of the resource.
	URL string

	// Client is used to perform requests.
	// If nil, http.DefaultClient is used.
	Client *http.Client
}

func (h HTTP) client() *http.Client {
	if h.Client != nil {
		return h.Client
	}
	return http.DefaultClient
}

// Open performs a GET request and returns the response body.
// Responses with a status other than 200 OK are an error.
func (h HTTP) Open() (io.ReadCloser, error) {
	resp, err := h.client().Get(h.URL)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("resource: unexpected status %q fetching %s", resp.Status, h.URL)
	}
	return resp.Body, nil
}

// Exists performs a HEAD request and reports whether it succeeded with a
// 200 OK status.
func (h HTTP) Exists() bool {
	resp, err := h.client().Head(h.URL)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Name returns the URL.
func (h HTTP) Name() string {
	return h.URL
}

// Reader is a one shot resource wrapping a stream that has already been
// opened elsewhere.
// Unlike other resources it can only be opened once.
type Reader struct {
	name   string
	r      io.Reader
	opened bool
}

// NewReader wraps r in a one shot resource described by name.
func NewReader(name string, r io.Reader) *Reader {
	return &Reader{name: name, r: r}
}

// Open returns the wrapped stream on the first call and ErrConsumed on every
// later call.
// If the wrapped stream does not implement io.Closer, Close on the returned
// reader is a no-op.
func (r *Reader) Open() (io.ReadCloser, error) {
	if r.opened {
		return nil, ErrConsumed
	}
	r.opened = true
	if rc, ok := r.r.(io.ReadCloser); ok {
		return rc, nil
	}
	return io.NopCloser(r.r), nil
}

// Exists reports whether the stream has not yet been consumed.
func (r *Reader) Exists() bool {
	return !r.opened
}

// Name returns the description passed to NewReader.
func (r *Reader) Name() string {
	return r.name
}
