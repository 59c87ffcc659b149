// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package resource_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mellium.im/xmlmode/resource"
)

func TestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.xml")
	if err := os.WriteFile(path, []byte("<root/>"), 0o600); err != nil {
		t.Fatalf("error writing file: %v", err)
	}

	res := resource.File(path)
	if !res.Exists() {
		t.Errorf("expected file resource to exist")
	}
	if res.Name() != path {
		t.Errorf("wrong name: want=%q, got=%q", path, res.Name())
	}

	rc, err := res.Open()
	if err != nil {
		t.Fatalf("error opening: %v", err)
	}
	defer func() {
		if err := rc.Close(); err != nil {
			t.Errorf("error closing: %v", err)
		}
	}()
	b, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("error reading: %v", err)
	}
	if string(b) != "<root/>" {
		t.Errorf("wrong content: got=%q", b)
	}

	missing := resource.File(filepath.Join(dir, "missing.xml"))
	if missing.Exists() {
		t.Errorf("did not expect missing file to exist")
	}
	if _, err := missing.Open(); err == nil {
		t.Errorf("expected an error opening a missing file")
	}
}

func TestBytes(t *testing.T) {
	res := resource.Bytes{Data: []byte("<a/>")}
	if !res.Exists() {
		t.Errorf("expected bytes resource to exist")
	}
	// Bytes resources can be opened repeatedly.
	for i := 0; i < 2; i++ {
		rc, err := res.Open()
		if err != nil {
			t.Fatalf("error opening on attempt %d: %v", i, err)
		}
		b, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("error reading on attempt %d: %v", i, err)
		}
		if string(b) != "<a/>" {
			t.Errorf("wrong content on attempt %d: got=%q", i, b)
		}
	}

	named := resource.Bytes{Location: "embedded config", Data: nil}
	if named.Name() != "embedded config" {
		t.Errorf("wrong name: got=%q", named.Name())
	}
	if (resource.Bytes{}).Name() == "" {
		t.Errorf("expected a generic description for unnamed bytes")
	}
}

func TestReaderOneShot(t *testing.T) {
	res := resource.NewReader("stdin", strings.NewReader("<a/>"))
	if !res.Exists() {
		t.Errorf("expected unconsumed reader resource to exist")
	}

	rc, err := res.Open()
	if err != nil {
		t.Fatalf("error opening: %v", err)
	}
	b, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("error reading: %v", err)
	}
	if string(b) != "<a/>" {
		t.Errorf("wrong content: got=%q", b)
	}

	if res.Exists() {
		t.Errorf("did not expect consumed reader resource to exist")
	}
	if _, err := res.Open(); !errors.Is(err, resource.ErrConsumed) {
		t.Errorf("wrong error from second open: %v", err)
	}
}

func TestHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/doc.xml" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, "<root/>")
	}))
	defer srv.Close()

	res := resource.HTTP{URL: srv.URL + "/doc.xml", Client: srv.Client()}
	if !res.Exists() {
		t.Errorf("expected resource to exist")
	}
	rc, err := res.Open()
	if err != nil {
		t.Fatalf("error opening: %v", err)
	}
	defer func() {
		if err := rc.Close(); err != nil {
			t.Errorf("error closing: %v", err)
		}
	}()
	b, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("error reading: %v", err)
	}
	if string(b) != "<root/>" {
		t.Errorf("wrong content: got=%q", b)
	}

	missing := resource.HTTP{URL: srv.URL + "/missing.xml", Client: srv.Client()}
	if missing.Exists() {
		t.Errorf("did not expect missing resource to exist")
	}
	if _, err := missing.Open(); err == nil {
		t.Errorf("expected an error opening a missing resource")
	}
}
