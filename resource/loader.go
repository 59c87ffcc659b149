// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package resource

import (
	"net/url"
	"strings"
)

// A Resolver maps a location string to a Resource.
// Implementations return nil to decline a location, letting resolution fall
// through to the next resolver.
type Resolver interface {
	Resolve(location string) Resource
}

// ResolverFunc is an adapter that lets a function be used as a Resolver.
type ResolverFunc func(location string) Resource

// Resolve implements Resolver by calling f.
func (f ResolverFunc) Resolve(location string) Resource {
	return f(location)
}

// A Loader resolves location strings into resources.
//
// The zero value handles "file:" URLs, "http:" and "https:" URLs, and treats
// everything else as a file path. Registered resolvers are consulted first,
// in registration order, so callers can claim custom schemes (or override the
// defaults) without touching code that only knows about locations.
type Loader struct {
	resolvers []Resolver
}

// Register adds a resolver to the loader.
func (l *Loader) Register(r Resolver) {
	l.resolvers = append(l.resolvers, r)
}

// Resolve maps location to a Resource.
// It never returns nil: locations that no resolver claims resolve to a File,
// whether or not a file exists there.
func (l *Loader) Resolve(location string) Resource {
	for _, r := range l.resolvers {
		if res := r.Resolve(location); res != nil {
			return res
		}
	}
	if u, err := url.Parse(location); err == nil {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return HTTP{URL: location}
		case "file":
			return File(u.Path)
		}
	}
	return File(location)
}
