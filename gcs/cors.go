// Copyright 2015 Google Inc. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gcs

import (
	"fmt"
	"net"
	"net/url"
	"strconv"

	storagev1 "google.golang.org/api/storage/v1"
)

const anyURI = "*"

var anyOrigin = Origin{value: anyURI}

// Origin is a single allowed origin in a CORS rule: either the wildcard
// matching any origin, or a concrete URI. The zero value is not a legal
// origin; use AnyOrigin, OriginOf, or NewOrigin.
//
// Origin is a comparable value type; two origins are equal iff their
// underlying strings are equal, so OriginOf("*") == AnyOrigin().
type Origin struct {
	value string
}

// AnyOrigin returns the wildcard origin, rendered as "*" on the wire.
func AnyOrigin() Origin {
	return anyOrigin
}

// OriginOf returns the origin for the given URI string. The literal
// string "*" yields the wildcard.
func OriginOf(value string) Origin {
	if value == anyURI {
		return anyOrigin
	}

	return Origin{value: value}
}

// NewOrigin composes an origin URI from a scheme, a host, and a port. A
// negative port means "no port". It returns an error, wrapping the
// underlying parse failure where there is one, if the components cannot
// form a valid URI.
func NewOrigin(scheme string, host string, port int) (o Origin, err error) {
	if scheme == "" {
		err = fmt.Errorf("invalid origin: empty scheme")
		return
	}

	if host == "" {
		err = fmt.Errorf("invalid origin: empty host")
		return
	}

	u := url.URL{
		Scheme: scheme,
		Host:   host,
	}

	if port >= 0 {
		u.Host = net.JoinHostPort(host, strconv.Itoa(port))
	}

	s := u.String()
	if _, parseErr := url.ParseRequestURI(s); parseErr != nil {
		err = fmt.Errorf("invalid origin %q: %v", s, parseErr)
		return
	}

	o = OriginOf(s)
	return
}

// Value returns the underlying URI string, or "*" for the wildcard.
func (o Origin) Value() string {
	return o.value
}

func (o Origin) String() string {
	return o.value
}

// Cors represents a single cross-origin resource sharing rule of a
// bucket. Instances are immutable; construct them with NewCorsBuilder.
//
// Every field is optional, and an unset sequence is distinct from an
// empty one. See here for the meaning of the fields:
//
//     https://cloud.google.com/storage/docs/cross-origin
//
type Cors struct {
	maxAgeSeconds   *int64
	methods         []HTTPMethod
	origins         []Origin
	responseHeaders []string
}

// CorsBuilder accumulates fields for a Cors rule. Builders are not safe
// for concurrent use.
type CorsBuilder struct {
	maxAgeSeconds   *int64
	methods         []HTTPMethod
	origins         []Origin
	responseHeaders []string
}

// NewCorsBuilder returns a builder with every field unset.
func NewCorsBuilder() *CorsBuilder {
	return &CorsBuilder{}
}

// MaxAgeSeconds sets how long a preflight response may be cached, or
// unsets it when given nil.
func (b *CorsBuilder) MaxAgeSeconds(seconds *int64) *CorsBuilder {
	b.maxAgeSeconds = copyInt64Ptr(seconds)
	return b
}

// Methods sets the allowed HTTP methods, snapshotting the given slice.
// nil unsets the field; an empty slice is a (distinct) empty list.
func (b *CorsBuilder) Methods(methods []HTTPMethod) *CorsBuilder {
	b.methods = copyMethods(methods)
	return b
}

// Origins sets the allowed origins, snapshotting the given slice. nil
// unsets the field.
func (b *CorsBuilder) Origins(origins []Origin) *CorsBuilder {
	b.origins = copyOrigins(origins)
	return b
}

// ResponseHeaders sets the response headers exposed to the client,
// snapshotting the given slice. nil unsets the field.
func (b *CorsBuilder) ResponseHeaders(headers []string) *CorsBuilder {
	b.responseHeaders = copyStrings(headers)
	return b
}

// Build returns an immutable Cors rule holding the current builder
// state. There are no mandatory fields.
func (b *CorsBuilder) Build() Cors {
	return Cors{
		maxAgeSeconds:   copyInt64Ptr(b.maxAgeSeconds),
		methods:         copyMethods(b.methods),
		origins:         copyOrigins(b.origins),
		responseHeaders: copyStrings(b.responseHeaders),
	}
}

// MaxAgeSeconds returns the max cache age, or nil if unset.
func (c Cors) MaxAgeSeconds() *int64 {
	return copyInt64Ptr(c.maxAgeSeconds)
}

// Methods returns a copy of the allowed methods, or nil if unset.
func (c Cors) Methods() []HTTPMethod {
	return copyMethods(c.methods)
}

// Origins returns a copy of the allowed origins, or nil if unset.
func (c Cors) Origins() []Origin {
	return copyOrigins(c.origins)
}

// ResponseHeaders returns a copy of the exposed response headers, or nil
// if unset.
func (c Cors) ResponseHeaders() []string {
	return copyStrings(c.responseHeaders)
}

// ToBuilder returns a builder pre-populated with every field of this
// rule.
func (c Cors) ToBuilder() *CorsBuilder {
	return NewCorsBuilder().
		MaxAgeSeconds(c.maxAgeSeconds).
		Methods(c.methods).
		Origins(c.origins).
		ResponseHeaders(c.responseHeaders)
}

// Equal reports structural equality over all four fields, treating unset
// and empty sequences as distinct.
func (c Cors) Equal(other Cors) bool {
	switch {
	case (c.maxAgeSeconds == nil) != (other.maxAgeSeconds == nil):
		return false

	case c.maxAgeSeconds != nil && *c.maxAgeSeconds != *other.maxAgeSeconds:
		return false
	}

	if (c.methods == nil) != (other.methods == nil) ||
		len(c.methods) != len(other.methods) {
		return false
	}

	for i := range c.methods {
		if c.methods[i] != other.methods[i] {
			return false
		}
	}

	if (c.origins == nil) != (other.origins == nil) ||
		len(c.origins) != len(other.origins) {
		return false
	}

	for i := range c.origins {
		if c.origins[i] != other.origins[i] {
			return false
		}
	}

	if (c.responseHeaders == nil) != (other.responseHeaders == nil) ||
		len(c.responseHeaders) != len(other.responseHeaders) {
		return false
	}

	for i := range c.responseHeaders {
		if c.responseHeaders[i] != other.responseHeaders[i] {
			return false
		}
	}

	return true
}

// ToRaw projects the rule onto the raw representation. Unset sequences
// are left nil; an explicitly set max age is recorded in
// ForceSendFields so that a zero survives serialization.
func (c Cors) ToRaw() *storagev1.BucketCors {
	raw := &storagev1.BucketCors{
		ResponseHeader: copyStrings(c.responseHeaders),
	}

	if c.maxAgeSeconds != nil {
		raw.MaxAgeSeconds = *c.maxAgeSeconds
		raw.ForceSendFields = append(raw.ForceSendFields, "MaxAgeSeconds")
	}

	if c.methods != nil {
		raw.Method = make([]string, len(c.methods))
		for i, m := range c.methods {
			raw.Method[i] = string(m)
		}
	}

	if c.origins != nil {
		raw.Origin = make([]string, len(c.origins))
		for i, o := range c.origins {
			raw.Origin[i] = o.value
		}
	}

	return raw
}

// FromRawCors is the inverse of Cors.ToRaw. Method names are matched
// case-insensitively; an unrecognized name is an error.
func FromRawCors(raw *storagev1.BucketCors) (c Cors, err error) {
	b := NewCorsBuilder()

	if raw.MaxAgeSeconds != 0 || containsField(raw.ForceSendFields, "MaxAgeSeconds") {
		age := raw.MaxAgeSeconds
		b.MaxAgeSeconds(&age)
	}

	if raw.Method != nil {
		methods := make([]HTTPMethod, len(raw.Method))
		for i, name := range raw.Method {
			methods[i], err = ParseHTTPMethod(name)
			if err != nil {
				err = fmt.Errorf("decoding Method field: %v", err)
				return
			}
		}

		b.Methods(methods)
	}

	if raw.Origin != nil {
		origins := make([]Origin, len(raw.Origin))
		for i, v := range raw.Origin {
			origins[i] = OriginOf(v)
		}

		b.Origins(origins)
	}

	b.ResponseHeaders(raw.ResponseHeader)

	c = b.Build()
	return
}

func toRawCorsList(in []Cors) (out []*storagev1.BucketCors) {
	if in == nil {
		return
	}

	out = make([]*storagev1.BucketCors, len(in))
	for i, c := range in {
		out[i] = c.ToRaw()
	}

	return
}

func fromRawCorsList(in []*storagev1.BucketCors) (out []Cors, err error) {
	if in == nil {
		return
	}

	out = make([]Cors, len(in))
	for i, raw := range in {
		out[i], err = FromRawCors(raw)
		if err != nil {
			err = fmt.Errorf("FromRawCors: %v", err)
			return
		}
	}

	return
}

func copyMethods(in []HTTPMethod) (out []HTTPMethod) {
	if in == nil {
		return
	}

	out = make([]HTTPMethod, len(in))
	copy(out, in)

	return
}

func copyOrigins(in []Origin) (out []Origin) {
	if in == nil {
		return
	}

	out = make([]Origin, len(in))
	copy(out, in)

	return
}

func copyCors(in []Cors) (out []Cors) {
	if in == nil {
		return
	}

	out = make([]Cors, len(in))
	copy(out, in)

	return
}
