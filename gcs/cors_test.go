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

package gcs_test

import (
	"testing"

	"github.com/jacobsa/gcsmeta/gcs"
	storagev1 "google.golang.org/api/storage/v1"

	. "github.com/jacobsa/oglematchers"
	. "github.com/jacobsa/ogletest"
)

func TestCors(t *testing.T) { RunTests(t) }

////////////////////////////////////////////////////////////////////////
// Origin
////////////////////////////////////////////////////////////////////////

type OriginTest struct {
}

func init() { RegisterTestSuite(&OriginTest{}) }

func (t *OriginTest) WildcardIdentity() {
	ExpectTrue(gcs.OriginOf("*") == gcs.AnyOrigin())
	ExpectEq("*", gcs.AnyOrigin().Value())
}

func (t *OriginTest) EqualityByValue() {
	ExpectTrue(gcs.OriginOf("https://example.com") == gcs.OriginOf("https://example.com"))
	ExpectFalse(gcs.OriginOf("https://example.com") == gcs.OriginOf("https://example.org"))
	ExpectFalse(gcs.OriginOf("https://example.com") == gcs.AnyOrigin())
}

func (t *OriginTest) StringForm() {
	o := gcs.OriginOf("https://example.com")
	ExpectEq("https://example.com", o.Value())
	ExpectEq("https://example.com", o.String())
}

func (t *OriginTest) ComposedFromComponents() {
	o, err := gcs.NewOrigin("https", "example.com", 8080)
	AssertEq(nil, err)
	ExpectEq("https://example.com:8080", o.Value())
}

func (t *OriginTest) ComposedWithoutPort() {
	o, err := gcs.NewOrigin("https", "example.com", -1)
	AssertEq(nil, err)
	ExpectEq("https://example.com", o.Value())
}

func (t *OriginTest) EmptyScheme() {
	_, err := gcs.NewOrigin("", "example.com", 80)
	ExpectThat(err, Error(HasSubstr("scheme")))
}

func (t *OriginTest) EmptyHost() {
	_, err := gcs.NewOrigin("https", "", 80)
	ExpectThat(err, Error(HasSubstr("host")))
}

func (t *OriginTest) MalformedScheme() {
	// Schemes must begin with a letter, so the composed string cannot be
	// parsed back as a URI.
	_, err := gcs.NewOrigin("0https", "example.com", -1)
	ExpectThat(err, Error(HasSubstr("invalid origin")))
}

////////////////////////////////////////////////////////////////////////
// HTTPMethod
////////////////////////////////////////////////////////////////////////

type HTTPMethodTest struct {
}

func init() { RegisterTestSuite(&HTTPMethodTest{}) }

func (t *HTTPMethodTest) KnownMethods() {
	cases := map[string]gcs.HTTPMethod{
		"GET":     gcs.MethodGet,
		"HEAD":    gcs.MethodHead,
		"POST":    gcs.MethodPost,
		"PUT":     gcs.MethodPut,
		"DELETE":  gcs.MethodDelete,
		"OPTIONS": gcs.MethodOptions,
	}

	for name, expected := range cases {
		m, err := gcs.ParseHTTPMethod(name)
		AssertEq(nil, err, name)
		ExpectEq(expected, m, name)
	}
}

func (t *HTTPMethodTest) CaseInsensitive() {
	m, err := gcs.ParseHTTPMethod("put")
	AssertEq(nil, err)
	ExpectEq(gcs.MethodPut, m)

	m, err = gcs.ParseHTTPMethod("Delete")
	AssertEq(nil, err)
	ExpectEq(gcs.MethodDelete, m)
}

func (t *HTTPMethodTest) UnknownMethod() {
	_, err := gcs.ParseHTTPMethod("FETCH")
	ExpectThat(err, Error(HasSubstr("unknown HTTP method")))
	ExpectThat(err, Error(HasSubstr("FETCH")))
}

////////////////////////////////////////////////////////////////////////
// Cors
////////////////////////////////////////////////////////////////////////

type CorsTest struct {
}

func init() { RegisterTestSuite(&CorsTest{}) }

func (t *CorsTest) AllFieldsDefaultToUnset() {
	cors := gcs.NewCorsBuilder().Build()

	ExpectTrue(cors.MaxAgeSeconds() == nil)
	ExpectTrue(cors.Methods() == nil)
	ExpectTrue(cors.Origins() == nil)
	ExpectTrue(cors.ResponseHeaders() == nil)
}

func (t *CorsTest) UnsetIsDistinctFromEmpty() {
	unset := gcs.NewCorsBuilder().Build()
	empty := gcs.NewCorsBuilder().Origins([]gcs.Origin{}).Build()

	ExpectTrue(unset.Origins() == nil)
	AssertTrue(empty.Origins() != nil)
	ExpectEq(0, len(empty.Origins()))

	ExpectFalse(unset.Equal(empty))
	ExpectFalse(empty.Equal(unset))
}

func (t *CorsTest) BuilderSnapshotsItsArguments() {
	methods := []gcs.HTTPMethod{gcs.MethodGet}
	b := gcs.NewCorsBuilder().Methods(methods)

	// Mutating the caller's slice after the fact must not leak in.
	methods[0] = gcs.MethodDelete
	cors := b.Build()

	ExpectThat(cors.Methods(), ElementsAre("GET"))
}

func (t *CorsTest) AccessorsReturnCopies() {
	cors := gcs.NewCorsBuilder().
		ResponseHeaders([]string{"Content-Type"}).
		Build()

	headers := cors.ResponseHeaders()
	headers[0] = "mutated"

	ExpectThat(cors.ResponseHeaders(), ElementsAre("Content-Type"))
}

func (t *CorsTest) ToBuilderRoundTrip() {
	age := int64(3600)
	cors := gcs.NewCorsBuilder().
		MaxAgeSeconds(&age).
		Methods([]gcs.HTTPMethod{gcs.MethodGet, gcs.MethodPut}).
		Origins([]gcs.Origin{gcs.AnyOrigin()}).
		ResponseHeaders([]string{"Content-Type"}).
		Build()

	ExpectTrue(cors.Equal(cors.ToBuilder().Build()))
}

func (t *CorsTest) Equality() {
	age := int64(3600)
	build := func() gcs.Cors {
		return gcs.NewCorsBuilder().
			MaxAgeSeconds(&age).
			Methods([]gcs.HTTPMethod{gcs.MethodGet}).
			Origins([]gcs.Origin{gcs.OriginOf("https://example.com")}).
			ResponseHeaders([]string{"Content-Type"}).
			Build()
	}

	ExpectTrue(build().Equal(build()))

	otherAge := int64(60)
	ExpectFalse(build().Equal(build().ToBuilder().MaxAgeSeconds(&otherAge).Build()))
	ExpectFalse(build().Equal(build().ToBuilder().Methods(nil).Build()))
	ExpectFalse(build().Equal(
		build().ToBuilder().Origins([]gcs.Origin{gcs.AnyOrigin()}).Build()))
}

func (t *CorsTest) RawProjection() {
	age := int64(0)
	cors := gcs.NewCorsBuilder().
		MaxAgeSeconds(&age).
		Methods([]gcs.HTTPMethod{gcs.MethodGet, gcs.MethodPut}).
		Origins([]gcs.Origin{gcs.AnyOrigin(), gcs.OriginOf("https://example.com")}).
		ResponseHeaders([]string{"Content-Type", "x-goog-meta-foo"}).
		Build()

	expected := &storagev1.BucketCors{
		MaxAgeSeconds:   0,
		Method:          []string{"GET", "PUT"},
		Origin:          []string{"*", "https://example.com"},
		ResponseHeader:  []string{"Content-Type", "x-goog-meta-foo"},
		ForceSendFields: []string{"MaxAgeSeconds"},
	}

	ExpectThat(cors.ToRaw(), DeepEquals(expected))
}

func (t *CorsTest) RawProjectionOfUnsetFields() {
	raw := gcs.NewCorsBuilder().Build().ToRaw()

	ExpectThat(raw, DeepEquals(&storagev1.BucketCors{}))
}

func (t *CorsTest) RawRoundTrip() {
	age := int64(3600)
	cors := gcs.NewCorsBuilder().
		MaxAgeSeconds(&age).
		Methods([]gcs.HTTPMethod{gcs.MethodGet, gcs.MethodDelete}).
		Origins([]gcs.Origin{gcs.OriginOf("https://example.com")}).
		ResponseHeaders([]string{"Content-Type"}).
		Build()

	restored, err := gcs.FromRawCors(cors.ToRaw())
	AssertEq(nil, err)
	ExpectTrue(cors.Equal(restored))
}

func (t *CorsTest) RawRoundTripOfExplicitZeroMaxAge() {
	age := int64(0)
	cors := gcs.NewCorsBuilder().MaxAgeSeconds(&age).Build()

	restored, err := gcs.FromRawCors(cors.ToRaw())
	AssertEq(nil, err)

	AssertTrue(restored.MaxAgeSeconds() != nil)
	ExpectEq(0, *restored.MaxAgeSeconds())
	ExpectTrue(cors.Equal(restored))
}

func (t *CorsTest) RawRoundTripOfUnsetFields() {
	cors := gcs.NewCorsBuilder().Build()

	restored, err := gcs.FromRawCors(cors.ToRaw())
	AssertEq(nil, err)

	ExpectTrue(restored.MaxAgeSeconds() == nil)
	ExpectTrue(restored.Methods() == nil)
	ExpectTrue(restored.Origins() == nil)
	ExpectTrue(restored.ResponseHeaders() == nil)
	ExpectTrue(cors.Equal(restored))
}

func (t *CorsTest) FromRawWithMixedCaseMethods() {
	raw := &storagev1.BucketCors{
		Method: []string{"GET", "put"},
	}

	cors, err := gcs.FromRawCors(raw)
	AssertEq(nil, err)
	ExpectThat(cors.Methods(), ElementsAre("GET", "PUT"))
}

func (t *CorsTest) FromRawWithUnknownMethod() {
	raw := &storagev1.BucketCors{
		Method: []string{"GET", "FETCH"},
	}

	_, err := gcs.FromRawCors(raw)
	ExpectThat(err, Error(HasSubstr("decoding Method field")))
	ExpectThat(err, Error(HasSubstr("FETCH")))
}

func (t *CorsTest) FromRawWithWildcardOrigin() {
	raw := &storagev1.BucketCors{
		Origin: []string{"*", "https://example.com"},
	}

	cors, err := gcs.FromRawCors(raw)
	AssertEq(nil, err)

	origins := cors.Origins()
	AssertEq(2, len(origins))
	ExpectTrue(origins[0] == gcs.AnyOrigin())
	ExpectTrue(origins[1] == gcs.OriginOf("https://example.com"))
}
