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
	"errors"
	"fmt"
	"reflect"
	"time"

	storagev1 "google.golang.org/api/storage/v1"
)

// nullableString distinguishes three states for a clearable string
// field: never set, explicitly cleared, and present with a value.
// Accessors collapse "cleared" to nil; ToRaw records it in the raw
// struct's NullFields list.
type nullableString struct {
	set  bool
	null bool
	s    string
}

// nullableOf stores the given value, treating nil as "explicitly
// cleared".
func nullableOf(v *string) nullableString {
	if v == nil {
		return nullableString{set: true, null: true}
	}

	return nullableString{set: true, s: *v}
}

func (n nullableString) ptr() (out *string) {
	if n.set && !n.null {
		s := n.s
		out = &s
	}

	return
}

// Write the field into a raw struct: a value is assigned to dst, a
// cleared field is recorded in nullFields, an unset field touches
// neither.
func (n nullableString) applyRaw(dst *string, name string, nullFields *[]string) {
	switch {
	case !n.set:

	case n.null:
		*nullFields = append(*nullFields, name)

	default:
		*dst = n.s
	}
}

// Read the field back out of a raw struct.
func rawNullable(value string, name string, nullFields []string) nullableString {
	switch {
	case value != "":
		return nullableString{set: true, s: value}

	case containsField(nullFields, name):
		return nullableString{set: true, null: true}
	}

	return nullableString{}
}

// BlobInfo is an immutable record of the metadata of a stored object.
// Construct instances with NewBlobInfo or NewBlobInfoBuilder; they are
// safe for concurrent use once built.
//
// See here for more information about the fields:
//
//     https://cloud.google.com/storage/docs/json_api/v1/objects#resource
//
type BlobInfo struct {
	bucket   string
	id       string
	name     string
	selfLink string
	etag     string

	cacheControl       nullableString
	contentType        nullableString
	contentEncoding    nullableString
	contentDisposition nullableString
	contentLanguage    nullableString
	md5                nullableString
	crc32c             nullableString

	acl   []ACLRule
	owner *Entity

	size           *int64
	generation     *int64
	metageneration *int64
	componentCount *int64

	mediaLink string
	metadata  map[string]string

	deleteTime *time.Time
	updateTime *time.Time
}

// BlobInfoBuilder accumulates fields for a BlobInfo. Builders are not
// safe for concurrent use.
type BlobInfoBuilder struct {
	bucket   string
	id       string
	name     string
	selfLink string
	etag     string

	cacheControl       nullableString
	contentType        nullableString
	contentEncoding    nullableString
	contentDisposition nullableString
	contentLanguage    nullableString
	md5                nullableString
	crc32c             nullableString

	acl   []ACLRule
	owner *Entity

	size           *int64
	generation     *int64
	metageneration *int64
	componentCount *int64

	mediaLink string
	metadata  map[string]string

	deleteTime *time.Time
	updateTime *time.Time
}

// NewBlobInfo returns a minimal instance carrying only the mandatory
// fields. Panics if either is empty.
func NewBlobInfo(bucket string, name string) *BlobInfo {
	return NewBlobInfoBuilder(bucket, name).Build()
}

// NewBlobInfoBuilder returns a builder pre-populated with the mandatory
// bucket and object names. Panics if either is empty.
func NewBlobInfoBuilder(bucket string, name string) *BlobInfoBuilder {
	return new(BlobInfoBuilder).Bucket(bucket).Name(name)
}

// Bucket sets the name of the containing bucket. Panics if the name is
// empty.
func (b *BlobInfoBuilder) Bucket(bucket string) *BlobInfoBuilder {
	if bucket == "" {
		panic("BlobInfoBuilder.Bucket: empty bucket name")
	}

	b.bucket = bucket
	return b
}

// Name sets the object name. Panics if the name is empty.
func (b *BlobInfoBuilder) Name(name string) *BlobInfoBuilder {
	if name == "" {
		panic("BlobInfoBuilder.Name: empty object name")
	}

	b.name = name
	return b
}

// ID sets the service-assigned id of the object.
func (b *BlobInfoBuilder) ID(id string) *BlobInfoBuilder {
	b.id = id
	return b
}

// SelfLink sets the service-assigned URI of the object resource.
func (b *BlobInfoBuilder) SelfLink(selfLink string) *BlobInfoBuilder {
	b.selfLink = selfLink
	return b
}

// Etag sets the HTTP entity tag of the object.
func (b *BlobInfoBuilder) Etag(etag string) *BlobInfoBuilder {
	b.etag = etag
	return b
}

// CacheControl sets the Cache-Control metadata. nil means "clear this
// field on the service", which is distinct from never calling the
// setter.
func (b *BlobInfoBuilder) CacheControl(cacheControl *string) *BlobInfoBuilder {
	b.cacheControl = nullableOf(cacheControl)
	return b
}

// ContentType sets the Content-Type metadata. nil clears the field; see
// CacheControl.
func (b *BlobInfoBuilder) ContentType(contentType *string) *BlobInfoBuilder {
	b.contentType = nullableOf(contentType)
	return b
}

// ContentEncoding sets the Content-Encoding metadata. nil clears the
// field; see CacheControl.
func (b *BlobInfoBuilder) ContentEncoding(contentEncoding *string) *BlobInfoBuilder {
	b.contentEncoding = nullableOf(contentEncoding)
	return b
}

// ContentDisposition sets the Content-Disposition metadata. nil clears
// the field; see CacheControl.
func (b *BlobInfoBuilder) ContentDisposition(contentDisposition *string) *BlobInfoBuilder {
	b.contentDisposition = nullableOf(contentDisposition)
	return b
}

// ContentLanguage sets the Content-Language metadata. nil clears the
// field; see CacheControl.
func (b *BlobInfoBuilder) ContentLanguage(contentLanguage *string) *BlobInfoBuilder {
	b.contentLanguage = nullableOf(contentLanguage)
	return b
}

// MD5 sets the base64-encoded MD5 hash of the object contents. nil
// clears the field; see CacheControl.
func (b *BlobInfoBuilder) MD5(md5 *string) *BlobInfoBuilder {
	b.md5 = nullableOf(md5)
	return b
}

// CRC32C sets the base64-encoded CRC32C checksum of the object
// contents. nil clears the field; see CacheControl.
func (b *BlobInfoBuilder) CRC32C(crc32c *string) *BlobInfoBuilder {
	b.crc32c = nullableOf(crc32c)
	return b
}

// ACL sets the object's access control list, snapshotting the given
// slice. nil unsets the field.
func (b *BlobInfoBuilder) ACL(acl []ACLRule) *BlobInfoBuilder {
	b.acl = copyACLRules(acl)
	return b
}

// Owner sets the entity owning the object, or unsets it when given nil.
func (b *BlobInfoBuilder) Owner(owner *Entity) *BlobInfoBuilder {
	b.owner = copyEntityPtr(owner)
	return b
}

// Size sets the content size in bytes, or unsets it when given nil.
func (b *BlobInfoBuilder) Size(size *int64) *BlobInfoBuilder {
	b.size = copyInt64Ptr(size)
	return b
}

// Generation sets the content generation, or unsets it when given nil.
func (b *BlobInfoBuilder) Generation(generation *int64) *BlobInfoBuilder {
	b.generation = copyInt64Ptr(generation)
	return b
}

// Metageneration sets the metadata generation, or unsets it when given
// nil.
func (b *BlobInfoBuilder) Metageneration(metageneration *int64) *BlobInfoBuilder {
	b.metageneration = copyInt64Ptr(metageneration)
	return b
}

// ComponentCount sets the number of components for composite objects,
// or unsets it when given nil.
func (b *BlobInfoBuilder) ComponentCount(componentCount *int64) *BlobInfoBuilder {
	b.componentCount = copyInt64Ptr(componentCount)
	return b
}

// MediaLink sets the service-assigned download URI of the contents.
func (b *BlobInfoBuilder) MediaLink(mediaLink string) *BlobInfoBuilder {
	b.mediaLink = mediaLink
	return b
}

// Metadata sets the user-provided metadata, snapshotting the given map.
// nil unsets the field.
func (b *BlobInfoBuilder) Metadata(metadata map[string]string) *BlobInfoBuilder {
	b.metadata = copyMetadata(metadata)
	return b
}

// DeleteTime sets the deletion time of the object, or unsets it when
// given nil.
func (b *BlobInfoBuilder) DeleteTime(deleteTime *time.Time) *BlobInfoBuilder {
	b.deleteTime = copyTimePtr(deleteTime)
	return b
}

// UpdateTime sets the last metadata update time of the object, or
// unsets it when given nil.
func (b *BlobInfoBuilder) UpdateTime(updateTime *time.Time) *BlobInfoBuilder {
	b.updateTime = copyTimePtr(updateTime)
	return b
}

// Build returns an immutable BlobInfo holding the current builder
// state. Panics if the mandatory bucket or object name is missing; the
// setters already reject empty values, so this catches only builders
// constructed without them.
func (b *BlobInfoBuilder) Build() *BlobInfo {
	if b.bucket == "" {
		panic("BlobInfoBuilder.Build: bucket is required")
	}

	if b.name == "" {
		panic("BlobInfoBuilder.Build: name is required")
	}

	return &BlobInfo{
		bucket:             b.bucket,
		id:                 b.id,
		name:               b.name,
		selfLink:           b.selfLink,
		etag:               b.etag,
		cacheControl:       b.cacheControl,
		contentType:        b.contentType,
		contentEncoding:    b.contentEncoding,
		contentDisposition: b.contentDisposition,
		contentLanguage:    b.contentLanguage,
		md5:                b.md5,
		crc32c:             b.crc32c,
		acl:                copyACLRules(b.acl),
		owner:              copyEntityPtr(b.owner),
		size:               copyInt64Ptr(b.size),
		generation:         copyInt64Ptr(b.generation),
		metageneration:     copyInt64Ptr(b.metageneration),
		componentCount:     copyInt64Ptr(b.componentCount),
		mediaLink:          b.mediaLink,
		metadata:           copyMetadata(b.metadata),
		deleteTime:         copyTimePtr(b.deleteTime),
		updateTime:         copyTimePtr(b.updateTime),
	}
}

func (b *BlobInfo) Bucket() string {
	return b.bucket
}

func (b *BlobInfo) ID() string {
	return b.id
}

func (b *BlobInfo) Name() string {
	return b.name
}

func (b *BlobInfo) SelfLink() string {
	return b.selfLink
}

func (b *BlobInfo) Etag() string {
	return b.etag
}

// CacheControl returns the Cache-Control metadata. nil means unset or
// explicitly cleared; the two states are indistinguishable to readers.
func (b *BlobInfo) CacheControl() *string {
	return b.cacheControl.ptr()
}

// ContentType returns the Content-Type metadata, nil when unset or
// cleared.
func (b *BlobInfo) ContentType() *string {
	return b.contentType.ptr()
}

// ContentEncoding returns the Content-Encoding metadata, nil when unset
// or cleared.
func (b *BlobInfo) ContentEncoding() *string {
	return b.contentEncoding.ptr()
}

// ContentDisposition returns the Content-Disposition metadata, nil when
// unset or cleared.
func (b *BlobInfo) ContentDisposition() *string {
	return b.contentDisposition.ptr()
}

// ContentLanguage returns the Content-Language metadata, nil when unset
// or cleared.
func (b *BlobInfo) ContentLanguage() *string {
	return b.contentLanguage.ptr()
}

// MD5 returns the base64-encoded MD5 hash, nil when unset or cleared.
// Missing for composite objects.
func (b *BlobInfo) MD5() *string {
	return b.md5.ptr()
}

// CRC32C returns the base64-encoded CRC32C checksum, nil when unset or
// cleared.
func (b *BlobInfo) CRC32C() *string {
	return b.crc32c.ptr()
}

// ACL returns a copy of the access control list, or nil if unset.
func (b *BlobInfo) ACL() []ACLRule {
	return copyACLRules(b.acl)
}

// Owner returns the owning entity, or nil if unset.
func (b *BlobInfo) Owner() *Entity {
	return copyEntityPtr(b.owner)
}

// Size returns the content size in bytes, or nil if unset.
func (b *BlobInfo) Size() *int64 {
	return copyInt64Ptr(b.size)
}

// Generation returns the content generation, or nil if unset.
func (b *BlobInfo) Generation() *int64 {
	return copyInt64Ptr(b.generation)
}

// Metageneration returns the metadata generation, or nil if unset.
func (b *BlobInfo) Metageneration() *int64 {
	return copyInt64Ptr(b.metageneration)
}

// ComponentCount returns the component count, or nil if unset.
func (b *BlobInfo) ComponentCount() *int64 {
	return copyInt64Ptr(b.componentCount)
}

func (b *BlobInfo) MediaLink() string {
	return b.mediaLink
}

// Metadata returns a copy of the user-provided metadata, or nil if
// unset.
func (b *BlobInfo) Metadata() map[string]string {
	return copyMetadata(b.metadata)
}

// DeleteTime returns the deletion time, or nil if unset.
func (b *BlobInfo) DeleteTime() *time.Time {
	return copyTimePtr(b.deleteTime)
}

// UpdateTime returns the last metadata update time, or nil if unset.
func (b *BlobInfo) UpdateTime() *time.Time {
	return copyTimePtr(b.updateTime)
}

// ToBuilder returns a builder pre-populated with every field of this
// instance, preserving the internal unset/cleared/value state of the
// clearable fields exactly.
func (b *BlobInfo) ToBuilder() *BlobInfoBuilder {
	return &BlobInfoBuilder{
		bucket:             b.bucket,
		id:                 b.id,
		name:               b.name,
		selfLink:           b.selfLink,
		etag:               b.etag,
		cacheControl:       b.cacheControl,
		contentType:        b.contentType,
		contentEncoding:    b.contentEncoding,
		contentDisposition: b.contentDisposition,
		contentLanguage:    b.contentLanguage,
		md5:                b.md5,
		crc32c:             b.crc32c,
		acl:                copyACLRules(b.acl),
		owner:              copyEntityPtr(b.owner),
		size:               copyInt64Ptr(b.size),
		generation:         copyInt64Ptr(b.generation),
		metageneration:     copyInt64Ptr(b.metageneration),
		componentCount:     copyInt64Ptr(b.componentCount),
		mediaLink:          b.mediaLink,
		metadata:           copyMetadata(b.metadata),
		deleteTime:         copyTimePtr(b.deleteTime),
		updateTime:         copyTimePtr(b.updateTime),
	}
}

// Equal reports whether the two instances have identical raw
// projections. Note that this means an unset clearable field and one
// explicitly cleared to the same wire form compare by their projection,
// not by internal state.
func (b *BlobInfo) Equal(other *BlobInfo) bool {
	if other == nil {
		return b == nil
	}

	return reflect.DeepEqual(b.ToRaw(), other.ToRaw())
}

// String returns a debug summary of the identity and content metadata,
// not a dump of every field.
func (b *BlobInfo) String() string {
	return fmt.Sprintf(
		"gcs.BlobInfo{bucket: %q, name: %q, size: %s, contentType: %s, metadata: %v}",
		b.bucket,
		b.name,
		formatInt64Ptr(b.size),
		formatStringPtr(b.contentType.ptr()),
		b.metadata)
}

// ToRaw projects every field onto the raw representation. Explicitly
// cleared fields are recorded in NullFields, and optional integers in
// ForceSendFields, so that "cleared" and "explicit zero" survive
// serialization rather than being dropped as defaults.
func (b *BlobInfo) ToRaw() *storagev1.Object {
	raw := &storagev1.Object{
		Bucket:    b.bucket,
		Name:      b.name,
		Id:        b.id,
		SelfLink:  b.selfLink,
		Etag:      b.etag,
		MediaLink: b.mediaLink,
		Metadata:  copyMetadata(b.metadata),
	}

	b.cacheControl.applyRaw(&raw.CacheControl, "CacheControl", &raw.NullFields)
	b.contentType.applyRaw(&raw.ContentType, "ContentType", &raw.NullFields)
	b.contentEncoding.applyRaw(&raw.ContentEncoding, "ContentEncoding", &raw.NullFields)
	b.contentDisposition.applyRaw(&raw.ContentDisposition, "ContentDisposition", &raw.NullFields)
	b.contentLanguage.applyRaw(&raw.ContentLanguage, "ContentLanguage", &raw.NullFields)
	b.md5.applyRaw(&raw.Md5Hash, "Md5Hash", &raw.NullFields)
	b.crc32c.applyRaw(&raw.Crc32c, "Crc32c", &raw.NullFields)

	if b.size != nil {
		raw.Size = uint64(*b.size)
		raw.ForceSendFields = append(raw.ForceSendFields, "Size")
	}

	if b.generation != nil {
		raw.Generation = *b.generation
		raw.ForceSendFields = append(raw.ForceSendFields, "Generation")
	}

	if b.metageneration != nil {
		raw.Metageneration = *b.metageneration
		raw.ForceSendFields = append(raw.ForceSendFields, "Metageneration")
	}

	if b.componentCount != nil {
		raw.ComponentCount = *b.componentCount
		raw.ForceSendFields = append(raw.ForceSendFields, "ComponentCount")
	}

	if b.deleteTime != nil {
		raw.TimeDeleted = toRfc3339(*b.deleteTime)
	}

	if b.updateTime != nil {
		raw.Updated = toRfc3339(*b.updateTime)
	}

	if b.owner != nil {
		raw.Owner = &storagev1.ObjectOwner{Entity: b.owner.ToRaw()}
	}

	if b.acl != nil {
		raw.Acl = toRawObjectACLs(b.acl)
	}

	return raw
}

// FromRawObject is the inverse of BlobInfo.ToRaw. Fields absent from
// the raw object are left unset rather than cleared; fields named in
// NullFields come back as explicitly cleared. It returns an error if
// the mandatory bucket or object name is missing, or if a timestamp
// cannot be parsed.
func FromRawObject(raw *storagev1.Object) (b *BlobInfo, err error) {
	if raw.Bucket == "" {
		err = errors.New("raw object is missing a bucket name")
		return
	}

	if raw.Name == "" {
		err = errors.New("raw object is missing an object name")
		return
	}

	builder := NewBlobInfoBuilder(raw.Bucket, raw.Name).
		ID(raw.Id).
		SelfLink(raw.SelfLink).
		Etag(raw.Etag).
		MediaLink(raw.MediaLink)

	builder.cacheControl = rawNullable(raw.CacheControl, "CacheControl", raw.NullFields)
	builder.contentType = rawNullable(raw.ContentType, "ContentType", raw.NullFields)
	builder.contentEncoding = rawNullable(raw.ContentEncoding, "ContentEncoding", raw.NullFields)
	builder.contentDisposition = rawNullable(raw.ContentDisposition, "ContentDisposition", raw.NullFields)
	builder.contentLanguage = rawNullable(raw.ContentLanguage, "ContentLanguage", raw.NullFields)
	builder.md5 = rawNullable(raw.Md5Hash, "Md5Hash", raw.NullFields)
	builder.crc32c = rawNullable(raw.Crc32c, "Crc32c", raw.NullFields)

	if raw.Size != 0 || containsField(raw.ForceSendFields, "Size") {
		size := int64(raw.Size)
		builder.Size(&size)
	}

	if raw.Generation != 0 || containsField(raw.ForceSendFields, "Generation") {
		generation := raw.Generation
		builder.Generation(&generation)
	}

	if raw.Metageneration != 0 || containsField(raw.ForceSendFields, "Metageneration") {
		metageneration := raw.Metageneration
		builder.Metageneration(&metageneration)
	}

	if raw.ComponentCount != 0 || containsField(raw.ForceSendFields, "ComponentCount") {
		componentCount := raw.ComponentCount
		builder.ComponentCount(&componentCount)
	}

	if raw.TimeDeleted != "" {
		var t time.Time
		if t, err = fromRfc3339(raw.TimeDeleted); err != nil {
			err = fmt.Errorf("decoding TimeDeleted field: %v", err)
			return
		}

		builder.DeleteTime(&t)
	}

	if raw.Updated != "" {
		var t time.Time
		if t, err = fromRfc3339(raw.Updated); err != nil {
			err = fmt.Errorf("decoding Updated field: %v", err)
			return
		}

		builder.UpdateTime(&t)
	}

	if raw.Metadata != nil {
		builder.Metadata(raw.Metadata)
	}

	if raw.Owner != nil {
		owner := EntityFromRaw(raw.Owner.Entity)
		builder.Owner(&owner)
	}

	if raw.Acl != nil {
		builder.ACL(fromRawObjectACLs(raw.Acl))
	}

	b = builder.Build()
	return
}

// FromRawObjects converts a list of raw objects, as returned by a
// listing call, failing on the first object that does not convert.
func FromRawObjects(in []*storagev1.Object) (out []*BlobInfo, err error) {
	for _, raw := range in {
		var b *BlobInfo
		if b, err = FromRawObject(raw); err != nil {
			err = fmt.Errorf("FromRawObject: %v", err)
			return
		}

		out = append(out, b)
	}

	return
}

// ToRawObjects projects a list of instances onto their raw
// representations.
func ToRawObjects(in []*BlobInfo) (out []*storagev1.Object) {
	for _, b := range in {
		out = append(out, b.ToRaw())
	}

	return
}

func copyEntityPtr(in *Entity) (out *Entity) {
	if in != nil {
		v := *in
		out = &v
	}

	return
}

func formatInt64Ptr(p *int64) string {
	if p == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%d", *p)
}

func formatStringPtr(p *string) string {
	if p == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%q", *p)
}
