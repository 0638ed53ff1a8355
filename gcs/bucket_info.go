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

// BucketInfo is an immutable record of the metadata of a bucket.
// Construct instances with NewBucketInfo or NewBucketInfoBuilder.
type BucketInfo struct {
	name         string
	id           string
	etag         string
	selfLink     string
	location     string
	storageClass string

	metageneration *int64
	created        *time.Time

	cors       []Cors
	acl        []ACLRule
	defaultACL []ACLRule
	owner      *Entity
}

// BucketInfoBuilder accumulates fields for a BucketInfo. Builders are
// not safe for concurrent use.
type BucketInfoBuilder struct {
	name         string
	id           string
	etag         string
	selfLink     string
	location     string
	storageClass string

	metageneration *int64
	created        *time.Time

	cors       []Cors
	acl        []ACLRule
	defaultACL []ACLRule
	owner      *Entity
}

// NewBucketInfo returns a minimal instance carrying only the mandatory
// bucket name. Panics if the name is empty.
func NewBucketInfo(name string) *BucketInfo {
	return NewBucketInfoBuilder(name).Build()
}

// NewBucketInfoBuilder returns a builder pre-populated with the
// mandatory bucket name. Panics if the name is empty.
func NewBucketInfoBuilder(name string) *BucketInfoBuilder {
	return new(BucketInfoBuilder).Name(name)
}

// Name sets the bucket name. Panics if the name is empty.
func (b *BucketInfoBuilder) Name(name string) *BucketInfoBuilder {
	if name == "" {
		panic("BucketInfoBuilder.Name: empty bucket name")
	}

	b.name = name
	return b
}

// ID sets the service-assigned id of the bucket.
func (b *BucketInfoBuilder) ID(id string) *BucketInfoBuilder {
	b.id = id
	return b
}

// Etag sets the HTTP entity tag of the bucket.
func (b *BucketInfoBuilder) Etag(etag string) *BucketInfoBuilder {
	b.etag = etag
	return b
}

// SelfLink sets the service-assigned URI of the bucket resource.
func (b *BucketInfoBuilder) SelfLink(selfLink string) *BucketInfoBuilder {
	b.selfLink = selfLink
	return b
}

// Location sets the location the bucket's contents are stored in.
func (b *BucketInfoBuilder) Location(location string) *BucketInfoBuilder {
	b.location = location
	return b
}

// StorageClass sets the default storage class of the bucket's objects.
func (b *BucketInfoBuilder) StorageClass(storageClass string) *BucketInfoBuilder {
	b.storageClass = storageClass
	return b
}

// Metageneration sets the metadata generation, or unsets it when given
// nil.
func (b *BucketInfoBuilder) Metageneration(metageneration *int64) *BucketInfoBuilder {
	b.metageneration = copyInt64Ptr(metageneration)
	return b
}

// Created sets the creation time of the bucket, or unsets it when given
// nil.
func (b *BucketInfoBuilder) Created(created *time.Time) *BucketInfoBuilder {
	b.created = copyTimePtr(created)
	return b
}

// Cors sets the bucket's CORS rules, snapshotting the given slice. nil
// unsets the field.
func (b *BucketInfoBuilder) Cors(cors []Cors) *BucketInfoBuilder {
	b.cors = copyCors(cors)
	return b
}

// ACL sets the bucket's access control list, snapshotting the given
// slice. nil unsets the field.
func (b *BucketInfoBuilder) ACL(acl []ACLRule) *BucketInfoBuilder {
	b.acl = copyACLRules(acl)
	return b
}

// DefaultACL sets the access control list applied to newly created
// objects, snapshotting the given slice. nil unsets the field.
func (b *BucketInfoBuilder) DefaultACL(defaultACL []ACLRule) *BucketInfoBuilder {
	b.defaultACL = copyACLRules(defaultACL)
	return b
}

// Owner sets the entity owning the bucket, or unsets it when given nil.
func (b *BucketInfoBuilder) Owner(owner *Entity) *BucketInfoBuilder {
	b.owner = copyEntityPtr(owner)
	return b
}

// Build returns an immutable BucketInfo holding the current builder
// state. Panics if the mandatory bucket name is missing.
func (b *BucketInfoBuilder) Build() *BucketInfo {
	if b.name == "" {
		panic("BucketInfoBuilder.Build: name is required")
	}

	return &BucketInfo{
		name:           b.name,
		id:             b.id,
		etag:           b.etag,
		selfLink:       b.selfLink,
		location:       b.location,
		storageClass:   b.storageClass,
		metageneration: copyInt64Ptr(b.metageneration),
		created:        copyTimePtr(b.created),
		cors:           copyCors(b.cors),
		acl:            copyACLRules(b.acl),
		defaultACL:     copyACLRules(b.defaultACL),
		owner:          copyEntityPtr(b.owner),
	}
}

func (b *BucketInfo) Name() string {
	return b.name
}

func (b *BucketInfo) ID() string {
	return b.id
}

func (b *BucketInfo) Etag() string {
	return b.etag
}

func (b *BucketInfo) SelfLink() string {
	return b.selfLink
}

func (b *BucketInfo) Location() string {
	return b.location
}

func (b *BucketInfo) StorageClass() string {
	return b.storageClass
}

// Metageneration returns the metadata generation, or nil if unset.
func (b *BucketInfo) Metageneration() *int64 {
	return copyInt64Ptr(b.metageneration)
}

// Created returns the creation time, or nil if unset.
func (b *BucketInfo) Created() *time.Time {
	return copyTimePtr(b.created)
}

// Cors returns a copy of the CORS rules, or nil if unset.
func (b *BucketInfo) Cors() []Cors {
	return copyCors(b.cors)
}

// ACL returns a copy of the access control list, or nil if unset.
func (b *BucketInfo) ACL() []ACLRule {
	return copyACLRules(b.acl)
}

// DefaultACL returns a copy of the default object ACL, or nil if unset.
func (b *BucketInfo) DefaultACL() []ACLRule {
	return copyACLRules(b.defaultACL)
}

// Owner returns the owning entity, or nil if unset.
func (b *BucketInfo) Owner() *Entity {
	return copyEntityPtr(b.owner)
}

// NewBlobBuilder returns a BlobInfoBuilder for an object in this
// bucket. Panics if the object name is empty.
func (b *BucketInfo) NewBlobBuilder(name string) *BlobInfoBuilder {
	return NewBlobInfoBuilder(b.name, name)
}

// ToBuilder returns a builder pre-populated with every field of this
// instance.
func (b *BucketInfo) ToBuilder() *BucketInfoBuilder {
	return &BucketInfoBuilder{
		name:           b.name,
		id:             b.id,
		etag:           b.etag,
		selfLink:       b.selfLink,
		location:       b.location,
		storageClass:   b.storageClass,
		metageneration: copyInt64Ptr(b.metageneration),
		created:        copyTimePtr(b.created),
		cors:           copyCors(b.cors),
		acl:            copyACLRules(b.acl),
		defaultACL:     copyACLRules(b.defaultACL),
		owner:          copyEntityPtr(b.owner),
	}
}

// Equal reports whether the two instances have identical raw
// projections.
func (b *BucketInfo) Equal(other *BucketInfo) bool {
	if other == nil {
		return b == nil
	}

	return reflect.DeepEqual(b.ToRaw(), other.ToRaw())
}

func (b *BucketInfo) String() string {
	return fmt.Sprintf(
		"gcs.BucketInfo{name: %q, location: %q, storageClass: %q}",
		b.name,
		b.location,
		b.storageClass)
}

// ToRaw projects every field onto the raw representation.
func (b *BucketInfo) ToRaw() *storagev1.Bucket {
	raw := &storagev1.Bucket{
		Name:         b.name,
		Id:           b.id,
		Etag:         b.etag,
		SelfLink:     b.selfLink,
		Location:     b.location,
		StorageClass: b.storageClass,
	}

	if b.metageneration != nil {
		raw.Metageneration = *b.metageneration
		raw.ForceSendFields = append(raw.ForceSendFields, "Metageneration")
	}

	if b.created != nil {
		raw.TimeCreated = toRfc3339(*b.created)
	}

	if b.cors != nil {
		raw.Cors = toRawCorsList(b.cors)
	}

	if b.acl != nil {
		raw.Acl = toRawBucketACLs(b.acl)
	}

	if b.defaultACL != nil {
		raw.DefaultObjectAcl = toRawObjectACLs(b.defaultACL)
	}

	if b.owner != nil {
		raw.Owner = &storagev1.BucketOwner{Entity: b.owner.ToRaw()}
	}

	return raw
}

// FromRawBucket is the inverse of BucketInfo.ToRaw. It returns an error
// if the mandatory bucket name is missing, if the creation time cannot
// be parsed, or if a CORS rule names an unknown HTTP method.
func FromRawBucket(raw *storagev1.Bucket) (b *BucketInfo, err error) {
	if raw.Name == "" {
		err = errors.New("raw bucket is missing a name")
		return
	}

	builder := NewBucketInfoBuilder(raw.Name).
		ID(raw.Id).
		Etag(raw.Etag).
		SelfLink(raw.SelfLink).
		Location(raw.Location).
		StorageClass(raw.StorageClass)

	if raw.Metageneration != 0 || containsField(raw.ForceSendFields, "Metageneration") {
		metageneration := raw.Metageneration
		builder.Metageneration(&metageneration)
	}

	if raw.TimeCreated != "" {
		var t time.Time
		if t, err = fromRfc3339(raw.TimeCreated); err != nil {
			err = fmt.Errorf("decoding TimeCreated field: %v", err)
			return
		}

		builder.Created(&t)
	}

	if raw.Cors != nil {
		var cors []Cors
		if cors, err = fromRawCorsList(raw.Cors); err != nil {
			err = fmt.Errorf("decoding Cors field: %v", err)
			return
		}

		builder.Cors(cors)
	}

	if raw.Acl != nil {
		builder.ACL(fromRawBucketACLs(raw.Acl))
	}

	if raw.DefaultObjectAcl != nil {
		builder.DefaultACL(fromRawObjectACLs(raw.DefaultObjectAcl))
	}

	if raw.Owner != nil {
		owner := EntityFromRaw(raw.Owner.Entity)
		builder.Owner(&owner)
	}

	b = builder.Build()
	return
}
