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
	"strings"

	storagev1 "google.golang.org/api/storage/v1"
)

// Role is the level of access granted by an ACL rule.
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleReader Role = "READER"
	RoleWriter Role = "WRITER"
)

// EntityType classifies the grantee named by an Entity.
type EntityType string

const (
	EntityUser    EntityType = "user"
	EntityGroup   EntityType = "group"
	EntityDomain  EntityType = "domain"
	EntityProject EntityType = "project"

	// EntityUnknown covers the predefined grantees (allUsers,
	// allAuthenticatedUsers) and any entity string this package does not
	// recognize. Unrecognized strings round-trip verbatim.
	EntityUnknown EntityType = "unknown"
)

// Entity identifies the grantee of an ACL rule, in the grammar used by
// the storage service: "user-<id>", "group-<id>", "domain-<domain>",
// "project-<team>-<id>", or one of the predefined grantees. Entity is a
// comparable value type; two entities are equal iff their wire strings
// are equal.
type Entity struct {
	value string
}

// UserEntity returns the entity granting access to a single user,
// identified by email address or numeric id.
func UserEntity(id string) Entity {
	return Entity{value: "user-" + id}
}

// GroupEntity returns the entity granting access to a group, identified
// by email address or numeric id.
func GroupEntity(id string) Entity {
	return Entity{value: "group-" + id}
}

// DomainEntity returns the entity granting access to everybody in a
// Google Apps domain.
func DomainEntity(domain string) Entity {
	return Entity{value: "domain-" + domain}
}

// ProjectEntity returns the entity granting access to a project team
// ("owners", "editors", or "viewers") of the given project.
func ProjectEntity(team string, projectID string) Entity {
	return Entity{value: "project-" + team + "-" + projectID}
}

// AllUsers returns the predefined entity granting access to anybody,
// authenticated or not.
func AllUsers() Entity {
	return Entity{value: "allUsers"}
}

// AllAuthenticatedUsers returns the predefined entity granting access to
// anybody authenticated with a Google account.
func AllAuthenticatedUsers() Entity {
	return Entity{value: "allAuthenticatedUsers"}
}

// EntityFromRaw wraps an entity string as it appears in the raw
// representation, without validation, so unknown grantees survive a
// round trip.
func EntityFromRaw(s string) Entity {
	return Entity{value: s}
}

// Type classifies the entity by its wire prefix.
func (e Entity) Type() EntityType {
	switch {
	case strings.HasPrefix(e.value, "user-"):
		return EntityUser

	case strings.HasPrefix(e.value, "group-"):
		return EntityGroup

	case strings.HasPrefix(e.value, "domain-"):
		return EntityDomain

	case strings.HasPrefix(e.value, "project-"):
		return EntityProject
	}

	return EntityUnknown
}

// ToRaw returns the wire string for the entity.
func (e Entity) ToRaw() string {
	return e.value
}

func (e Entity) String() string {
	return e.value
}

// ACLRule expresses a single permission grant on a bucket or an object.
type ACLRule struct {
	Entity Entity
	Role   Role
}

func (r ACLRule) toRawObjectACL() *storagev1.ObjectAccessControl {
	return &storagev1.ObjectAccessControl{
		Entity: r.Entity.ToRaw(),
		Role:   string(r.Role),
	}
}

func (r ACLRule) toRawBucketACL() *storagev1.BucketAccessControl {
	return &storagev1.BucketAccessControl{
		Entity: r.Entity.ToRaw(),
		Role:   string(r.Role),
	}
}

func fromRawObjectACL(in *storagev1.ObjectAccessControl) ACLRule {
	return ACLRule{
		Entity: EntityFromRaw(in.Entity),
		Role:   Role(in.Role),
	}
}

func fromRawBucketACL(in *storagev1.BucketAccessControl) ACLRule {
	return ACLRule{
		Entity: EntityFromRaw(in.Entity),
		Role:   Role(in.Role),
	}
}

func toRawObjectACLs(in []ACLRule) (out []*storagev1.ObjectAccessControl) {
	if in == nil {
		return
	}

	out = make([]*storagev1.ObjectAccessControl, len(in))
	for i, r := range in {
		out[i] = r.toRawObjectACL()
	}

	return
}

func fromRawObjectACLs(in []*storagev1.ObjectAccessControl) (out []ACLRule) {
	if in == nil {
		return
	}

	out = make([]ACLRule, len(in))
	for i, raw := range in {
		out[i] = fromRawObjectACL(raw)
	}

	return
}

func toRawBucketACLs(in []ACLRule) (out []*storagev1.BucketAccessControl) {
	if in == nil {
		return
	}

	out = make([]*storagev1.BucketAccessControl, len(in))
	for i, r := range in {
		out[i] = r.toRawBucketACL()
	}

	return
}

func fromRawBucketACLs(in []*storagev1.BucketAccessControl) (out []ACLRule) {
	if in == nil {
		return
	}

	out = make([]ACLRule, len(in))
	for i, raw := range in {
		out[i] = fromRawBucketACL(raw)
	}

	return
}

func copyACLRules(in []ACLRule) (out []ACLRule) {
	if in == nil {
		return
	}

	out = make([]ACLRule, len(in))
	copy(out, in)

	return
}
