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

	. "github.com/jacobsa/ogletest"
)

func TestACL(t *testing.T) { RunTests(t) }

////////////////////////////////////////////////////////////////////////
// Entity
////////////////////////////////////////////////////////////////////////

type EntityTest struct {
}

func init() { RegisterTestSuite(&EntityTest{}) }

func (t *EntityTest) WireGrammar() {
	ExpectEq("user-jacobsa@google.com", gcs.UserEntity("jacobsa@google.com").ToRaw())
	ExpectEq("group-cache-eaters", gcs.GroupEntity("cache-eaters").ToRaw())
	ExpectEq("domain-example.com", gcs.DomainEntity("example.com").ToRaw())
	ExpectEq("project-owners-123456", gcs.ProjectEntity("owners", "123456").ToRaw())
	ExpectEq("allUsers", gcs.AllUsers().ToRaw())
	ExpectEq("allAuthenticatedUsers", gcs.AllAuthenticatedUsers().ToRaw())
}

func (t *EntityTest) Types() {
	ExpectEq(gcs.EntityUser, gcs.UserEntity("jacobsa@google.com").Type())
	ExpectEq(gcs.EntityGroup, gcs.GroupEntity("cache-eaters").Type())
	ExpectEq(gcs.EntityDomain, gcs.DomainEntity("example.com").Type())
	ExpectEq(gcs.EntityProject, gcs.ProjectEntity("owners", "123456").Type())
	ExpectEq(gcs.EntityUnknown, gcs.AllUsers().Type())
	ExpectEq(gcs.EntityUnknown, gcs.EntityFromRaw("something-else").Type())
}

func (t *EntityTest) EqualityByWireString() {
	ExpectTrue(gcs.UserEntity("a@b.com") == gcs.EntityFromRaw("user-a@b.com"))
	ExpectFalse(gcs.UserEntity("a@b.com") == gcs.GroupEntity("a@b.com"))
}

func (t *EntityTest) UnknownEntityRoundTrips() {
	const weird = "somethingNewFromTheService"

	e := gcs.EntityFromRaw(weird)
	ExpectEq(weird, e.ToRaw())
	ExpectEq(weird, e.String())
}

////////////////////////////////////////////////////////////////////////
// ACL rules on resources
////////////////////////////////////////////////////////////////////////

type ACLRuleTest struct {
}

func init() { RegisterTestSuite(&ACLRuleTest{}) }

func (t *ACLRuleTest) ObjectACLProjection() {
	b := gcs.NewBlobInfoBuilder("some-bucket", "taco").
		ACL([]gcs.ACLRule{
			{Entity: gcs.AllUsers(), Role: gcs.RoleReader},
			{Entity: gcs.DomainEntity("example.com"), Role: gcs.RoleWriter},
		}).
		Build()

	raw := b.ToRaw()
	AssertEq(2, len(raw.Acl))
	ExpectEq("allUsers", raw.Acl[0].Entity)
	ExpectEq("READER", raw.Acl[0].Role)
	ExpectEq("domain-example.com", raw.Acl[1].Entity)
	ExpectEq("WRITER", raw.Acl[1].Role)
}

func (t *ACLRuleTest) BucketACLProjection() {
	b := gcs.NewBucketInfoBuilder("some-bucket").
		ACL([]gcs.ACLRule{
			{Entity: gcs.ProjectEntity("owners", "123456"), Role: gcs.RoleOwner},
		}).
		DefaultACL([]gcs.ACLRule{
			{Entity: gcs.AllAuthenticatedUsers(), Role: gcs.RoleReader},
		}).
		Build()

	raw := b.ToRaw()

	AssertEq(1, len(raw.Acl))
	ExpectEq("project-owners-123456", raw.Acl[0].Entity)
	ExpectEq("OWNER", raw.Acl[0].Role)

	AssertEq(1, len(raw.DefaultObjectAcl))
	ExpectEq("allAuthenticatedUsers", raw.DefaultObjectAcl[0].Entity)
	ExpectEq("READER", raw.DefaultObjectAcl[0].Role)
}

func (t *ACLRuleTest) UnknownRoleRoundTrips() {
	b, err := gcs.FromRawObject(&storagev1.Object{
		Bucket: "some-bucket",
		Name:   "taco",
		Acl: []*storagev1.ObjectAccessControl{
			{Entity: "allUsers", Role: "SOMETHING_NEW"},
		},
	})

	AssertEq(nil, err)

	acl := b.ACL()
	AssertEq(1, len(acl))
	ExpectEq("SOMETHING_NEW", string(acl[0].Role))
	ExpectEq("SOMETHING_NEW", b.ToRaw().Acl[0].Role)
}
