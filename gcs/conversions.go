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

import "time"

func fromRfc3339(s string) (t time.Time, err error) {
	if s != "" {
		t, err = time.Parse(time.RFC3339, s)
	}

	return
}

func toRfc3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// Does the ForceSendFields or NullFields list of a raw struct mention the
// given field name?
func containsField(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}

	return false
}

// copyStrings snapshots a slice, preserving the distinction between nil
// and empty.
func copyStrings(in []string) (out []string) {
	if in == nil {
		return
	}

	out = make([]string, len(in))
	copy(out, in)

	return
}

func copyMetadata(in map[string]string) (out map[string]string) {
	if in == nil {
		return
	}

	out = make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}

	return
}

func copyInt64Ptr(in *int64) (out *int64) {
	if in != nil {
		v := *in
		out = &v
	}

	return
}

func copyTimePtr(in *time.Time) (out *time.Time) {
	if in != nil {
		v := *in
		out = &v
	}

	return
}
