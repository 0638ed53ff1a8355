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
	"net/http"
	"strings"
)

// HTTPMethod is an HTTP method name as it appears in a bucket's CORS
// configuration.
type HTTPMethod string

const (
	MethodGet     HTTPMethod = http.MethodGet
	MethodHead    HTTPMethod = http.MethodHead
	MethodPost    HTTPMethod = http.MethodPost
	MethodPut     HTTPMethod = http.MethodPut
	MethodDelete  HTTPMethod = http.MethodDelete
	MethodOptions HTTPMethod = http.MethodOptions
)

var httpMethods = map[string]HTTPMethod{
	"GET":     MethodGet,
	"HEAD":    MethodHead,
	"POST":    MethodPost,
	"PUT":     MethodPut,
	"DELETE":  MethodDelete,
	"OPTIONS": MethodOptions,
}

// ParseHTTPMethod converts a method name as it appears in the raw
// representation of a CORS rule into an HTTPMethod, matching
// case-insensitively. It returns an error for names that do not
// correspond to a known method.
func ParseHTTPMethod(name string) (m HTTPMethod, err error) {
	m, ok := httpMethods[strings.ToUpper(name)]
	if !ok {
		err = fmt.Errorf("unknown HTTP method: %q", name)
	}

	return
}
