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

// Package gcs contains immutable records for Google Cloud Storage
// resources (object metadata, bucket metadata, CORS rules, ACLs), along
// with conversions to and from the raw representations defined by
// google.golang.org/api/storage/v1. It performs no I/O; the HTTP client
// that exchanges the raw representations with the service lives
// elsewhere.
package gcs
