// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package html defines the markup vocabularies understood by the document
// reader: element names, attribute names, and alignment values.
//
// Each vocabulary is a distinct enum type with its own lookup function.
// Lookups ignore ASCII case, never allocate, and report an unrecognized name
// with the vocabulary's NotFound value, so unknown markup can be skipped with
// a single comparison.
package html

//go:generate go run github.com/bufbuild/tagtable/internal/vocabgen html.go.yaml
