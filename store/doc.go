// Copyright 2025 Poiesic Systems
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


// Package store defines the remote keyed-record capability backing database
// searches.
//
// A CollectionStore turns a scope locator into a keyed structure of
// documents. The redis subpackage reads collections from a Redis hash; the
// badger subpackage serves snapshots from an embedded BadgerDB, including an
// in-memory mode for tests.
package store
