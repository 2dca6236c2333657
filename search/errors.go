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


package search

import "errors"

var (
	// ErrUnsupportedSourceKind is returned when a search names a source
	// kind the engine does not recognize.
	ErrUnsupportedSourceKind = errors.New("unsupported source kind")

	// ErrCollectionStoreRequired is returned when a database search runs
	// on an engine built without a collection store.
	ErrCollectionStoreRequired = errors.New("collection store required for database search")
)
