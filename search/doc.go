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


// Package search orchestrates a search call end to end.
//
// The Engine selects a strategy from the source kind and option flags
// (semantic > pattern > fuzzy > exact), wires it to the provider for that
// source, races the execution against an optional timeout, and fans
// multi-term searches out to parallel invocations joined into a per-term
// map. A failure in any branch cancels the rest and propagates; no partial
// results are ever returned.
package search
