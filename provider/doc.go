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


// Package provider turns search scopes into searchable items.
//
// The three providers only differ in what becomes the item payload: the base
// file name, the decoded file body, or the flattened text of a remote keyed
// record. Providers are the only part of the library that touches the
// outside world; matching strategies consume their output without further
// I/O.
package provider
