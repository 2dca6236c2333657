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


// Package ai defines the embedding capability used by semantic search.
//
// The core treats embedding purely as (text, credential) -> vector. The
// Embedder interface captures the per-text call; an EmbedderFactory binds a
// credential to a concrete client. Production implementations live in the
// openai subpackage (OpenAI-compatible HTTP APIs); deterministic test
// doubles live in the mock subpackage.
package ai
