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


// Package strategy implements the four matching algorithms.
//
// Every strategy consumes items plus a term and produces scored results:
//   - Exact: equality (1.0) or substring containment (0.7)
//   - Fuzzy: Levenshtein edit distance mapped to [0, 1]
//   - Pattern: occurrence counting with a context snippet around the match
//   - Semantic: cosine similarity of embedding vectors
//
// Strategies are stateless, safe for concurrent use, and perform no I/O
// except the semantic strategy's embedding calls. Result lists are sorted by
// relevance descending with a stable sort and truncated to MaxResults.
package strategy
