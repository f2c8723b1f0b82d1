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


// Package match implements the business-compatibility matching engine.
//
// The Matcher type scores one member profile against another across four
// independent dimensions:
//   - Directional text overlap between what one profile sells and the
//     other needs (both directions, lexical token overlap only)
//   - Shared partnership sectors
//   - Shared interest tags
//
// The summed score is clamped to [0, 100] and classified into an ordinal
// tier (NONE, POTENTIAL, COMMON, STRONG). A Ranking prepared from a
// subject profile scores an entire candidate pool and returns the
// matches ordered by score.
//
// Every function in this package is pure: no I/O, no shared mutable
// state, no failures for the expected input domain. A Matcher may be
// used concurrently from any number of goroutines.
package match
