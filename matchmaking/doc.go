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


// Package matchmaking ranks stored profiles against a subject profile.
//
// The Matchmaker type pages candidate profiles out of a repository,
// scores them concurrently with a worker pool, and returns the matches
// ordered by compatibility score. Scoring itself is delegated to the
// match package; this package only orchestrates storage access and
// concurrency.
package matchmaking
