// Copyright 2015 Workiva, LLC
// Copyright 2025 The intmap authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//  http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package intmap implements a persistent, sparse, integer-keyed trie with
// an associated transient (single-owner, ephemeral-mutable) variant.
//
// A Map[V] is immutable: Add and Remove return a new Map[V], sharing
// untouched subtrees with the receiver. A TMap[V] is pinned to a single
// Owner: a bounded sequence of in-place Add calls builds up a trie which
// is then sealed back into a Map[V] in O(1) by handing ownership of its
// nodes back to the persistent world.
//
// Internally both variants are a bitwise-partitioned trie with branching
// factor 32 (5 bits per level). A Map records a window (min, shift)
// describing the integer range it can address without growing a level,
// which lets dense clusters of keys - the common case for compiler
// dataflow facts indexed by program point - avoid allocating unnecessary
// upper trie levels.
//
// Keys are nonnegative ints; there is no hashing involved and no support
// for negative keys. Values are opaque: the trie uses a caller-supplied
// "meet" function to resolve conflicting values at a key, falling back to
// a sentinel ErrConflictingValues error when two different values collide
// and no meet function was given.
package intmap
