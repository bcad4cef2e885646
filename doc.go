/*
 * MinIO Cloud Storage, (C) 2020 MinIO, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package bitmix implements a zero-allocation, in-place transcoder between
// textual JSON and a compact binary Type-Length-Value encoding.
//
// Parse rewrites a mutable JSON byte buffer into a TLV byte stream of equal
// length: every structural byte (quotes, brackets, commas, colons,
// whitespace, escape sequences) is either folded into a type/length byte or
// overwritten with 0x00 padding. No separate output buffer is ever
// allocated; the returned Value and its iterators read directly out of the
// same bytes the caller handed in.
package bitmix
