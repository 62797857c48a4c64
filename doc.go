// Package clipslice provides Python-style range access over slices, where
// negative indices count from the back of a sequence and out-of-range
// endpoints are clamped to the sequence's bounds instead of being rejected.
//
// # clip-slice
//
// This package is a manual, idiomatic Go port of the [clip-slice] Rust crate.
// The crate's per-range-type trait implementations are expressed here as a
// single [Range] value covering the four supported range shapes, constructed
// with [Bounded], [From], [To], and [Full].
//
// # Clipping
//
// Every endpoint of a range is normalized by the same rule, exposed directly
// as [Clip]: a non-negative position indexes from the front and is clamped to
// the sequence length; a negative position -k means "length − k", clamped to
// zero when k exceeds the length. Clipping is total — any endpoint, however
// far out of range, produces a valid bound.
//
// The one exception to the forgiving behavior is a bounded range whose
// clipped start exceeds its clipped end, such as Bounded(4, 2) on a sequence
// of six elements. The clipped bounds are never reordered or truncated to an
// empty result; like Go's own s[a:b] with a > b, this is a programming error
// and panics.
//
// # Slices, views, and vectors
//
// [By] selects a sub-slice by range. Its result aliases the input's backing
// array, so it doubles as mutable access: writes through the returned slice
// are visible in the original.
//
// [View] is a read-only counterpart. It borrows a slice without copying and
// permits element reads, iteration, and further sub-ranging, but no writes.
//
// [Vector] is a growable push/pop sequence whose By and ViewBy methods clip
// against the vector's length at call time, so ranges taken after a resize
// see the new length.
//
// [clip-slice]: https://crates.io/crates/clip-slice
package clipslice
