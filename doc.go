// Package marc21 implements the ISO 2709 binary container shared by the
// MARC 21 family of bibliographic-metadata formats (authority,
// bibliographic, classification, community information, holdings).
//
// A record is a fixed 24-byte leader, a directory of (tag, length, offset)
// entries locating each variable field, and the fields themselves,
// delimited by reserved terminator bytes. This package decodes one record
// buffer into a structured [Record] and encodes a [Record] back to bytes,
// recomputing the leader and directory from the current field contents.
// Which semantic format sits on top is a consumer concern: field tags,
// indicators and subfield values pass through as opaque bytes.
//
// Decoding is deliberately tolerant of damage below the container level: a
// field that cannot be parsed is preserved as a [MalformedField] in its
// original position and noted in the record's [Report], while leader and
// directory corruption (which makes the record unaddressable) fails the
// whole decode.
//
// All operations are pure functions of their input buffer. Records never
// alias the buffers they were decoded from, so independent records can be
// decoded or encoded concurrently without coordination.
//
// Subfield values are bytes, not text. Callers that need text pick a named
// decoder from the charset subpackage ("utf8", "none", or a registered
// "marc8") and apply it outside the codec.
package marc21
