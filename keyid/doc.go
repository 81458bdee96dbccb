// Package keyid implements a compact, polymorphic identifier value type used
// as the primary key / row-hash / column-hash representation in a data
// management engine.
//
// An Identifier is always two 64-bit words plus a small kind tag, yet it
// losslessly represents a variety of externally supplied textual formats:
//
//	Kind         Example                                 Storage
//	None         ""                                      -
//	Null         "null"                                  -
//	UUID         "0828398c-5965-11e0-84c8-0026b937c8e1"  128 bits packed
//	UUIDUpper    "0828398C-5965-11E0-84C8-0026B937C8E1"  128 bits packed
//	Base64       "+++0Rk1K99Oe/3aw"                      96 bits packed
//	Goog128      "CAESEAYra3NIxLT9C8twKrzqaA"            126 bits packed
//	BigDec       "7394206091425759590"                   128-bit unsigned
//	ShortText    "hello"                                 up to 16 bytes inline
//	Text         anything else                           owned byte buffer
//
// Parse is total: input that fits no packed representation is stored
// verbatim as Text, so construction never fails and String always
// reproduces the exact original text.
//
// Identifiers are immutable after construction, freely copyable, and safe
// to share across goroutines without synchronization. They carry a total
// order (Compare), a hash consistent with equality (Hash), and a JSON
// encoding whose shape depends on the numeric width of BigDec values.
package keyid
