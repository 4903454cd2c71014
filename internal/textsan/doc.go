// Package textsan cleans the raw question and answer text found in archival
// packet files.
//
// Packet archives carry HTML fragments from the original publishing tools:
// bold/italic tags around answer lines, non-breaking spaces, and escaped
// ampersands. RemoveTags strips those artifacts, and ShortenAnswerline
// reduces a full answer line (including bracketed alternate-answer
// annotations and parenthesized asides) to its primary form for slug
// derivation.
//
// Every function in this package is pure and idempotent on the
// single-encoded text the archives contain: applying it to already-clean
// text is a no-op. Double-encoded entities decode one layer per pass.
package textsan
