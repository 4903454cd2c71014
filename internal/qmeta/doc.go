// Package qmeta parses the free-text metadata strings attached to archived
// questions into a structured record of author, editor, and category levels.
//
// Question sets accumulated several mutually incompatible metadata
// conventions over the years. Each set's index declares which convention its
// packets use as a format tag, and Parse dispatches on that tag with one
// explicit case per convention. A string that fails to match its declared
// convention degrades to an all-absent record rather than an error; an
// uncategorized question is a valid outcome.
//
// Fields distinguish "absent" from "parsed as empty": a Field with Set false
// was never produced by the parser, while Set true with an empty Value means
// the input genuinely contained an empty span.
package qmeta
