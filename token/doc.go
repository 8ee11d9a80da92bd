// Package token turns indented template text into logical lines.
//
// [Tokenize] splits raw text into a flat, depth-annotated line sequence.
//
// [Nest] provides tree structure discovery based on indentation, grouping
// the flat sequence into parent/child runs so later passes are context
// free.
package token
