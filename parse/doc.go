// Package parse assembles tokenized template lines into a document tree.
//
// [Parse] runs the whole pipeline: tokenize, nest, classify and assemble,
// resolving constants, mixins and imports along the way.  The resulting
// root node is handed to package render for CSS output.
package parse
