// Package eval holds the constant table and evaluates constant
// expressions appearing after the script marker in templates.
//
// Expressions are evaluated with github.com/expr-lang/expr after `!name`
// constant references are substituted.  Operator-free values pass through
// as literals so plain CSS values like `sans-serif` or `5px` need no
// quoting.
package eval
