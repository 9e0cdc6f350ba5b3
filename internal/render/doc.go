// Package render turns ordered twin-prime middles into pictures.
//
// Each middle becomes one row. Rows are centred on the widest bit-string,
// so the symmetric palindromes stack into a symmetric motif:
//
//   - [ASCII]: every bit is two character cells, "██" for 1
//   - [Rug]: every bit is a 2x2 pixel block on a [Grid]
//   - [SVG]: vector export of a [Grid]
package render
