// Package highlight renders source code into HTML.
// It uses the Chroma library to do this work.
//
// Output uses inline 'style' attributes only,
// so it can be embedded into a page without a style sheet,
// or rewritten for viewers that don't support CSS.
package highlight
