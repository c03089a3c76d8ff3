// Package wxhtml rewrites highlighted HTML for the wiki's
// embedded HTML viewer.
//
// The viewer doesn't understand CSS.
// Highlighters express colors and font styles with
// <span style="..."> elements,
// so the [Rewriter] replaces those spans with
// <font color="...">, <b>, and <i> tags,
// and passes everything else through.
package wxhtml
