// Package xmldom builds a minimal read-only DOM from XML input and
// provides document-order element lookup over it.
//
// The DOM is intentionally small: elements, their text, and their children.
// Namespaces are not resolved; matching is by local element name, folded to
// lower case because the historical exports switched casing between
// vintages.
// Attributes are dropped because the Bundestag exports carry all data in
// element text. A parsed tree is immutable and safe for concurrent reads.
package xmldom
