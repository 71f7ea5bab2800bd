// Package typekey interns Go types and (element, key, value) type triples into
// small comparable ids.
//
// Generic instantiations cannot be used as keys of a runtime table, so every
// distinct instantiation is mapped to a Token once and then compared by value.
// The registry is process wide and safe for concurrent use.
package typekey
