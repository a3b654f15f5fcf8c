// Package parser translates sketch notation into a sketch.File model.
//
// Sketch notation is line oriented: each physical line is one declaration,
// identified by a short prefix token. Container openers are "ns", "c", "e"
// and "if"; member lines start with a type prefix ("i", "s", "f", "b", their
// underscore-private forms, or a custom type token) and declare a method when
// they carry a parenthesized parameter list, a property otherwise.
//
// Each line passes through the same pipeline:
//
//	trim -> expand aliases -> classify by prefix -> attach to open container
//
// The fold is strictly sequential and the only carried state is the growing
// File plus a pointer to the container that receives the next member.
// Extraction failures degrade to defaults ("" for names, "TODO" for
// descriptions, "var" for types); structural failures abort the parse with
// the offending line number and content.
package parser
