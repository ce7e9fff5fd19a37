// Package highlight turns a tag stream into styled output effects.
//
// A [Highlighter] pulls tags one at a time, tracks the types of the nodes
// currently open, and asks [Classify] which style each newly opened node
// gets. Each open node pushes exactly one style and each close node pops
// it; literals and intrinsic values are written in whatever style is
// active.
package highlight
