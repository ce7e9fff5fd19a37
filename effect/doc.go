// Package effect models presentation instructions (write text, push a
// style, pop a style) and executes them against a terminal.
//
// Producers expose effects through [Reader], a pull interface returning
// io.EOF at the end. An [Executor] consumes them in order, keeping a stack
// of styles so that a default push inherits whatever style encloses it.
package effect
