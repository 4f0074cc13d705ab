// Package navigate steps through a stack of images or line plots with the
// keyboard. Each navigator is an explicit state machine: a Cursor over the
// stack, advanced by key names delivered through figure.KeyHandler.
//
// Bindings:
//   - right: next element
//   - left: previous element
//   - up: 100 elements forward
//   - down: 100 elements back
//
// The cursor wraps in both directions, so navigation never ends.
package navigate
