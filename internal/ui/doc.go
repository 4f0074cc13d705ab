// Package ui is the interactive terminal display backend, built on Bubble Tea.
//
// Core pieces:
//   - Terminal: a figure.Backend whose figures render images as half-block
//     cells and lines on a character canvas
//   - FigureView: a View showing one figure, its colour bars and title
//   - KeybindRegistry/KeyHandler: app-level bindings, with SPC as leader
//   - FocusRing: cycles which figure is on screen (tab / shift+tab)
//   - OverlayStack: the full help overlay
//
// Keys that are not app bindings go to the focused figure's key handlers,
// which is where the navigators live.
package ui
