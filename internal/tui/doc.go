// Package tui is the terminal rendition of the catalog shell: a numbered
// menu of the five views built on bubbletea, with bubbles text inputs for the
// forms and lipgloss tables for results.
//
// Keys: enter selects a menu entry or activates the focused button, tab and
// shift+tab move between fields, left/right change a choice, esc returns to
// the menu and ctrl+c quits.
package tui
