// Package tui implements the full-screen interactive calculator built on
// bubbletea. It renders an input line, a scrolling history of evaluated
// expressions, and a footer with key bindings, all styled from the active
// ui theme.
package tui
