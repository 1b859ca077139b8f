// Package cli hosts the feeder controller in a terminal.
//
// The package uses [Bubbletea] to drive the menu navigator on a timer and
// [Lipgloss] to draw the panel. The Screen type implements device.Display
// and keeps the last rendered frame; the Model translates key presses into
// Cycle and Confirm events and calls Navigator.Step on every tick.
//
// Keys:
//   - space or s: Cycle (short press)
//   - enter or l: Confirm (long press)
//   - q or ctrl+c: quit without touching the navigator
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
