// Package render draws a town and a tour onto a character grid.
//
// Grid rows are indexed by X and columns by Y. Background cells are '-',
// tour segments are '#', and each city shows its symbol: 'A'..'Z' for ids
// 0..25, 'a'..'z' for 26..51 and '*' beyond. Segments follow the integer line
// equation along the axis with the larger span, so every drawn segment is
// gap-free along that axis. City symbols are placed last and always win over
// '#'.
//
// Canvas and Path are pure. Styled adds terminal colours through lipgloss and
// degrades to plain text when the renderer's writer is not a colour terminal.
package render
