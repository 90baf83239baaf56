// Package colors contains functions to quickly generate vaporgrid.Color instances by name (i.e. "White()", "HotPink()", etc).
package colors

import "github.com/solarlune/vaporgrid"

// White generates a vaporgrid.Color instance of the provided name.
func White() vaporgrid.Color {
	return vaporgrid.NewColor(1, 1, 1, 1)
}

// LightGray generates a vaporgrid.Color instance of the provided name.
func LightGray() vaporgrid.Color {
	return vaporgrid.NewColor(0.8, 0.8, 0.8, 1)
}
