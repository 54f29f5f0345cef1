// Package problem loads search problems from YAML documents and builds the
// matching state space.
//
// A puzzle document lists the nine starting tiles:
//
//	kind: puzzle
//	tiles: [1, 2, 3, 4, 0, 6, 7, 5, 8]
//
// A maze document either embeds an ASCII layout (see package maze) or asks
// for a generated maze:
//
//	kind: maze
//	width: 10
//	height: 6
//	start: {x: 0, y: 0}
//	goal: {x: 9, y: 5}
//	seed: 42
//
// Missing maze fields default to a 3×3 grid from the top-left to the
// bottom-right corner with seed 0. A layout takes precedence over every
// other maze field.
package problem
