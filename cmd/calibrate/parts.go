package main

import (
	_ "embed"

	"github.com/bridgerepair/calibrate"
)

//go:embed parts.go
var partsSource []byte

// partFunc returns the solver for one half of the puzzle.
type partFunc func(opts ...calibrate.Option) *calibrate.Solver

var parts = map[int]partFunc{
	1: part1,
	2: part2,
}

// partNames maps a part to the function its sample is attached to.
var partNames = map[int]string{
	1: "part1",
	2: "part2",
}

/*
want=3749

190: 10 19
3267: 81 40 27
83: 17 5
156: 15 6
7290: 6 8 6 15
161011: 16 10 13
192: 17 8 14
21037: 9 7 18 13
292: 11 6 16 20
*/
func part1(opts ...calibrate.Option) *calibrate.Solver {
	return calibrate.NewSolver(calibrate.Part1, opts...)
}

// want=11387
func part2(opts ...calibrate.Option) *calibrate.Solver {
	return calibrate.NewSolver(calibrate.Part2, opts...)
}
