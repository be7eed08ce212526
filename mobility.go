package main

import (
	"github.com/montanaflynn/stats"
)

type mobilitySummary struct {
	Pieces       int
	Mean         float64
	Percentile80 float64
}

// mobilityFor summarizes how many squares each piece of one color could
// reach from where it stands, occupancy ignored.
func mobilityFor(pieces []Piece, black bool) (mobilitySummary, error) {
	counts := make([]int, 0, len(pieces))
	for _, piece := range pieces {
		if piece.black() != black {
			continue
		}
		counts = append(counts, piece.rule().possibleMoveCount(piece.Square))
	}
	if len(counts) == 0 {
		return mobilitySummary{}, nil
	}
	data := stats.LoadRawData(counts)
	mean, err := stats.Mean(data)
	if err != nil {
		return mobilitySummary{}, err
	}
	percentile, err := stats.Percentile(data, 80)
	if err != nil {
		return mobilitySummary{}, err
	}
	return mobilitySummary{Pieces: len(counts), Mean: mean, Percentile80: percentile}, nil
}
