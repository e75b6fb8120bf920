package strategy

import (
	"errors"
	"testing"

	"github.com/STAT540-UBC/crossmark/types"
)

// BenchmarkRandomDraw measures Assign throughput across roster shapes that
// bracket a typical course offering.
func BenchmarkRandomDraw(b *testing.B) {
	testCases := []struct {
		name     string
		teams    int
		students int
		quota    int
	}{
		{"T6_S29_Q2", 6, 29, 2},
		{"T12_S60_Q3", 12, 60, 3},
		{"T40_S200_Q2", 40, 200, 2},
	}

	for _, tc := range testCases {
		b.Run(tc.name, func(b *testing.B) {
			strat := NewRandomDraw()
			teams := teamNames(tc.teams)
			students := groupedStudents(tc.students, teams)
			rng := testRNG(1)

			b.ResetTimer()
			for b.Loop() {
				_, err := strat.Assign(rng, teams, students, tc.quota)
				if err != nil && !errors.Is(err, types.ErrInsufficientCandidates) {
					b.Fatalf("Assign error: %v", err)
				}
			}
		})
	}
}
