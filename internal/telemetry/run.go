package telemetry

import (
	"context"

	"lifepaint/internal/sims/life"
)

// Stepper advances a Life engine one generation at a time.
type Stepper interface {
	AdvanceGeneration()
	Life() *life.Life
}

// Run advances sim for the given number of generations, writing a stats row
// for the starting state and then every every-th generation. It returns the
// stats of the final generation.
func Run(ctx context.Context, sim Stepper, generations, every int, out *Writer) (GenerationStats, error) {
	every = max(every, 1)
	var ages []float64
	st, ages := Collect(sim.Life(), ages)
	if err := out.Write(st); err != nil {
		return st, err
	}
	for i := 1; i <= generations; i++ {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		sim.AdvanceGeneration()
		if i%every != 0 && i != generations {
			continue
		}
		st, ages = Collect(sim.Life(), ages)
		if err := out.Write(st); err != nil {
			return st, err
		}
	}
	return st, nil
}
