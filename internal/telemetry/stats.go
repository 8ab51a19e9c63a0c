// Package telemetry summarizes generations and writes them as CSV rows.
package telemetry

import (
	"gonum.org/v1/gonum/stat"

	"lifepaint/internal/sims/life"
)

// GenerationStats summarizes one generation of a Life run.
type GenerationStats struct {
	Generation uint64  `csv:"generation"`
	Alive      int     `csv:"alive"`
	Births     int     `csv:"births"`
	Deaths     int     `csv:"deaths"`
	MeanAge    float64 `csv:"mean_age"`
	AgeStdDev  float64 `csv:"age_stddev"`
	MaxAge     uint32  `csv:"max_age"`
	Mature     int     `csv:"mature"` // live cells at or past life.MatureAge
}

// Collect computes stats for the current state of l. The ages slice is reused
// between calls to avoid reallocating on every generation.
func Collect(l *life.Life, ages []float64) (GenerationStats, []float64) {
	ages = ages[:0]
	st := GenerationStats{Generation: l.Generation()}
	for _, c := range l.Cells() {
		if !c.Alive {
			continue
		}
		ages = append(ages, float64(c.Age))
		st.MaxAge = max(st.MaxAge, c.Age)
		if c.Age >= life.MatureAge {
			st.Mature++
		}
	}
	st.Alive = len(ages)
	last := l.LastStep()
	st.Births, st.Deaths = last.Births, last.Deaths
	switch len(ages) {
	case 0:
	case 1:
		st.MeanAge = ages[0]
	default:
		st.MeanAge, st.AgeStdDev = stat.MeanStdDev(ages, nil)
	}
	return st, ages
}
