package session

import (
	"strconv"
	"time"

	"lifepaint/internal/core"
)

const (
	paramInterval     = "interval_ms"
	paramSprayDensity = "spray_density"
)

// Parameters reports the HUD-visible state of the session.
func (s *Session) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Simulation",
				Params: []core.Parameter{
					{Key: paramInterval, Label: "Interval (ms)", Type: core.ParamTypeInt, Value: strconv.FormatInt(s.Interval().Milliseconds(), 10)},
					{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(s.Generation(), 10)},
					{Key: "alive", Label: "Alive", Type: core.ParamTypeInt, Value: strconv.Itoa(s.CountAlive())},
					{Key: "running", Label: "Running", Type: core.ParamTypeBool, Value: strconv.FormatBool(s.running)},
				},
			},
			{
				Name: "Tools",
				Params: []core.Parameter{
					{Key: "tool", Label: "Tool", Value: s.tools.Current().Kind().String()},
					{Key: "stamp", Label: "Stamp", Value: s.StampName()},
					{Key: paramSprayDensity, Label: "Spray density", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.spray.Density, 'f', 2, 64)},
				},
			},
		},
	}
}

// ParameterControls lists the values adjustable from the HUD.
func (s *Session) ParameterControls() []core.ParameterControl {
	lo, hi := s.timer.Bounds()
	step := s.intervalStep
	if step <= 0 {
		step = 10 * time.Millisecond
	}
	return []core.ParameterControl{
		{
			Key: paramInterval, Label: "Interval (ms)", Type: core.ParamTypeInt,
			Step: float64(step.Milliseconds()),
			Min:  float64(lo.Milliseconds()), HasMin: true,
			Max: float64(hi.Milliseconds()), HasMax: true,
		},
		{
			Key: paramSprayDensity, Label: "Spray density", Type: core.ParamTypeFloat,
			Step: 0.05, Min: 0, HasMin: true, Max: 1, HasMax: true,
		},
	}
}

// SetIntParameter applies a HUD adjustment to an integer parameter.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key != paramInterval {
		return false
	}
	target := time.Duration(value) * time.Millisecond
	s.SetSpeedInterval(target - s.Interval())
	return true
}

// SetFloatParameter applies a HUD adjustment to a float parameter.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	if key != paramSprayDensity {
		return false
	}
	s.SetSprayDensity(value)
	return true
}
