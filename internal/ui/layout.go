package ui

import (
	"image"
	"math"
	"strconv"

	"lifepaint/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 28
	infoHeight     = 16
	buttonSize     = 20
	buttonGap      = 6
	headerBaseline = 16
	clearWidth     = 64
)

// panelLayout holds the hit rectangles of the HUD panel in panel coordinates.
type panelLayout struct {
	width    int
	height   int
	infoTop  int
	rowsTop  []int
	minus    []image.Rectangle
	plus     []image.Rectangle
	clearBtn image.Rectangle
}

// layoutPanel stacks infoLines text rows, then one row per control, then the
// Clear button.
func layoutPanel(width, infoLines, controls int) panelLayout {
	l := panelLayout{width: width}
	l.infoTop = panelPadding + headerBaseline + 6
	top := l.infoTop + infoLines*infoHeight + 6
	for i := 0; i < controls; i++ {
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		l.rowsTop = append(l.rowsTop, top)
		l.minus = append(l.minus, minus)
		l.plus = append(l.plus, plus)
		top += lineHeight
	}
	l.clearBtn = image.Rect(panelPadding, top+4, panelPadding+clearWidth, top+4+buttonSize+4)
	l.height = l.clearBtn.Max.Y + panelPadding
	return l
}

// Contains reports whether the panel-space point lies on the panel.
func (l panelLayout) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.width && y < l.height
}

// adjusted returns the value one step away from current in direction dir,
// clamped to the control's bounds. ok is false when the value cannot move.
func adjusted(ctrl core.ParameterControl, current float64, dir int) (float64, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = 1
		if ctrl.Type == core.ParamTypeFloat {
			step = 0.05
		}
	}
	target := current + float64(dir)*step
	if ctrl.Type == core.ParamTypeInt {
		target = math.Round(target)
	}
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	if math.Abs(target-current) < 1e-9 {
		return current, false
	}
	return target, true
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch {
	case ctrl.Step < 0.001:
		precision = 4
	case ctrl.Step < 0.01:
		precision = 3
	case ctrl.Step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}
