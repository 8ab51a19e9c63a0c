//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"lifepaint/internal/core"
)

// Controls is the part of the simulation context the HUD reads and adjusts.
type Controls interface {
	Parameters() core.ParameterSnapshot
	core.ParameterControlsProvider
	core.IntParameterSetter
	core.FloatParameterSetter
	Clear()
}

// infoKeys are the read-only parameters shown above the controls.
var infoKeys = []string{"running", "generation", "alive", "tool", "stamp"}

// HUD is a panel in the top-left corner with status labels, +/- controls, and
// a Clear button.
type HUD struct {
	src      Controls
	controls []core.ParameterControl
	layout   panelLayout
	snapshot core.ParameterSnapshot
	visible  bool
}

// NewHUD constructs a HUD of the given width over src.
func NewHUD(src Controls, width int) *HUD {
	controls := src.ParameterControls()
	return &HUD{
		src:      src,
		controls: controls,
		layout:   layoutPanel(width, len(infoKeys), len(controls)),
		visible:  true,
	}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Contains reports whether a screen point falls on the visible panel, so
// clicks there are not forwarded to the paint tools.
func (h *HUD) Contains(x, y int) bool {
	return h.visible && h.layout.Contains(x, y)
}

// Refresh pulls the latest values from the simulation context.
func (h *HUD) Refresh() {
	h.snapshot = h.src.Parameters()
}

// Click handles a left click at a screen point and reports whether the HUD
// consumed it.
func (h *HUD) Click(x, y int) bool {
	if !h.Contains(x, y) {
		return false
	}
	if pointInRect(x, y, h.layout.clearBtn) {
		h.src.Clear()
		return true
	}
	for i, ctrl := range h.controls {
		switch {
		case pointInRect(x, y, h.layout.minus[i]):
			h.adjust(ctrl, -1)
		case pointInRect(x, y, h.layout.plus[i]):
			h.adjust(ctrl, 1)
		}
	}
	return true
}

func (h *HUD) adjust(ctrl core.ParameterControl, dir int) {
	current, ok := h.value(ctrl)
	if !ok {
		return
	}
	target, ok := adjusted(ctrl, current, dir)
	if !ok {
		return
	}
	switch ctrl.Type {
	case core.ParamTypeInt:
		h.src.SetIntParameter(ctrl.Key, int(target))
	case core.ParamTypeFloat:
		h.src.SetFloatParameter(ctrl.Key, target)
	}
	h.Refresh()
}

func (h *HUD) value(ctrl core.ParameterControl) (float64, bool) {
	p, ok := h.snapshot.Lookup(ctrl.Key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	return v, err == nil
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.visible {
		return
	}
	face := basicfont.Face7x13
	l := h.layout
	vector.DrawFilledRect(screen, 0, 0, float32(l.width), float32(l.height), color.RGBA{R: 16, G: 16, B: 20, A: 220}, false)
	text.Draw(screen, "Game of Life", face, panelPadding, panelPadding+headerBaseline-4, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	labelColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	for i, key := range infoKeys {
		p, ok := h.snapshot.Lookup(key)
		if !ok {
			continue
		}
		value := p.Value
		if key == "running" {
			value = "paused"
			if p.Value == "true" {
				value = "running"
			}
		}
		line := fmt.Sprintf("%s: %s", p.Label, value)
		text.Draw(screen, line, face, panelPadding, l.infoTop+(i+1)*infoHeight-4, labelColor)
	}

	for i, ctrl := range h.controls {
		baseline := l.rowsTop[i] + lineHeight/2 + 4
		text.Draw(screen, ctrl.Label, face, panelPadding, baseline, labelColor)
		value, ok := h.value(ctrl)
		shown := "--"
		if ok {
			shown = strconv.Itoa(int(value))
			if ctrl.Type == core.ParamTypeFloat {
				shown = formatFloat(ctrl, value)
			}
		}
		w := text.BoundString(face, shown).Dx()
		text.Draw(screen, shown, face, l.minus[i].Min.X-buttonGap-w, baseline, labelColor)
		_, canDown := adjusted(ctrl, value, -1)
		_, canUp := adjusted(ctrl, value, 1)
		drawButton(screen, l.minus[i].Min.X, l.minus[i].Min.Y, l.minus[i].Dx(), l.minus[i].Dy(), "-", ok && canDown)
		drawButton(screen, l.plus[i].Min.X, l.plus[i].Min.Y, l.plus[i].Dx(), l.plus[i].Dy(), "+", ok && canUp)
	}
	c := l.clearBtn
	drawButton(screen, c.Min.X, c.Min.Y, c.Dx(), c.Dy(), "Clear", true)
}

func drawButton(dst *ebiten.Image, x, y, w, h int, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), bg, false)
	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	tx := x + (w-b.Dx())/2
	ty := y + (h-b.Dy())/2 + b.Dy()
	text.Draw(dst, label, face, tx, ty, fg)
}
