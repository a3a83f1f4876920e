//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"powder-sandbox/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the grid view.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	panelOffsetX int
	scroll       int
	title        string
	status       []string
}

type hudControlState struct {
	control  core.ParameterControl
	value    string
	intValue int
	hasValue bool
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0)}
	h.title = buildTitle(sim)
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, hudControlState{control: ctrl, value: "--"})
		}
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	return h
}

// Width reports the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// SetStatus replaces the status lines printed under the title.
func (h *HUD) SetStatus(lines ...string) {
	if h == nil {
		return
	}
	h.status = lines
}

// Update refreshes the cached parameter snapshot and handles clicks and
// scrolling over the panel.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls(height)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return fmt.Sprintf("%s Controls", strings.ToUpper(name[:1])+name[1:])
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok || param.Type != core.ParamTypeInt {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.intValue = parsed
		state.value = param.Value
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		_, height := h.panelSize()
		h.scroll -= int(dy * lineHeight)
		h.scroll = min(max(h.scroll, 0), maxScroll(len(h.controls), height))
	}
	if h.intSetter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		_, minus, plus := controlRects(i, h.width, h.scroll)
		dir := 0
		switch {
		case pointInRect(px, my, minus):
			dir = -1
		case pointInRect(px, my, plus):
			dir = 1
		default:
			continue
		}
		if target, ok := adjust(state.control, state.intValue, dir); ok && h.intSetter.SetIntParameter(state.control.Key, target) {
			state.intValue = target
			state.value = strconv.Itoa(target)
		}
		return
	}
}

func (h *HUD) panelSize() (int, int) {
	if h.panel == nil {
		return h.width, 0
	}
	b := h.panel.Bounds()
	return b.Dx(), b.Dy()
}

func (h *HUD) drawControls(height int) {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i, line := range h.status {
		text.Draw(h.panel, line, face, panelPadding, headerY+(i+1)*statusSpacing, color.RGBA{R: 170, G: 200, B: 170, A: 255})
	}
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, controlsTop+labelBaseline, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		top, minus, plus := controlRects(i, h.width, h.scroll)
		if top < controlsTop-lineHeight/2 || top > height {
			continue
		}
		labelY := top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		valueWidth := text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, minus.Min.X-buttonGap-valueWidth, labelY, valueColor)

		_, canLower := adjust(state.control, state.intValue, -1)
		_, canRaise := adjust(state.control, state.intValue, 1)
		h.drawButton(minus, "-", state.hasValue && h.intSetter != nil && canLower)
		h.drawButton(plus, "+", state.hasValue && h.intSetter != nil && canRaise)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
