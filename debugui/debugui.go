// Package debugui draws Dear ImGui windows that inspect a running round.
// Render must be called between the backend's BeginFrame and EndFrame.
package debugui

import (
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/round"
)

// Window is one debug panel.
type Window interface {
	Render(r *round.Round, dt time.Duration)
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Frontends drop game intents while it does.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

type Overlay struct {
	windows []Window
	input   InputState
}

// New creates an overlay with the standard panels.
func New() *Overlay {
	return &Overlay{
		windows: []Window{
			NewPerformanceStats(120),
			NewBoardView(),
			NewPieceInspector(),
			NewSettledBrowser(50),
		},
	}
}

// Add appends a panel drawn after the standard ones.
func (o *Overlay) Add(w Window) {
	o.windows = append(o.windows, w)
}

func (o *Overlay) Render(r *round.Round, dt time.Duration) {
	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, w := range o.windows {
		w.Render(r, dt)
	}
}

func (o *Overlay) InputState() InputState {
	return o.input
}
