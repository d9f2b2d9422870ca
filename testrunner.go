package starfall

import (
	"encoding/json"
	"errors"
	"fmt"
)

var errNoSteps = errors.New("parse test script: no steps")

// scriptStep is one line of a pointer script. Fields unused by an action are
// left zero.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// stepActions runs a step against the hero and returns how many extra frames
// to hold before the next step.
var stepActions = map[string]func(h *Hero, st scriptStep) int{
	"screenshot": func(h *Hero, st scriptStep) int {
		h.Screenshot(st.Label)
		return 0
	},
	"move": func(h *Hero, st scriptStep) int {
		h.InjectMove(st.X, st.Y)
		return 0
	},
	"leave": func(h *Hero, _ scriptStep) int {
		h.InjectLeave()
		return 0
	},
	"sweep": func(h *Hero, st scriptStep) int {
		h.InjectSweep(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
		return 0
	},
	"wait": func(_ *Hero, st scriptStep) int {
		return max(st.Frames-1, 0)
	},
	"loaded": func(h *Hero, _ scriptStep) int {
		if h.preloader != nil {
			h.preloader.MarkLoaded()
		}
		return 0
	},
}

// TestRunner replays a pointer script one step per frame so captures of the
// hero are repeatable. Attach it with Hero.SetTestRunner.
//
// A script is JSON of the form {"steps": [...]} where each step has an
// "action":
//
//	screenshot  label           queue a capture of this frame
//	move        x, y            pointer to screen position
//	leave                       pointer leaves the window
//	sweep       fromX, fromY,   straight pointer path, one point a frame
//	            toX, toY, frames
//	wait        frames          hold for frames frames
//	loaded                      hide the preloader now
//
// A step does not start until injected pointer samples from the previous
// one have drained.
type TestRunner struct {
	steps []scriptStep
	next  int
	hold  int
	done  bool
}

// LoadTestScript parses a pointer script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script struct {
		Steps []scriptStep `json:"steps"`
	}
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, errNoSteps
	}
	for i, st := range script.Steps {
		if _, ok := stepActions[st.Action]; !ok {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches r. While attached the real pointer is ignored and r
// steps at the start of every Update.
func (h *Hero) SetTestRunner(r *TestRunner) {
	h.testRunner = r
}

// Done reports whether every step has run and its pointer samples have been
// consumed.
func (r *TestRunner) Done() bool {
	return r.done
}

func (r *TestRunner) step(h *Hero) {
	switch {
	case r.done, len(h.injectQueue) > 0:
		return
	case r.hold > 0:
		r.hold--
		return
	case r.next == len(r.steps):
		r.done = true
		return
	}

	st := r.steps[r.next]
	r.next++
	r.hold = stepActions[st.Action](h, st)

	r.done = r.next == len(r.steps) && r.hold == 0 && len(h.injectQueue) == 0
}
