package sim

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ParamTween animates a single float64 parameter field toward a target value
// over a fixed duration with an easing function. Create one with TweenParam
// and call Update(dt) each tick; the tween writes directly into the field, so
// the next Scene.Tick picks the value up like any other parameter edit.
//
// There is no global animation manager; callers own the Update calls, and
// several tweens on different fields can run at once.
type ParamTween struct {
	tween *gween.Tween
	field *float64
	Done  bool
}

// TweenParam creates a tween that eases *field from its current value to the
// given target over duration seconds.
//
//	t := sim.TweenParam(&params.Interp, 1, 2.5, ease.InOutQuad)
func TweenParam(field *float64, to float64, duration float32, fn ease.TweenFunc) *ParamTween {
	return &ParamTween{
		tween: gween.New(float32(*field), float32(to), duration, fn),
		field: field,
	}
}

// Update advances the tween by dt seconds and writes the eased value into the
// parameter field. Once the target is reached Done is set and further calls
// are no-ops.
func (t *ParamTween) Update(dt float32) {
	if t.Done {
		return
	}
	val, finished := t.tween.Update(dt)
	*t.field = float64(val)
	t.Done = finished
}
