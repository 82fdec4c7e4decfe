//go:build js && wasm

package fluid

import (
	"log"
	"math"
	"strconv"
	"syscall/js"
)

// canvasSurface draws on a 2d canvas context.
type canvasSurface struct {
	el  js.Value
	ctx js.Value
}

func (c *canvasSurface) Size() (float64, float64) {
	return c.el.Get("width").Float(), c.el.Get("height").Float()
}

// SetSize resets the canvas bitmap, which also clears it.
func (c *canvasSurface) SetSize(w, h float64) {
	c.el.Set("width", w)
	c.el.Set("height", h)
}

func (c *canvasSurface) SetFillStyle(style string) {
	c.ctx.Set("fillStyle", style)
}

func (c *canvasSurface) FillRect(x, y, w, h float64) {
	c.ctx.Call("fillRect", x, y, w, h)
}

func (c *canvasSurface) RadialGradient(x0, y0, r0, x1, y1, r1 float64) Gradient {
	return jsGradient{c.ctx.Call("createRadialGradient", x0, y0, r0, x1, y1, r1)}
}

func (c *canvasSurface) FillCircle(x, y, r float64, g Gradient) {
	c.ctx.Call("beginPath")
	c.ctx.Call("arc", x, y, r, 0, 2*math.Pi)
	if jg, ok := g.(jsGradient); ok {
		c.ctx.Set("fillStyle", jg.v)
	}
	c.ctx.Call("fill")
}

func (c *canvasSurface) SetComposite(op string) {
	c.ctx.Set("globalCompositeOperation", op)
}

type jsGradient struct{ v js.Value }

func (g jsGradient) AddColorStop(pos float64, color string) {
	g.v.Call("addColorStop", pos, color)
}

// rafScheduler schedules through requestAnimationFrame using a single
// js.Func for the whole lifetime of the loop.
type rafScheduler struct {
	next func()
	id   js.Value
	cb   js.Func
}

func newRAFScheduler() *rafScheduler {
	r := &rafScheduler{}
	r.cb = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		fn := r.next
		r.next = nil
		if fn != nil {
			fn()
		}
		return nil
	})
	return r
}

func (r *rafScheduler) RequestFrame(fn func()) {
	r.next = fn
	r.id = js.Global().Call("requestAnimationFrame", r.cb)
}

func (r *rafScheduler) release() {
	if r.next != nil {
		js.Global().Call("cancelAnimationFrame", r.id)
		r.next = nil
	}
	r.cb.Release()
}

// Canvas is the running animator bound to a page canvas.
type Canvas struct {
	loop   *Loop
	sched  *rafScheduler
	resize js.Func
}

// Attach starts the animator on the canvas with the given id, sized to the
// window. The canvas may override cfg.Count with a data-particles attribute.
// ok is false, and nothing is scheduled, when the element is absent.
func Attach(doc js.Value, id string, cfg Config, rng Rand) (*Canvas, bool) {
	win := js.Global()
	var surf Surface
	if el := doc.Call("getElementById", id); el.Truthy() {
		if ctx := el.Call("getContext", "2d"); ctx.Truthy() {
			cs := &canvasSurface{el: el, ctx: ctx}
			cs.SetSize(win.Get("innerWidth").Float(), win.Get("innerHeight").Float())
			if n, ok := particleOverride(el); ok {
				cfg.Count = n
			}
			surf = cs
		}
	}
	find := func() (Surface, bool) { return surf, surf != nil }

	sched := newRAFScheduler()
	loop, ok := Start(find, cfg, rng, sched)
	if !ok {
		sched.cb.Release()
		return nil, false
	}

	c := &Canvas{loop: loop, sched: sched}
	c.resize = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		loop.Animator().Resize(win.Get("innerWidth").Float(), win.Get("innerHeight").Float())
		return nil
	})
	win.Call("addEventListener", "resize", c.resize)
	return c, true
}

// Close stops the loop and releases every js callback.
func (c *Canvas) Close() {
	c.loop.Stop()
	js.Global().Call("removeEventListener", "resize", c.resize)
	c.resize.Release()
	c.sched.release()
}

func particleOverride(el js.Value) (int, bool) {
	raw := el.Call("getAttribute", "data-particles")
	if raw.IsNull() || raw.IsUndefined() {
		return 0, false
	}
	n, err := strconv.Atoi(raw.String())
	if err != nil || n < 0 {
		log.Println("fluid: ignoring data-particles", raw.String())
		return 0, false
	}
	return n, true
}
