//go:build js && wasm

package page

import (
	"fmt"
	"syscall/js"
	"time"
)

// Bindings keeps the js callbacks registered on the page so they can be
// released.
type Bindings struct {
	doc   js.Value
	funcs []js.Func
	stop  chan struct{}
}

// Bind wires every effect whose elements are present; missing ones are
// skipped silently.
func Bind(doc js.Value, rng Rand) *Bindings {
	b := &Bindings{doc: doc, stop: make(chan struct{})}
	b.loadingScreen()
	b.navbar()
	b.menu()
	b.slideshow()
	b.projectCards()
	b.reveal()
	b.floaters(rng)
	return b
}

// Release stops the timers and frees every callback. Listeners are not
// removed, the page is expected to be going away.
func (b *Bindings) Release() {
	close(b.stop)
	for _, fn := range b.funcs {
		fn.Release()
	}
	b.funcs = nil
}

func (b *Bindings) on(target js.Value, event string, fn func(this js.Value, args []js.Value)) {
	f := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		fn(this, args)
		return nil
	})
	b.funcs = append(b.funcs, f)
	target.Call("addEventListener", event, f)
}

func (b *Bindings) query(sel string) js.Value {
	return b.doc.Call("querySelector", sel)
}

func (b *Bindings) queryAll(sel string) []js.Value {
	list := b.doc.Call("querySelectorAll", sel)
	ret := make([]js.Value, list.Length())
	for i := range ret {
		ret[i] = list.Index(i)
	}
	return ret
}

func (b *Bindings) loadingScreen() {
	el := b.doc.Call("getElementById", "loading-screen")
	if !el.Truthy() {
		return
	}
	time.AfterFunc(LoadingDelay, func() {
		el.Get("style").Set("opacity", "0")
		time.AfterFunc(LoadingFadeDelay, func() {
			el.Get("style").Set("visibility", "hidden")
		})
	})
}

func (b *Bindings) navbar() {
	nav := b.query(".navbar")
	if !nav.Truthy() {
		return
	}
	win := js.Global()
	b.on(win, "scroll", func(js.Value, []js.Value) {
		setClass(nav, "scrolled", NavScrolled(win.Get("scrollY").Float()))
	})
}

func (b *Bindings) menu() {
	toggle := b.query(".menu-toggle")
	links := b.query(".nav-links")
	if !toggle.Truthy() || !links.Truthy() {
		return
	}
	b.on(toggle, "click", func(js.Value, []js.Value) {
		toggle.Get("classList").Call("toggle", "active")
		links.Get("classList").Call("toggle", "active")
	})
	for _, a := range b.queryAll(".nav-links a") {
		b.on(a, "click", func(js.Value, []js.Value) {
			setClass(toggle, "active", false)
			setClass(links, "active", false)
		})
	}
}

func (b *Bindings) slideshow() {
	slides := b.queryAll(".slide")
	show := NewSlideshow(len(slides))
	if show.Current() < 0 {
		return
	}
	setClass(slides[show.Current()], "active", true)

	go func() {
		ticker := time.NewTicker(SlideInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				prev, cur, _ := show.Next()
				setClass(slides[prev], "active", false)
				setClass(slides[cur], "active", true)
			case <-b.stop:
				return
			}
		}
	}()
}

func (b *Bindings) projectCards() {
	grid := b.doc.Call("getElementById", "projects-grid")
	for _, card := range b.queryAll(".project-card") {
		card := card
		b.on(card, "mouseenter", func(js.Value, []js.Value) {
			setClass(card, "active", true)
			if grid.Truthy() {
				setClass(grid, "has-active-card", true)
			}
		})
		b.on(card, "mouseleave", func(js.Value, []js.Value) {
			setClass(card, "active", false)
			if grid.Truthy() {
				setClass(grid, "has-active-card", false)
			}
		})
		b.on(card, "click", func(js.Value, []js.Value) {
			raw := card.Call("getAttribute", "data-url")
			if raw.IsNull() {
				return
			}
			if url, ok := CardURL(raw.String()); ok {
				js.Global().Call("open", url, "_blank")
			}
		})
	}
}

func (b *Bindings) reveal() {
	els := b.queryAll(".section-content")
	if len(els) == 0 {
		return
	}
	for _, el := range els {
		st := el.Get("style")
		st.Set("opacity", "0")
		st.Set("transform", fmt.Sprintf("translateY(%dpx)", RevealOffset))
		st.Set("transition", "opacity 0.6s ease, transform 0.6s ease")
	}
	win := js.Global()
	check := func(js.Value, []js.Value) {
		h := win.Get("innerHeight").Float()
		for _, el := range els {
			top := el.Call("getBoundingClientRect").Get("top").Float()
			if Revealed(top, h) {
				st := el.Get("style")
				st.Set("opacity", "1")
				st.Set("transform", "translateY(0)")
			}
		}
	}
	b.on(win, "load", check)
	b.on(win, "scroll", check)
	// the load event may already be gone by the time the module runs
	if b.doc.Get("readyState").String() == "complete" {
		check(js.Undefined(), nil)
	}
}

func (b *Bindings) floaters(rng Rand) {
	if container := b.query(".floating-particles"); container.Truthy() {
		for i := 0; i < FloaterCount; i++ {
			el := b.doc.Call("createElement", "div")
			el.Get("classList").Call("add", "particle")
			st := el.Get("style")
			for k, v := range NewFloater(rng).Style() {
				st.Set(k, v)
			}
			container.Call("appendChild", el)
		}
	}
	style := b.doc.Call("createElement", "style")
	style.Set("textContent", FloatKeyframes)
	b.doc.Get("head").Call("appendChild", style)
}

func setClass(el js.Value, class string, on bool) {
	if on {
		el.Get("classList").Call("add", class)
		return
	}
	el.Get("classList").Call("remove", class)
}
