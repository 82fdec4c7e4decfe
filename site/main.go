//go:build js && wasm

//Wasming
// compile: GOOS=js GOARCH=wasm go build -o main.wasm ./site
package main

import (
	"log"
	"math/rand"
	"syscall/js"
	"time"

	"github.com/stdiopt/gowasm-portfolio/fluid"
	"github.com/stdiopt/gowasm-portfolio/page"
)

func main() {
	doc := js.Global().Get("document")
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	done := make(chan struct{}, 0)

	var (
		bindings *page.Bindings
		canvas   *fluid.Canvas
	)
	start := func() {
		bindings = page.Bind(doc, rng)

		var ok bool
		canvas, ok = fluid.Attach(doc, fluid.CanvasID, fluid.DefaultConfig(), rng)
		if !ok {
			log.Println("no #" + fluid.CanvasID + ", fluid animation disabled")
		}
	}

	ready := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		start()
		return nil
	})
	defer ready.Release()

	// Tear everything down when the page goes away
	pageHide := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if canvas != nil {
			canvas.Close()
		}
		if bindings != nil {
			bindings.Release()
		}
		close(done)
		return nil
	})
	defer pageHide.Release()

	if doc.Get("readyState").String() == "loading" {
		doc.Call("addEventListener", "DOMContentLoaded", ready)
	} else {
		start()
	}
	js.Global().Call("addEventListener", "pagehide", pageHide, map[string]interface{}{"once": true})

	<-done
}
