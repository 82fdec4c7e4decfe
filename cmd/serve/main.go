// Serve static files from a directory
//  it will start at FX_PORT and if the port is being used it will try next one
//  clients connected to /livereload are told to reload when FX_WATCH changes
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

type config struct {
	Dir   string        `env:"FX_DIR" envDefault:"."`
	Port  int           `env:"FX_PORT" envDefault:"8080"`
	Watch string        `env:"FX_WATCH" envDefault:"main.wasm"`
	Poll  time.Duration `env:"FX_POLL" envDefault:"1s"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal("parse env: ", err)
	}

	hub := newHub()
	go watch(context.Background(), filepath.Join(cfg.Dir, cfg.Watch), cfg.Poll, func() {
		log.Println("changed:", cfg.Watch)
		hub.Broadcast(reloadMsg)
	})

	port := cfg.Port
	for {
		addr := fmt.Sprintf(":%d", port)
		listener, err := net.Listen("tcp", addr)
		if err != nil {
			fmt.Fprintln(os.Stderr, "err opening port", err)
			port++
			continue
		}
		fmt.Printf("Listening at %s serving %s\n", addr, cfg.Dir)
		log.Fatal(http.Serve(listener, logger(newMux(cfg.Dir, hub))))
	}
}

func newMux(dir string, hub *hub) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/livereload", hub)
	mux.HandleFunc("/livereload.js", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript")
		fmt.Fprint(w, reloadScript)
	})
	mux.Handle("/", wasmType(http.FileServer(http.Dir(dir))))
	return mux
}

func logger(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fmt.Println(r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	}
}

// wasmType makes sure .wasm is served with the mime type streaming
// instantiation requires.
func wasmType(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if filepath.Ext(r.URL.Path) == ".wasm" {
			w.Header().Set("Content-Type", "application/wasm")
		}
		next.ServeHTTP(w, r)
	}
}
