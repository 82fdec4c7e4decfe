package fluid

import "log"

// Scheduler runs fn once on the next display refresh.
type Scheduler interface {
	RequestFrame(fn func())
}

// Loop keeps an animator running by rescheduling itself after every frame.
type Loop struct {
	anim    *Animator
	sched   Scheduler
	running bool
}

// NewLoop wraps anim with sched.
func NewLoop(anim *Animator, sched Scheduler) *Loop {
	return &Loop{anim: anim, sched: sched}
}

// Start paints the first frame right away and keeps going until Stop.
func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.tick()
}

// Stop prevents any further frame from being painted.
func (l *Loop) Stop() {
	l.running = false
}

// Running reports whether the loop is active.
func (l *Loop) Running() bool { return l.running }

func (l *Loop) tick() {
	if !l.running {
		return
	}
	l.anim.Frame()
	l.sched.RequestFrame(l.tick)
}

// Start looks up the drawing surface and, when present, starts a loop on it.
// A missing surface is not an error: nothing is scheduled and ok is false.
// An invalid cfg falls back to DefaultConfig.
func Start(find func() (Surface, bool), cfg Config, rng Rand, sched Scheduler) (loop *Loop, ok bool) {
	surf, ok := find()
	if !ok {
		return nil, false
	}
	anim, err := New(surf, cfg, rng)
	if err != nil {
		log.Println("fluid: using defaults:", err)
		if anim, err = New(surf, DefaultConfig(), rng); err != nil {
			log.Println("fluid:", err)
			return nil, false
		}
	}
	loop = NewLoop(anim, sched)
	loop.Start()
	return loop, true
}

// Animator returns the animator driven by the loop.
func (l *Loop) Animator() *Animator { return l.anim }
