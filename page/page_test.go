package page

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func TestNavScrolled(t *testing.T) {
	tests := map[float64]bool{0: false, 50: false, 50.5: true, 400: true}
	for y, want := range tests {
		if got := NavScrolled(y); got != want {
			t.Errorf("NavScrolled(%v) = %v, want %v", y, got, want)
		}
	}
}

func TestRevealed(t *testing.T) {
	tests := []struct {
		top, height float64
		want        bool
	}{
		{top: 0, height: 1000, want: true},
		{top: 799, height: 1000, want: true},
		{top: 800, height: 1000, want: false},
		{top: 1200, height: 1000, want: false},
		{top: -300, height: 1000, want: true},
	}
	for _, tt := range tests {
		if got := Revealed(tt.top, tt.height); got != tt.want {
			t.Errorf("Revealed(%v, %v) = %v, want %v", tt.top, tt.height, got, tt.want)
		}
	}
}

func TestCardURL(t *testing.T) {
	if _, ok := CardURL(""); ok {
		t.Error("empty url opened")
	}
	if _, ok := CardURL("#"); ok {
		t.Error("placeholder url opened")
	}
	if u, ok := CardURL("https://example.com/p"); !ok || u != "https://example.com/p" {
		t.Errorf("got %q %v", u, ok)
	}
}

func TestSlideshowWraps(t *testing.T) {
	s := NewSlideshow(3)
	if s.Current() != 0 {
		t.Fatalf("start = %d", s.Current())
	}
	var seen [][2]int
	for i := 0; i < 4; i++ {
		prev, cur, ok := s.Next()
		if !ok {
			t.Fatal("Next on non empty show not ok")
		}
		seen = append(seen, [2]int{prev, cur})
	}
	want := [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 1}}
	if !reflect.DeepEqual(seen, want) {
		t.Fatalf("transitions = %v, want %v", seen, want)
	}
}

func TestSlideshowEmpty(t *testing.T) {
	s := NewSlideshow(0)
	if s.Current() != -1 {
		t.Fatalf("current = %d", s.Current())
	}
	if _, _, ok := s.Next(); ok {
		t.Fatal("Next on empty show reported ok")
	}
}

func TestFloaterRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	accentsSeen := map[string]bool{}
	for i := 0; i < 500; i++ {
		f := NewFloater(rng)
		if f.Size < 0 || f.Size >= 5 {
			t.Fatalf("size %v", f.Size)
		}
		if f.Opacity < 0 || f.Opacity >= 0.5 {
			t.Fatalf("opacity %v", f.Opacity)
		}
		if f.Left < 0 || f.Left >= 100 || f.Top < 0 || f.Top >= 100 {
			t.Fatalf("position %v %v", f.Left, f.Top)
		}
		if f.Duration < 10 || f.Duration >= 25 {
			t.Fatalf("duration %v", f.Duration)
		}
		if f.Delay < 0 || f.Delay >= 5 {
			t.Fatalf("delay %v", f.Delay)
		}
		accentsSeen[f.Accent] = true
	}
	if len(accentsSeen) != 2 {
		t.Fatalf("accents used = %v", accentsSeen)
	}
}

func TestFloaterStyle(t *testing.T) {
	f := Floater{Size: 2.5, Accent: "var(--accent-color)", Opacity: 0.25, Left: 10, Top: 20, Duration: 12, Delay: 1.5}
	st := f.Style()
	want := map[string]string{
		"width":          "2.5px",
		"height":         "2.5px",
		"opacity":        "0.25",
		"left":           "10%",
		"top":            "20%",
		"animation":      "float 12s linear infinite",
		"animationDelay": "1.5s",
		"boxShadow":      "0 0 10px rgba(110, 66, 245, 0.5)",
		"background":     "var(--accent-color)",
	}
	for k, v := range want {
		if st[k] != v {
			t.Errorf("%s = %q, want %q", k, st[k], v)
		}
	}
}

func TestFloatKeyframes(t *testing.T) {
	if !strings.Contains(FloatKeyframes, "@keyframes float") {
		t.Fatal("keyframes missing")
	}
}
