package raster

import (
	"image/color"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"golang.org/x/image/font/gofont/goregular"
)

const captionFont = "goregular"

var (
	fontOnce sync.Once
	fontErr  error
	fonts    = fontCache{}
)

// fontCache hands every lookup the single bundled font.
type fontCache map[string]*truetype.Font

func (f fontCache) Load(fd draw2d.FontData) (*truetype.Font, error) {
	font, ok := f[fd.Name]
	if !ok {
		return f[captionFont], nil
	}
	return font, nil
}

func (f fontCache) Store(fd draw2d.FontData, tf *truetype.Font) {
	f[fd.Name] = tf
}

func loadFont() error {
	fontOnce.Do(func() {
		var tf *truetype.Font
		tf, fontErr = truetype.Parse(goregular.TTF)
		if fontErr != nil {
			return
		}
		fonts.Store(draw2d.FontData{Name: captionFont, Family: draw2d.FontFamilySans}, tf)
	})
	return fontErr
}

// Caption draws text straight onto the image with its baseline at x,y,
// ignoring the composite operation.
func (s *Surface) Caption(text string, size, x, y float64, col color.Color) error {
	if err := loadFont(); err != nil {
		return err
	}
	gc := draw2dimg.NewGraphicContext(s.img)
	gc.FontCache = fonts
	gc.SetFontData(draw2d.FontData{Name: captionFont, Family: draw2d.FontFamilySans, Style: draw2d.FontStyleNormal})
	gc.SetFontSize(size)
	gc.SetFillColor(col)
	gc.FillStringAt(text, x, y)
	return nil
}
