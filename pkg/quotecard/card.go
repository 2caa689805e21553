// Package quotecard composes quote card images: the quoted text and author
// name next to a circular avatar, on a rounded card over a colored background.
package quotecard

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Card is the immutable input to Render.
type Card struct {
	Text       string
	Author     string
	Avatar     image.Image // nil renders an initials placeholder
	Background colorful.Color
}

// Canvas layout. The canvas size is fixed; overlong text is wrapped, shrunk,
// and finally truncated to fit the text region.
const (
	Width  = 1200
	Height = 630

	margin     = 60 // canvas edge to card
	padding    = 60 // card edge to content
	avatarSize = 200
	avatarGap  = 40 // avatar to text column
	ringWidth  = 4

	cornerRadius = 25

	nameSize   = 52
	nameHeight = 65
	textSize   = 48
)

var (
	cardFill  = color.RGBA{R: 35, G: 35, B: 40, A: 255}
	nameColor = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	textColor = color.RGBA{R: 190, G: 190, B: 190, A: 255}
)

var (
	regular = mustParse(goregular.TTF)
	bold    = mustParse(gobold.TTF)
)

// Render composes the quote card and returns it PNG-encoded.
func Render(card Card) ([]byte, error) {
	dst := image.NewRGBA(image.Rect(0, 0, Width, Height))
	r, g, b := card.Background.RGB255()
	background := color.RGBA{R: r, G: g, B: b, A: 255}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	fillRounded(dst, image.Rect(margin, margin, Width-margin, Height-margin), cornerRadius, cardFill)

	avatar := card.Avatar
	if avatar == nil {
		avatar = placeholder(card.Author)
	}
	at := image.Pt(margin+padding, margin+padding)
	drawAvatar(dst, avatar, at, background)

	textX := at.X + avatarSize + avatarGap
	textWidth := Width - margin - padding - textX
	nameY := at.Y + 10

	drawName(dst, card.Author, textX, nameY, textWidth)
	drawBody(dst, card.Text, textX, nameY+nameHeight, textWidth, Height-margin-padding-nameY-nameHeight)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawName(dst draw.Image, name string, x, y, maxWidth int) {
	face := newFace(bold, nameSize)
	defer face.Close()
	drawString(dst, face, truncate(face, name, maxWidth), nameColor, x, y)
}

// bodySizes are tried largest first until the wrapped text fits the region.
var bodySizes = []float64{textSize, 42, 36, 30, 24}

func drawBody(dst draw.Image, text string, x, y, maxWidth, maxHeight int) {
	if strings.TrimSpace(text) == "" {
		return
	}

	var face font.Face
	var lines []string
	var lineHeight int
	for _, size := range bodySizes {
		if face != nil {
			face.Close()
		}
		face = newFace(regular, size)
		lines = wrap(face, text, maxWidth)
		lineHeight = int(size) * 5 / 4
		if len(lines)*lineHeight <= maxHeight {
			break
		}
	}
	defer face.Close()

	// Still overflowing at the smallest size: truncate with an ellipsis.
	if maxLines := max(maxHeight/lineHeight, 1); len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[len(lines)-1] = truncate(face, lines[len(lines)-1]+"…", maxWidth)
	}

	for i, line := range lines {
		drawString(dst, face, line, textColor, x, y+i*lineHeight)
	}
}

// drawString draws s with its top edge at y.
func drawString(dst draw.Image, face font.Face, s string, c color.Color, x, y int) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// wrap greedily fills lines with whole words; a single word wider than
// maxWidth is broken at the last rune that still fits.
func wrap(face font.Face, text string, maxWidth int) []string {
	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if font.MeasureString(face, candidate).Ceil() <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		for font.MeasureString(face, word).Ceil() > maxWidth {
			cut := fit(face, word, maxWidth)
			lines = append(lines, word[:cut])
			word = word[cut:]
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// fit returns the byte length of the longest prefix of s, at least one rune,
// that fits within maxWidth.
func fit(face font.Face, s string, maxWidth int) int {
	last := 0
	for i := range s {
		if i == 0 {
			continue
		}
		if font.MeasureString(face, s[:i]).Ceil() > maxWidth {
			break
		}
		last = i
	}
	if last == 0 {
		_, n := utf8.DecodeRuneInString(s)
		return n
	}
	return last
}

func truncate(face font.Face, s string, maxWidth int) string {
	if font.MeasureString(face, s).Ceil() <= maxWidth {
		return s
	}
	s = strings.TrimSuffix(s, "…")
	for len(s) > 0 {
		_, n := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-n]
		if font.MeasureString(face, s+"…").Ceil() <= maxWidth {
			break
		}
	}
	return s + "…"
}

// fillRounded fills r with c, rounding the corners to radius.
func fillRounded(dst draw.Image, r image.Rectangle, radius int, c color.Color) {
	mask := image.NewAlpha(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cx := min(max(x, r.Min.X+radius), r.Max.X-1-radius)
			cy := min(max(y, r.Min.Y+radius), r.Max.Y-1-radius)
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radius*radius {
				mask.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}
	draw.DrawMask(dst, r, image.NewUniform(c), image.Point{}, mask, r.Min, draw.Over)
}

func mustParse(ttf []byte) *sfnt.Font {
	f, err := opentype.Parse(ttf)
	if err != nil {
		panic(err)
	}
	return f
}

func newFace(f *sfnt.Font, size float64) font.Face {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic(err)
	}
	return face
}
