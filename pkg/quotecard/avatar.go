package quotecard

import (
	"image"
	"image/color"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
)

var (
	placeholderFill = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	placeholderText = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// drawAvatar scales src to the avatar box, circular-crops it, and draws it at
// `at` over a ring tinted slightly lighter than the card background.
func drawAvatar(dst draw.Image, src image.Image, at image.Point, background color.RGBA) {
	ring := image.Rect(at.X-ringWidth, at.Y-ringWidth, at.X+avatarSize+ringWidth, at.Y+avatarSize+ringWidth)
	fillCircle(dst, ring, lighten(background, 30))

	scaled := image.NewRGBA(image.Rect(0, 0, avatarSize, avatarSize))
	draw.CatmullRom.Scale(scaled, scaled.Rect, src, src.Bounds(), draw.Src, nil)

	box := image.Rect(at.X, at.Y, at.X+avatarSize, at.Y+avatarSize)
	draw.DrawMask(dst, box, scaled, image.Point{}, circleMask(box), box.Min, draw.Over)
}

// placeholder renders an initials avatar for senders without an accessible
// profile photo.
func placeholder(name string) image.Image {
	avatar := image.NewRGBA(image.Rect(0, 0, avatarSize, avatarSize))
	draw.Draw(avatar, avatar.Rect, image.NewUniform(placeholderFill), image.Point{}, draw.Src)

	face := newFace(bold, 100)
	defer face.Close()

	text := initials(name)
	metrics := face.Metrics()
	x := (avatarSize - font.MeasureString(face, text).Ceil()) / 2
	y := (avatarSize - (metrics.Ascent + metrics.Descent).Ceil()) / 2
	drawString(avatar, face, text, placeholderText, x, y)

	return avatar
}

// initials takes the first rune of up to two words, uppercased.
func initials(name string) string {
	fields := strings.Fields(name)
	if len(fields) > 2 {
		fields = fields[:2]
	}
	var b strings.Builder
	for _, word := range fields {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
	}
	if b.Len() == 0 {
		return "U"
	}
	return b.String()
}

func fillCircle(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.DrawMask(dst, r, image.NewUniform(c), image.Point{}, circleMask(r), r.Min, draw.Over)
}

func circleMask(r image.Rectangle) *image.Alpha {
	mask := image.NewAlpha(r)
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	radius := float64(r.Dx()) / 2
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= radius*radius {
				mask.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}
	return mask
}

func lighten(c color.RGBA, by uint8) color.RGBA {
	return color.RGBA{R: addCap(c.R, by), G: addCap(c.G, by), B: addCap(c.B, by), A: 255}
}

func addCap(v, by uint8) uint8 {
	if v > 255-by {
		return 255
	}
	return v + by
}
