package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/youruser/cardboshi/internal/deck"
)

const (
	cardW   = 215
	cardH   = 300
	gap     = 8
	margin  = 48
	columns = 10
	headerH = 450
)

// ComposeDeckImage lays out up to a full deck of card images in a grid,
// with an optional QR code in the top-right corner. Missing images leave
// their slot empty.
func ComposeDeckImage(cardImgs []image.Image, qr image.Image, deckName string) image.Image {
	const W = margin*2 + columns*cardW + (columns-1)*gap
	rows := (deck.Capacity + columns - 1) / columns
	H := headerH + rows*(cardH+gap) + margin

	canvas := imaging.New(W, H, color.NRGBA{R: 0x05, G: 0x05, B: 0x05, A: 0xff})

	// deckName is reserved for the header band; text rendering needs a font
	// asset this package does not ship yet.
	_ = deckName

	if qr != nil {
		q := imaging.Resize(qr, 350, 350, imaging.Lanczos)
		canvas = imaging.Paste(canvas, q, image.Pt(W-margin-350, margin))
	}

	for i, img := range cardImgs {
		if i >= deck.Capacity || img == nil {
			continue
		}
		col := i % columns
		row := i / columns
		c := imaging.Resize(img, cardW, cardH, imaging.Lanczos)
		x := margin + col*(cardW+gap)
		y := headerH + row*(cardH+gap)
		canvas = imaging.Paste(canvas, c, image.Pt(x, y))
	}

	return canvas
}
