package imagepkg

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"

	"github.com/youruser/cardboshi/internal/util"
)

// DownloadImage fetches a card art URL and decodes it.
func DownloadImage(url string) (image.Image, error) {
	body, err := util.GetBytes(url)
	if err != nil {
		return nil, err
	}
	return imaging.Decode(bytes.NewReader(body))
}
