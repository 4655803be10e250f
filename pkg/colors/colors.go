package colors

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/EdlinOrg/prominentcolor"
)

// DefaultMax is the number of colors extracted when max is not positive.
const DefaultMax = 5

var ErrEmptyImage = errors.New("colors: empty image")

type colorsImpl struct{}

func (c *colorsImpl) Dominant(imageBytes []byte, max int) ([]string, error) {
	if len(imageBytes) == 0 {
		return nil, ErrEmptyImage
	}
	if max <= 0 {
		max = DefaultMax
	}

	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, fmt.Errorf("colors: failed to decode image: %w", err)
	}

	items, err := prominentcolor.KmeansWithAll(max, img,
		prominentcolor.ArgumentDefault, prominentcolor.DefaultSize,
		prominentcolor.GetDefaultMasks())
	if err != nil {
		return nil, fmt.Errorf("colors: extraction failed: %w", err)
	}

	hex := make([]string, 0, len(items))
	for _, item := range items {
		hex = append(hex, fmt.Sprintf("#%02x%02x%02x", item.Color.R, item.Color.G, item.Color.B))
	}
	return hex, nil
}
