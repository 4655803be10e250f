package colors

// IColors extracts dominant colors from encoded images.
// Implementations are safe for concurrent use.
type IColors interface {
	// Dominant returns up to max dominant colors of the image as "#rrggbb"
	// hex strings, most prominent first.
	Dominant(imageBytes []byte, max int) ([]string, error)
}

// New creates a dominant-color extractor.
func New() IColors {
	return &colorsImpl{}
}
