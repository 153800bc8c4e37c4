package renderer

// Frame is a rendered grid of display colors, row-major.
// Row 0 is the bottom of the picture: y grows upward like the camera's v axis.
type Frame struct {
	Width  int
	Height int
	Pix    []RGB
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]RGB, width*height),
	}
}

// At returns the color of pixel (x, y)
func (f *Frame) At(x, y int) RGB {
	return f.Pix[y*f.Width+x]
}

// Set stores the color of pixel (x, y)
func (f *Frame) Set(x, y int, c RGB) {
	f.Pix[y*f.Width+x] = c
}
