package main

import "github.com/gdamore/tcell/v2"

// upperHalf draws the top pixel of a cell in the foreground colour and the
// bottom pixel in the background colour.
const upperHalf = '▀'

// frameSize returns the pixel size of a frame that fills a terminal of
// cols x rows cells, leaving one row for the status line.
func frameSize(cols, rows int) (width, height int) {
	rows--
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	return cols, rows * 2
}

// blit copies an RGBA frame of width x height pixels onto the screen, two
// pixel rows per terminal row, starting at row top.
func blit(s *Screen, pixels []byte, width, height, top int) {
	for y := 0; y < height; y += 2 {
		row := top + y/2
		for x := 0; x < width; x++ {
			fg := pixelColor(pixels, width, x, y)
			bg := fg
			if y+1 < height {
				bg = pixelColor(pixels, width, x, y+1)
			}
			s.SetContent(x, row, upperHalf, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}
}

func pixelColor(pixels []byte, width, x, y int) tcell.Color {
	i := (y*width + x) * 4
	return tcell.NewRGBColor(int32(pixels[i]), int32(pixels[i+1]), int32(pixels[i+2]))
}
