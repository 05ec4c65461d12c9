package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"nitro-core-dx/internal/renderer"
)

func main() {
	scriptPath := flag.String("script", "", "Path to an SSB script file")
	width := flag.Int("width", 1920, "Destination frame width")
	height := flag.Int("height", 1080, "Destination frame height")
	formatName := flag.String("format", "bgra", "Destination pixel format: bgr, bgrx, bgra")
	tMS := flag.Float64("t", 0, "Timestamp to render, in milliseconds")
	outPath := flag.String("out", "", "PNG file to write the rendered frame to")
	warnings := flag.Bool("warnings", false, "Treat a bad tag/value as fatal instead of dropping it")
	flag.Parse()

	if *scriptPath == "" || *outPath == "" {
		fmt.Println("Usage: ssbrender -script <path.ssb> -out <frame.png>")
		fmt.Println("  -script <path>       Path to an SSB script file")
		fmt.Println("  -width <px>          Destination frame width (default: 1920)")
		fmt.Println("  -height <px>         Destination frame height (default: 1080)")
		fmt.Println("  -format <name>       bgr, bgrx or bgra (default: bgra)")
		fmt.Println("  -t <ms>              Timestamp to render (default: 0)")
		fmt.Println("  -out <path>          PNG file to write")
		fmt.Println("  -warnings            Fail on the first bad tag instead of dropping it")
		os.Exit(1)
	}

	format, bytesPerPixel, err := parseFormat(*formatName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	r, err := renderer.New(*width, *height, format, *scriptPath, *warnings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading script: %v\n", err)
		os.Exit(1)
	}
	for _, w := range r.Warnings() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	fmt.Println("ssbrender")
	fmt.Println("=========")
	fmt.Printf("Script loaded: %s\n", *scriptPath)
	fmt.Printf("Target: %dx%d %s\n", *width, *height, *formatName)
	fmt.Printf("Rendering t=%.3fms...\n", *tMS)

	stride := *width * bytesPerPixel
	frame := make([]byte, stride**height)
	r.Render(frame, stride, *tMS)

	if err := writePNG(*outPath, frame, stride, *width, *height, format); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *outPath, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *outPath)
}

func parseFormat(name string) (renderer.Format, int, error) {
	switch name {
	case "bgr":
		return renderer.FormatBGR, 3, nil
	case "bgrx":
		return renderer.FormatBGRX, 4, nil
	case "bgra":
		return renderer.FormatBGRA, 4, nil
	default:
		return 0, 0, fmt.Errorf("unrecognised format %q (want bgr, bgrx or bgra)", name)
	}
}

// writePNG decodes the bottom-up BGR(X/A) frame blend.Frame expects into a
// top-down image.NRGBA and encodes it, purely for eyeballing a render's
// output; the library ABI never touches image/png itself.
func writePNG(path string, frame []byte, stride, width, height int, format renderer.Format) error {
	bpp := 3
	hasAlpha := format == renderer.FormatBGRA
	if format != renderer.FormatBGR {
		bpp = 4
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		srcRow := (height - 1 - y) * stride // bottom-up source
		for x := 0; x < width; x++ {
			off := srcRow + x*bpp
			b, g, r := frame[off], frame[off+1], frame[off+2]
			a := byte(255)
			if hasAlpha {
				a = frame[off+3]
			}
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
