package bgslib

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var ErrNoImages = errors.New("No image to draw")

// LoadImages decodes every path it can. Unreadable files are logged and
// skipped, it's only an error if nothing at all could be loaded.
func LoadImages(paths []string) ([]image.Image, error) {
	images := []image.Image{}

	for _, p := range paths {
		img, err := loadImage(p)
		if err != nil {
			log.Printf("Warning: Cannot load file `%s`. Ignoring. (%s)\n", p, err)
			continue
		}
		images = append(images, img)
	}

	if len(images) == 0 {
		return nil, ErrNoImages
	}
	return images, nil
}

func loadImage(path string) (image.Image, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return nil, err
	}

	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("Input image [%s] is not a regular file", path)
	}

	img, _, err := image.Decode(in)
	if err != nil {
		return nil, err
	}

	if img.Bounds().Empty() {
		return nil, fmt.Errorf("Input image [%s] is empty", path)
	}
	return img, nil
}
