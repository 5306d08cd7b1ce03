package bgstrip

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"

	"assetkit/internal/fileutil"
)

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func saveImage(img image.Image, path string) error {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		if err := imaging.Encode(w, img, imaging.PNG); err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		return nil
	})
}

// Process strips the background of the PNG at inputPath and writes it to
// outputPath. An empty outputPath rewrites inputPath in place. The output is
// always PNG with the input's dimensions.
func Process(inputPath, outputPath string, threshold uint8) (int, error) {
	if outputPath == "" {
		outputPath = inputPath
	}
	img, err := loadImage(inputPath)
	if err != nil {
		return 0, err
	}
	out, cleared := StripImage(img, threshold)
	if err := saveImage(out, outputPath); err != nil {
		return 0, err
	}
	return cleared, nil
}
