// Package imagefile loads local image files for submission to the model.
package imagefile

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// MaxDimension bounds the longest side of a submitted image. Larger inputs
// are downscaled before upload to keep request payloads small.
const MaxDimension = 1024

// Image is a loaded image file ready for inline submission.
type Image struct {
	Path     string
	Data     []byte
	MIMEType string
	Width    int
	Height   int
}

// Load reads an image file from disk and verifies it decodes as an image.
// Images whose longest side exceeds MaxDimension are downscaled and
// re-encoded as JPEG. A path that does not resolve to a readable image is a
// fatal input error for the invocation.
func Load(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}

	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("%s is not an image (detected %s)", path, mimeType)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", path, err)
	}

	img := &Image{
		Path:     path,
		Data:     data,
		MIMEType: mimeType,
		Width:    cfg.Width,
		Height:   cfg.Height,
	}
	if img.Width > MaxDimension || img.Height > MaxDimension {
		if err := img.downscale(); err != nil {
			return nil, fmt.Errorf("downscaling %s: %w", path, err)
		}
	}
	return img, nil
}

func (img *Image) downscale() error {
	src, _, err := image.Decode(bytes.NewReader(img.Data))
	if err != nil {
		return err
	}

	scale := float64(MaxDimension) / float64(img.Width)
	if img.Height > img.Width {
		scale = float64(MaxDimension) / float64(img.Height)
	}
	w := int(float64(img.Width) * scale)
	h := int(float64(img.Height) * scale)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 85}); err != nil {
		return err
	}

	img.Data = buf.Bytes()
	img.MIMEType = "image/jpeg"
	img.Width = w
	img.Height = h
	return nil
}

// BaseName returns the image file name without directory or extension, used
// to derive deterministic output file names.
func (img *Image) BaseName() string {
	base := filepath.Base(img.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
