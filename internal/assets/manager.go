package assets

import (
	"bytes"
	"embed"
	"image"
	_ "image/png" // Register PNG format
	"strings"

	"github.com/pkg/errors"
)

//go:embed images/*.png about.txt
var projectAssets embed.FS

// LoadImage decodes an embedded PNG
func LoadImage(name string) (image.Image, error) {
	fileData, err := projectAssets.ReadFile("images/" + name)
	if err != nil {
		return nil, errors.Wrapf(err, "read image %q", name)
	}

	img, _, err := image.Decode(bytes.NewReader(fileData))
	if err != nil {
		return nil, errors.Wrapf(err, "decode image %q", name)
	}

	return img, nil
}

// Icon is the window icon
func Icon() (image.Image, error) {
	return LoadImage("icon.png")
}

// AboutLines is the about box text, one entry per line
func AboutLines() []string {
	data, err := projectAssets.ReadFile("about.txt")
	if err != nil {
		return []string{"Xeyes"}
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}
