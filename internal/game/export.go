package game

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
)

// selectSavePath asks where to save a snapshot. An empty path means the user
// canceled. Overridden in tests.
var selectSavePath = func(defaultName string) (string, error) {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Recaman Snapshot"),
		zenity.Filename(defaultName),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}

func snapshotName(limit int) string {
	return fmt.Sprintf("recaman-%02d.png", limit)
}

// readImage copies the pixels of an ebiten image into an image.RGBA.
// Only valid while the game is running.
func readImage(img *ebiten.Image) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	img.ReadPixels(out.Pix)
	return out
}

func encodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encodePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// saveSnapshot asks for a path and writes img there. It returns the path
// written, or "" when the dialog was canceled.
func saveSnapshot(limit int, img image.Image) (string, error) {
	path, err := selectSavePath(snapshotName(limit))
	if err != nil {
		return "", fmt.Errorf("save dialog: %w", err)
	}
	if path == "" {
		return "", nil
	}
	if err := writePNG(path, img); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	return path, nil
}
