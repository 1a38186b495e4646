// Package filemgr stores uploaded business images under static/ and renders
// a thumbnail next to each original.
package filemgr

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

type PictureType string

const (
	PicPhoto  PictureType = "photo"
	PicBanner PictureType = "banner"
)

const uploadRoot = "static/businesspic"

var allowedExtensions = map[PictureType][]string{
	PicPhoto:  {".jpg", ".jpeg", ".png", ".gif", ".webp"},
	PicBanner: {".jpg", ".jpeg", ".png"},
}

var allowedMIMEs = map[PictureType][]string{
	PicPhoto:  {"image/jpeg", "image/png", "image/gif", "image/webp"},
	PicBanner: {"image/jpeg", "image/png"},
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// SaveImageWithThumb validates the upload, writes the original, and saves a
// resized jpg thumbnail. Returns the stored file name and thumb name.
func SaveImageWithThumb(file multipart.File, header *multipart.FileHeader, picType PictureType, thumbWidth int) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !contains(allowedExtensions[picType], ext) {
		return "", "", fmt.Errorf("file extension %q not allowed", ext)
	}
	if mime := header.Header.Get("Content-Type"); mime != "" && !contains(allowedMIMEs[picType], mime) {
		return "", "", fmt.Errorf("content type %q not allowed", mime)
	}

	if err := os.MkdirAll(uploadRoot, 0o755); err != nil {
		return "", "", err
	}

	img, err := imaging.Decode(file)
	if err != nil {
		return "", "", fmt.Errorf("decode image: %w", err)
	}

	name := string(picType) + "-" + uuid.NewString()
	origName := name + ext
	if err := imaging.Save(img, filepath.Join(uploadRoot, origName)); err != nil {
		return "", "", fmt.Errorf("save image: %w", err)
	}

	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	thumbName := name + "-thumb.jpg"
	if err := imaging.Save(thumb, filepath.Join(uploadRoot, thumbName)); err != nil {
		return "", "", fmt.Errorf("save thumbnail: %w", err)
	}

	return origName, thumbName, nil
}
