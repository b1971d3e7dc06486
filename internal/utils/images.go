package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"datafeed/internal/model"
)

// imageExtensions lists the file extensions served by the image endpoint.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// IsImageFile reports whether name has a servable image extension.
func IsImageFile(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// DecodeGallery decodes the imagegallery column, which stores a JSON array
// of image paths. Legacy rows sometimes hold malformed or empty payloads;
// those decode to nil rather than an error so a bad gallery never blocks a
// slide.
func DecodeGallery(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var gallery []string
	if err := json.Unmarshal([]byte(raw), &gallery); err != nil {
		return nil
	}
	return gallery
}

// ScanPropertyImages lists the image files under <root>/<id>, sorted by
// filename. Each entry points at the public /images mount; the thumbnail
// URL uses the thumbs/ subdirectory when a matching file exists there.
// A missing property directory yields an empty list, not an error.
func ScanPropertyImages(root, id string) ([]model.PropertyImage, error) {
	dir := filepath.Join(root, id)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.PropertyImage{}, nil
		}
		return nil, fmt.Errorf("failed to read image directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !IsImageFile(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	images := make([]model.PropertyImage, 0, len(names))
	for _, name := range names {
		url := fmt.Sprintf("/images/%s/%s", id, name)
		thumbnail := url
		if _, err := os.Stat(filepath.Join(dir, "thumbs", name)); err == nil {
			thumbnail = fmt.Sprintf("/images/%s/thumbs/%s", id, name)
		}
		images = append(images, model.PropertyImage{
			URL:       url,
			Thumbnail: thumbnail,
			Alt:       fmt.Sprintf("Property %s image - %s", id, name),
			Caption:   "",
		})
	}

	return images, nil
}
