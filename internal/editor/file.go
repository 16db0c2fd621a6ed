package editor

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxFileSize bounds files embedded as data URLs.
const MaxFileSize = 2 << 20

// File reads the file at path and returns it as a base64 data URL. An empty
// path clears the value.
func File(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("read %s: is a directory", path)
	}
	if info.Size() > MaxFileSize {
		return "", fmt.Errorf("read %s: %d bytes exceeds the %d byte limit", path, info.Size(), MaxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return DataURL(data), nil
}

// DataURL encodes data as a data URL, sniffing its MIME type from content.
func DataURL(data []byte) string {
	mime := mimetype.Detect(data).String()
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
