// Package compress packs a single generated file into a zip or tar archive.
package compress

import (
	"fmt"
	"io"
)

const (
	TypeZip = "zip"
	TypeTar = "tar"
)

// NewWriter returns an archive writer of archiveType holding fileName.
func NewWriter(archiveType string, w io.Writer, fileName string) (io.WriteCloser, error) {
	switch archiveType {
	case TypeZip:
		return NewZipWriter(w, fileName)
	case TypeTar:
		return NewTarWriter(w, fileName), nil
	default:
		return nil, fmt.Errorf("unsupported archive type %q", archiveType)
	}
}

// ContentType is the media type of archiveType.
func ContentType(archiveType string) string {
	if archiveType == TypeTar {
		return "application/x-tar"
	}
	return "application/zip"
}
