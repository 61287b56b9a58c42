package compress

import (
	"archive/tar"
	"bytes"
	"io"
	"time"
)

// TarWriter packs everything written to it into a single file of a TAR
// archive. The content is buffered because the header needs its size.
type TarWriter struct {
	w        io.Writer
	fileName string
	modTime  time.Time
	buf      bytes.Buffer
}

func NewTarWriter(w io.Writer, fileName string) *TarWriter {
	return &TarWriter{
		w:        w,
		fileName: fileName,
		modTime:  time.Now(),
	}
}

func (t *TarWriter) Write(p []byte) (int, error) {
	return t.buf.Write(p)
}

// Close writes the header, the buffered content and the archive trailer.
func (t *TarWriter) Close() error {
	tw := tar.NewWriter(t.w)
	hdr := &tar.Header{
		Typeflag: tar.TypeReg,
		Name:     t.fileName,
		Mode:     0o644,
		Size:     int64(t.buf.Len()),
		ModTime:  t.modTime,
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	if _, err := io.Copy(tw, &t.buf); err != nil {
		return err
	}
	return tw.Close()
}
