package files

import (
	"fmt"
	"io"
	"os"
)

// ErrTooLarge is returned by ReadLimited for a file over the limit.
var ErrTooLarge = fmt.Errorf("file too large")

// EnsureDir creates dir and its parents when missing.
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// ReadLimited reads a whole file, refusing one larger than maxBytes.
// maxBytes <= 0 means no limit.
func ReadLimited(filePath string, maxBytes int64) ([]byte, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", filePath)
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrTooLarge, filePath, info.Size(), maxBytes)
	}

	data := make([]byte, 0, info.Size())
	buf := make([]byte, 32*1024)
	for {
		n, err := f.Read(buf)
		data = append(data, buf[:n]...)
		if maxBytes > 0 && int64(len(data)) > maxBytes {
			return nil, fmt.Errorf("%w: %s grew past limit %d", ErrTooLarge, filePath, maxBytes)
		}
		if err == io.EOF {
			return data, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
