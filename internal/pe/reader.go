// Package pe provides PE file reading and import table extraction.
package pe

import (
	"debug/pe"
	"fmt"
	"io"
	"os"
)

// Reader wraps debug/pe.File with the underlying file and metadata.
type Reader struct {
	raw      *os.File
	file     *pe.File
	filepath string
	filesize int64
}

// Open opens a PE file for reading.
func Open(filepath string) (*Reader, error) {
	raw, err := os.Open(filepath) //nolint:gosec // analysing user-supplied files is the point
	if err != nil {
		return nil, fmt.Errorf("打开文件失败: %w", err)
	}

	stat, err := raw.Stat()
	if err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("获取文件信息失败: %w", err)
	}
	if stat.IsDir() {
		_ = raw.Close()
		return nil, fmt.Errorf("打开PE文件失败: %s 是目录", filepath)
	}

	f, err := pe.NewFile(raw)
	if err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("打开PE文件失败: %w", err)
	}

	return &Reader{
		raw:      raw,
		file:     f,
		filepath: filepath,
		filesize: stat.Size(),
	}, nil
}

// Close closes the PE file and the underlying file.
func (r *Reader) Close() error {
	_ = r.file.Close()
	return r.raw.Close()
}

// File returns the underlying debug/pe.File.
func (r *Reader) File() *pe.File {
	return r.file
}

// RawFile returns the underlying file for direct reads.
func (r *Reader) RawFile() io.ReaderAt {
	return r.raw
}

// FilePath returns the file path.
func (r *Reader) FilePath() string {
	return r.filepath
}

// FileSize returns the file size in bytes.
func (r *Reader) FileSize() int64 {
	return r.filesize
}
