package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/google/brotli/go/cbrotli"
	"github.com/ulikunitz/xz"
)

// LoadFile loads the given file and performs decompression if necessary.
// Archives (.zip, .7z) yield their first file.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return Decompress(filepath.Ext(filename), data)
}

// Decompress decodes data according to the file extension ext. Unknown
// extensions are returned as is.
func Decompress(ext string, data []byte) ([]byte, error) {
	var (
		decoder io.Reader
		err     error
	)
	switch strings.ToLower(ext) {
	case ".gz":
		decoder, err = gzip.NewReader(bytes.NewReader(data))
	case ".xz":
		decoder, err = xz.NewReader(bytes.NewReader(data))
	case ".br":
		return cbrotli.Decode(data)
	case ".zip":
		r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(r.File) == 0 {
			return nil, fmt.Errorf("utils: empty zip archive")
		}

		// read the first file in the archive
		f, err := r.File[0].Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		decoder = f
	case ".7z":
		r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(r.File) == 0 {
			return nil, fmt.Errorf("utils: empty 7z archive")
		}

		// read the first file in the archive
		f, err := r.File[0].Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		decoder = f
	default:
		// .gb, .gbc, .bin, ...
		return data, nil
	}
	if err != nil {
		return nil, err
	}

	// read the decompressed data into a byte slice
	return io.ReadAll(decoder)
}
