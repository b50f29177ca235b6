// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package lcsk

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"
)

// Magic numbers of the compressed input formats the reader unwraps.
var (
	gzipMagic = []byte{0x1f, 0x8b}
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// Preprocess shifts every byte up by one and appends the terminator,
// reserving the zero value for the per-stream sentinels.
func Preprocess(data []byte) []uint16 {
	out := make([]uint16, len(data)+1)
	for i, b := range data {
		out[i] = uint16(b) + 1
	}
	out[len(data)] = terminator
	return out
}

// ReadFileAndPreprocess reads path and returns its preprocessed symbol
// stream. gzip and xz inputs are decompressed before preprocessing, so
// common payloads can be searched across compressed artifacts.
func ReadFileAndPreprocess(path string) ([]uint16, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data, err = unwrap(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Preprocess(data), nil
}

// unwrap decompresses data when it starts with a known magic number and
// returns it untouched otherwise.
func unwrap(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case bytes.HasPrefix(data, xzMagic):
		xr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return io.ReadAll(xr)
	}
	return data, nil
}
