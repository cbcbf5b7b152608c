// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sagemap

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/flate"
)

// earMagic is the optional header prefix: "EAR\0" followed by a
// little-endian u32 uncompressed size.
var earMagic = [3]byte{'E', 'A', 'R'}

const earHeaderSize = 8

// Compressor is the opaque bytes-to-bytes codec named but not designed by
// the format: in production SAGE maps this is EA's RefPack. This package
// does not implement RefPack (out of scope); it instead wires a real
// ecosystem compressor behind the same interface so the round-trip tests
// exercise the compress=true code path without vendoring a bespoke codec.
type Compressor interface {
	Decompress(data []byte) ([]byte, error)
	Compress(data []byte) ([]byte, error)
}

// flateCompressor backs Compressor with DEFLATE. It is explicitly not
// byte-identical to RefPack; it exists so compress=true round-trips through
// a real, runnable compression library rather than a no-op passthrough.
type flateCompressor struct{}

// NewFlateCompressor returns the default Compressor implementation.
func NewFlateCompressor() Compressor { return flateCompressor{} }

func (flateCompressor) Decompress(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()
	return io.ReadAll(r)
}

func (flateCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// stripEARHeader removes an optional "EAR\0" + u32 uncompressed-size
// header, returning the remaining payload, whether the header was present,
// and the uncompressed size it advertised.
func stripEARHeader(data []byte) (payload []byte, hadHeader bool, uncompressedSize uint32) {
	if len(data) < earHeaderSize {
		return data, false, 0
	}
	if data[0] != earMagic[0] || data[1] != earMagic[1] || data[2] != earMagic[2] {
		return data, false, 0
	}
	size := binary.LittleEndian.Uint32(data[4:8])
	return data[earHeaderSize:], true, size
}

// decompressContainer undoes the compression envelope: an optional EAR
// header, then a Compressor frame, falling back to treating the bytes as
// already uncompressed if decompression fails (used during development;
// spec.md §4.2).
func decompressContainer(data []byte, c Compressor) (payload []byte, hadEARHeader bool) {
	body, hadHeader, _ := stripEARHeader(data)
	decoded, err := c.Decompress(body)
	if err != nil {
		return body, hadHeader
	}
	return decoded, hadHeader
}

// compressContainer applies the compression envelope to body. If
// withEARHeader is set, an "EAR\0" + u32 uncompressed-size header is
// prepended ahead of the compressed payload.
func compressContainer(body []byte, c Compressor, withEARHeader bool) ([]byte, error) {
	compressed, err := c.Compress(body)
	if err != nil {
		return nil, ErrCompressionFailed
	}
	if !withEARHeader {
		return compressed, nil
	}
	out := make([]byte, 0, earHeaderSize+len(compressed))
	out = append(out, earMagic[0], earMagic[1], earMagic[2], 0)
	sizeBuf := make([]byte, 4)
	binary.LittleEndian.PutUint32(sizeBuf, uint32(len(body)))
	out = append(out, sizeBuf...)
	out = append(out, compressed...)
	return out, nil
}
