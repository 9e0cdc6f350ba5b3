/*
Package bmp implements a minimal uncompressed bitmap encoder.

The file is a 14 byte file header and a 40 byte info header, followed by
the pixel rows bottom row first. Every pixel is four bytes: blue, green,
red and an unused padding byte, so rows never need alignment padding. No
compression and no palette are used, so the file is exactly
54 + width*height*4 bytes.
*/
package bmp

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
	"math"
)

const (
	FileHeaderSize = 14
	InfoHeaderSize = 40
	HeaderSize     = FileHeaderSize + InfoHeaderSize
	BitsPerPixel   = 32
	bytesPerPixel  = BitsPerPixel / 8
)

var (
	ErrTooLarge  = errors.New("bmp: image too large")
	ErrNotBitmap = errors.New("bmp: missing BM signature")
)

// FileHeader is the BITMAPFILEHEADER layout.
type FileHeader struct {
	Type      [2]byte
	Size      uint32
	Reserved1 uint16
	Reserved2 uint16
	OffBits   uint32
}

// InfoHeader is the BITMAPINFOHEADER layout.
type InfoHeader struct {
	Size            uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	SizeImage       uint32
	XPixelsPerM     int32
	YPixelsPerM     int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

type Header struct {
	File FileHeader
	Info InfoHeader
}

// NewHeader returns the header for a w x h image.
func NewHeader(w, h int) (Header, error) {
	pixelBytes := uint64(w) * uint64(h) * bytesPerPixel
	if w < 0 || h < 0 || w > math.MaxInt32 || h > math.MaxInt32 || pixelBytes+HeaderSize > math.MaxUint32 {
		return Header{}, fmt.Errorf("%w: %dx%d", ErrTooLarge, w, h)
	}
	return Header{
		File: FileHeader{
			Type:    [2]byte{'B', 'M'},
			Size:    uint32(pixelBytes + HeaderSize),
			OffBits: HeaderSize,
		},
		Info: InfoHeader{
			Size:      InfoHeaderSize,
			Width:     int32(w),
			Height:    int32(h),
			Planes:    1,
			BitCount:  BitsPerPixel,
			SizeImage: uint32(pixelBytes),
		},
	}, nil
}

// Encode writes img as a 32-bit bottom-up bitmap.
func Encode(w io.Writer, img image.Image) error {
	b := img.Bounds()
	hdr, err := NewHeader(b.Dx(), b.Dy())
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, hdr.File); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, hdr.Info); err != nil {
		return err
	}

	row := make([]byte, b.Dx()*bytesPerPixel)
	for y := b.Max.Y - 1; y >= b.Min.Y; y-- {
		for i, x := 0, b.Min.X; x < b.Max.X; i, x = i+bytesPerPixel, x+1 {
			r, g, bl, _ := img.At(x, y).RGBA()
			row[i+0] = uint8(bl >> 8)
			row[i+1] = uint8(g >> 8)
			row[i+2] = uint8(r >> 8)
			row[i+3] = 0
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Bytes returns the encoded bitmap.
func Bytes(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeHeader parses the first HeaderSize bytes of a bitmap.
func DecodeHeader(data []byte) (Header, error) {
	var hdr Header
	if len(data) < HeaderSize {
		return hdr, fmt.Errorf("bmp: short header: %d bytes", len(data))
	}
	r := bytes.NewReader(data[:HeaderSize])
	if err := binary.Read(r, binary.LittleEndian, &hdr.File); err != nil {
		return hdr, err
	}
	if hdr.File.Type != [2]byte{'B', 'M'} {
		return hdr, ErrNotBitmap
	}
	if err := binary.Read(r, binary.LittleEndian, &hdr.Info); err != nil {
		return hdr, err
	}
	return hdr, nil
}
