package icon

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
)

// https://en.wikipedia.org/wiki/ICO_(file_format)
type icondir struct {
	Reserved  uint16
	ImageType uint16
	NumImages uint16
}

type icondirentry struct {
	ImageWidth   uint8
	ImageHeight  uint8
	NumColors    uint8
	Reserved     uint8
	ColorPlanes  uint16
	BitsPerPixel uint16
	SizeInBytes  uint32
	Offset       uint32
}

const (
	icondirSize      = 6
	icondirentrySize = 16

	// MaxSize is the largest frame an ICO directory entry can describe.
	MaxSize = 256
)

// ErrFormat is returned when data is not a well-formed ICO container.
var ErrFormat = errors.New("ico: invalid format")

func newIcondir(numImages uint16) icondir {
	return icondir{ImageType: 1, NumImages: numImages}
}

func newIcondirentry(b image.Rectangle, size int) icondirentry {
	return icondirentry{
		ImageWidth:   dimension(b.Dx()),
		ImageHeight:  dimension(b.Dy()),
		ColorPlanes:  1,
		BitsPerPixel: 32,
		SizeInBytes:  uint32(size),
	}
}

// A 256 px side is stored as 0.
func dimension(n int) uint8 {
	if n >= MaxSize {
		return 0
	}
	return uint8(n)
}

// EncodeICO writes frames as a Windows icon. Each frame is stored as an
// embedded PNG, in the order given.
func EncodeICO(w io.Writer, frames []image.Image) error {
	if len(frames) == 0 {
		return errors.New("ico: no frames")
	}
	if len(frames) > 0xffff {
		return fmt.Errorf("ico: too many frames (%d)", len(frames))
	}

	header := new(bytes.Buffer)
	if err := binary.Write(header, binary.LittleEndian, newIcondir(uint16(len(frames)))); err != nil {
		return err
	}

	data := new(bytes.Buffer)
	offset := uint32(icondirSize + icondirentrySize*len(frames))
	for i, frame := range frames {
		b := frame.Bounds()
		if b.Dx() > MaxSize || b.Dy() > MaxSize || b.Empty() {
			return fmt.Errorf("ico: frame %d is %dx%d, want 1..%d", i, b.Dx(), b.Dy(), MaxSize)
		}

		pngBuf := new(bytes.Buffer)
		if err := png.Encode(pngBuf, frame); err != nil {
			return fmt.Errorf("ico: encode frame %d: %w", i, err)
		}

		ide := newIcondirentry(b, pngBuf.Len())
		ide.Offset = offset
		offset += ide.SizeInBytes
		if err := binary.Write(header, binary.LittleEndian, ide); err != nil {
			return err
		}
		data.Write(pngBuf.Bytes())
	}

	if _, err := w.Write(header.Bytes()); err != nil {
		return err
	}
	_, err := w.Write(data.Bytes())
	return err
}

// Frame is one decoded entry of an ICO container.
type Frame struct {
	Width, Height int
	Image         image.Image
}

// DecodeICO reads every frame of an ICO container whose images are PNG
// encoded, as written by EncodeICO.
func DecodeICO(r io.Reader) ([]Frame, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	rd := bytes.NewReader(raw)

	var dir icondir
	if err := binary.Read(rd, binary.LittleEndian, &dir); err != nil {
		return nil, ErrFormat
	}
	if dir.Reserved != 0 || dir.ImageType != 1 {
		return nil, ErrFormat
	}

	entries := make([]icondirentry, dir.NumImages)
	if err := binary.Read(rd, binary.LittleEndian, entries); err != nil {
		return nil, ErrFormat
	}

	frames := make([]Frame, 0, len(entries))
	for i, e := range entries {
		end := uint64(e.Offset) + uint64(e.SizeInBytes)
		if end > uint64(len(raw)) {
			return nil, fmt.Errorf("%w: frame %d out of range", ErrFormat, i)
		}
		img, err := png.Decode(bytes.NewReader(raw[e.Offset:end]))
		if err != nil {
			return nil, fmt.Errorf("ico: frame %d: %w", i, err)
		}
		frames = append(frames, Frame{
			Width:  undimension(e.ImageWidth),
			Height: undimension(e.ImageHeight),
			Image:  img,
		})
	}
	return frames, nil
}

func undimension(b uint8) int {
	if b == 0 {
		return MaxSize
	}
	return int(b)
}
