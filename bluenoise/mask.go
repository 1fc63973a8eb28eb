package bluenoise

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"math"
)

// Gray renders layer l at the requested bit depth: 8 returns *image.Gray,
// 16 returns *image.Gray16. Other depths are rejected; 32-bit output goes
// through WritePFM instead.
func (m *Mask) Gray(l, bits int) (image.Image, error) {
	if m == nil || l < 0 || l >= m.Layers {
		return nil, newError(ErrBadParam, "bluenoise: invalid layer index")
	}

	n := m.Width * m.Height
	layer := m.Data[l*n : (l+1)*n]

	switch bits {
	case 8:
		img := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
		for i, v := range layer {
			img.Pix[i] = uint8(v*255 + 0.5)
		}
		return img, nil
	case 16:
		img := image.NewGray16(image.Rect(0, 0, m.Width, m.Height))
		for i, v := range layer {
			s := uint16(v*65535 + 0.5)
			img.Pix[i*2] = uint8(s >> 8)
			img.Pix[i*2+1] = uint8(s)
		}
		return img, nil
	default:
		return nil, newError(ErrBadParam, "bluenoise: invalid bit depth (want 8 or 16)")
	}
}

// WritePFM writes layer l as a binary grayscale PFM ("Pf") image, the 32-bit
// float output path. The negative scale marks little-endian sample order, and
// rows are written bottom-up as the format requires.
func (m *Mask) WritePFM(w io.Writer, l int) error {
	if m == nil || l < 0 || l >= m.Layers {
		return newError(ErrBadParam, "bluenoise: invalid layer index")
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "Pf\n%d %d\n-1.0\n", m.Width, m.Height); err != nil {
		return err
	}

	n := m.Width * m.Height
	layer := m.Data[l*n : (l+1)*n]
	var buf [4]byte
	for y := m.Height - 1; y >= 0; y-- {
		row := layer[y*m.Width : (y+1)*m.Width]
		for _, v := range row {
			binary.LittleEndian.PutUint32(buf[:], math.Float32bits(float32(v)))
			if _, err := bw.Write(buf[:]); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
