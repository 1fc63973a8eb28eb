package bluenoise_test

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"math"
	"testing"

	"github.com/am-sokolov/go-bluenoise/bluenoise"
)

func rampMask() *bluenoise.Mask {
	m := &bluenoise.Mask{Width: 4, Height: 2, Layers: 1, Data: make([]float64, 8)}
	for i := range m.Data {
		m.Data[i] = float64(i) / 7
	}
	return m
}

func TestMaskGray_8Bit(t *testing.T) {
	m := rampMask()
	img, err := m.Gray(0, 8)
	if err != nil {
		t.Fatalf("Gray: %v", err)
	}
	gray, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("got %T want *image.Gray", img)
	}
	for i, v := range m.Data {
		want := uint8(v*255 + 0.5)
		if gray.Pix[i] != want {
			t.Fatalf("pixel %d: got %d want %d", i, gray.Pix[i], want)
		}
	}
}

func TestMaskGray_16Bit(t *testing.T) {
	m := rampMask()
	img, err := m.Gray(0, 16)
	if err != nil {
		t.Fatalf("Gray: %v", err)
	}
	gray, ok := img.(*image.Gray16)
	if !ok {
		t.Fatalf("got %T want *image.Gray16", img)
	}
	for i, v := range m.Data {
		want := uint16(v*65535 + 0.5)
		got := uint16(gray.Pix[i*2])<<8 | uint16(gray.Pix[i*2+1])
		if got != want {
			t.Fatalf("pixel %d: got %d want %d", i, got, want)
		}
	}
}

func TestMaskGray_Validation(t *testing.T) {
	m := rampMask()
	if _, err := m.Gray(0, 12); bluenoise.ErrorCodeOf(err) != bluenoise.ErrBadParam {
		t.Fatalf("12-bit: got %v want BLUENOISE_ERR_BAD_PARAM", err)
	}
	if _, err := m.Gray(1, 8); bluenoise.ErrorCodeOf(err) != bluenoise.ErrBadParam {
		t.Fatalf("layer out of range: got %v want BLUENOISE_ERR_BAD_PARAM", err)
	}
}

func TestMaskWritePFM(t *testing.T) {
	m := rampMask()
	var buf bytes.Buffer
	if err := m.WritePFM(&buf, 0); err != nil {
		t.Fatalf("WritePFM: %v", err)
	}

	wantHeader := fmt.Sprintf("Pf\n%d %d\n-1.0\n", 4, 2)
	data := buf.Bytes()
	if !bytes.HasPrefix(data, []byte(wantHeader)) {
		t.Fatalf("header got %q want prefix %q", data[:minLen(len(data), 16)], wantHeader)
	}
	body := data[len(wantHeader):]
	if len(body) != 4*2*4 {
		t.Fatalf("body length got %d want %d", len(body), 4*2*4)
	}
	// Rows are bottom-up: the first stored row is logical row 1.
	for y := 0; y < 2; y++ {
		srcRow := 1 - y
		for x := 0; x < 4; x++ {
			bits := binary.LittleEndian.Uint32(body[(y*4+x)*4:])
			got := math.Float32frombits(bits)
			want := float32(m.Data[srcRow*4+x])
			if got != want {
				t.Fatalf("row %d col %d: got %v want %v", y, x, got, want)
			}
		}
	}
}

func TestMaskWritePFM_BadLayer(t *testing.T) {
	m := rampMask()
	var buf bytes.Buffer
	if err := m.WritePFM(&buf, 3); bluenoise.ErrorCodeOf(err) != bluenoise.ErrBadParam {
		t.Fatalf("got %v want BLUENOISE_ERR_BAD_PARAM", err)
	}
}

func minLen(a, b int) int {
	if a < b {
		return a
	}
	return b
}
