package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"gray", color.RGBA{0x80, 0x80, 0x80, 0xff}},
		{"Darkgray", color.RGBA{0xa9, 0xa9, 0xa9, 0xff}},
		{"DeepPink", color.RGBA{0xff, 0x14, 0x93, 0xff}},
		{" black ", color.RGBA{0, 0, 0, 0xff}},
		{"#ff8000", color.RGBA{0xff, 0x80, 0x00, 0xff}},
		{"#FFF", color.RGBA{0xff, 0xff, 0xff, 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Resolve(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Unknown(t *testing.T) {
	for _, in := range []string{"", "notacolor", "#12", "#zzzzzz"} {
		_, err := Resolve(in)
		assert.ErrorIs(t, err, ErrUnknownColor, in)
	}
	assert.Equal(t, Fallback, ResolveOr("nope", Fallback))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff1493", Hex(color.RGBA{0xff, 0x14, 0x93, 0xff}))
}

func TestBlend(t *testing.T) {
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	black := color.RGBA{0, 0, 0, 0xff}

	assert.Equal(t, white, Blend(black, white, 0))
	assert.Equal(t, black, Blend(black, white, 1))
	assert.Equal(t, black, Blend(black, white, 3), "t is clamped")

	mid := Blend(black, white, 0.5)
	assert.InDelta(t, 0x80, int(mid.R), 1)
}

func TestStrokeIntensity(t *testing.T) {
	assert.Equal(t, 0.25, StrokeIntensity(0))
	assert.Equal(t, 0.5, StrokeIntensity(0.25))
	assert.Equal(t, 1.0, StrokeIntensity(0.5))
	assert.Equal(t, 1.0, StrokeIntensity(4))
}
