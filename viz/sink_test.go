// seehuhn.de/go/stepline - animated line rasterization
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
package viz

import (
	"bytes"
	"context"
	"image/color"
	"image/gif"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGIFSink(t *testing.T) {
	cfg := smallConfig()
	cfg.Width, cfg.Height = 100, 100
	sink := &GIFSink{
		Delay:   cfg.Interval,
		Palette: color.Palette{Black, Red, Green},
	}
	h := &OfflineHost{MaxTimers: 12, Sink: sink}
	require.NoError(t, NewApp(cfg).Install(h))
	require.NoError(t, h.Run(context.Background()))
	assert.Equal(t, 13, sink.Len())

	buf := &bytes.Buffer{}
	require.NoError(t, sink.Encode(buf))

	anim, err := gif.DecodeAll(buf)
	require.NoError(t, err)
	assert.Len(t, anim.Image, 13)
	assert.Equal(t, 5, anim.Delay[0]) // 50ms in units of 10ms
}

func TestGIFSinkEvery(t *testing.T) {
	sink := &GIFSink{Every: 4}
	h := &OfflineHost{MaxTimers: 11, Sink: sink}
	cfg := smallConfig()
	cfg.Width, cfg.Height = 50, 50
	require.NoError(t, NewApp(cfg).Install(h))
	require.NoError(t, h.Run(context.Background()))

	// frames 0, 4, 8 of 12
	assert.Equal(t, 3, sink.Len())
}

func TestEmptySinks(t *testing.T) {
	assert.Error(t, (&GIFSink{}).Encode(&bytes.Buffer{}))
	assert.Error(t, (&PNGSink{}).Encode(&bytes.Buffer{}))
}

func TestPNGSink(t *testing.T) {
	sink := &PNGSink{}
	h := &OfflineHost{MaxTimers: 400, Sink: sink}
	require.NoError(t, NewApp(DefaultConfig()).Install(h))
	require.NoError(t, h.Run(context.Background()))

	buf := &bytes.Buffer{}
	require.NoError(t, sink.Encode(buf))
	img, err := png.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, 600, img.Bounds().Dx())

	// The end point (400,300) of the DDA line is at device (480,240).
	r, g, b, _ := img.At(480, 240).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0, 0}, [3]uint32{r, g, b})
}
