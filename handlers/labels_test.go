package handlers

import (
	"bytes"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPieceLabelProducesDecodableJPEG(t *testing.T) {
	data, err := renderPieceLabel(labelInfo{
		PieceID:    7,
		TypeID:     2,
		PanelIndex: 1,
		Width:      600,
		Height:     400,
		Rotated:    true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err, "rendered label must be a valid JPEG")

	bounds := img.Bounds()
	assert.Equal(t, 256, bounds.Dx(), "label width should match the QR code size")
	assert.Greater(t, bounds.Dy(), 256, "label height must include the caption text area below the QR code")
}
