package importer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yofu/dxf"

	"github.com/piwi3910/RoomLayout/internal/model"
)

func TestImportRoomDXF_PolylineRoom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.dxf")

	d := dxf.NewDrawing()
	_, err := d.LwPolyline(true, []float64{2, 3}, []float64{14, 3}, []float64{14, 13}, []float64{2, 13})
	require.NoError(t, err)
	_, err = d.Circle(8, 8, 0, 0.25)
	require.NoError(t, err)
	_, err = d.Circle(40, 40, 0, 0.25)
	require.NoError(t, err)
	require.NoError(t, d.SaveAs(path))

	result := ImportRoomDXF(path)
	require.Empty(t, result.Errors)
	assert.InDelta(t, 12.0, result.Room.Width, 1e-9)
	assert.InDelta(t, 10.0, result.Room.Height, 1e-9)
	require.Len(t, result.Obstacles, 1)
	assert.InDelta(t, 6.0, result.Obstacles[0].X, 1e-9)
	assert.InDelta(t, 5.0, result.Obstacles[0].Y, 1e-9)
	assert.NotEmpty(t, result.Warnings, "the far circle is reported")
}

func TestImportRoomDXF_FileNotFound(t *testing.T) {
	result := ImportRoomDXF("/nonexistent/plan.dxf")
	assert.NotEmpty(t, result.Errors)
}

func TestChainSegments(t *testing.T) {
	p := func(x, y float64) model.Point2D { return model.Point2D{X: x, Y: y} }
	segs := []segment{
		{p(0, 0), p(4, 0)},
		{p(4, 3), p(4, 0)}, // reversed direction
		{p(4, 3), p(0, 3)},
		{p(0, 3), p(0, 0)},
		{p(10, 10), p(11, 11)}, // open
	}
	outlines := chainSegments(segs, 0.01)
	require.Len(t, outlines, 1)
	assert.Len(t, outlines[0], 4)
	assert.InDelta(t, 12.0, outlineArea(outlines[0]), 1e-9)

	bb := boundingBox(outlines[0])
	assert.Equal(t, model.Rect{X: 0, Y: 0, Width: 4, Height: 3}, bb)
}
