package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/RoomLayout/internal/model"
)

// DXF layer names written by ExportDXF.
const (
	LayerRoom      = "ROOM"
	LayerMargin    = "MARGIN"
	LayerObstacles = "OBSTACLES"
	LayerFurniture = "FURNITURE"
	LayerLabels    = "LABELS"
)

// ExportDXF writes the layout as a DXF drawing. Coordinates are written
// unflipped in room units, so ImportRoomDXF reads the room and obstacles
// back unchanged.
func ExportDXF(path string, res model.PlacementResult, settings model.Settings) error {
	if !res.Room.Valid() {
		return fmt.Errorf("cannot draw layout for room %vx%v", res.Room.Width, res.Room.Height)
	}

	d := dxf.NewDrawing()
	layers := []struct {
		name  string
		color color.ColorNumber
	}{
		{LayerRoom, color.White},
		{LayerMargin, color.Yellow},
		{LayerObstacles, color.Red},
		{LayerFurniture, color.Green},
		{LayerLabels, color.Cyan},
	}
	for _, l := range layers {
		if _, err := d.AddLayer(l.name, l.color, dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("add layer %s: %w", l.name, err)
		}
	}

	if err := rectOnLayer(d, LayerRoom, res.Room.Bounds()); err != nil {
		return err
	}

	if m := settings.Margin(res.Room); m > 0 {
		if err := rectOnLayer(d, LayerMargin, res.Room.Bounds().Inset(m)); err != nil {
			return err
		}
	}

	if err := d.ChangeLayer(LayerObstacles); err != nil {
		return fmt.Errorf("select layer %s: %w", LayerObstacles, err)
	}
	// Obstacles are written as marker circles only. Clearance circles
	// would read back as extra obstacles.
	for _, o := range res.Obstacles {
		if _, err := d.Circle(o.X, o.Y, 0, markerRadius(res.Room)); err != nil {
			return fmt.Errorf("draw obstacle: %w", err)
		}
	}

	for _, p := range res.Placements {
		if err := rectOnLayer(d, LayerFurniture, p.Rect()); err != nil {
			return err
		}
	}

	if err := d.ChangeLayer(LayerLabels); err != nil {
		return fmt.Errorf("select layer %s: %w", LayerLabels, err)
	}
	for i, p := range res.Placements {
		height := p.Height / 5
		if _, err := d.Text(fmt.Sprintf("%d %s", i+1, p.Kind), p.X+p.Width/10, p.Y+p.Height/2, 0, height); err != nil {
			return fmt.Errorf("draw label: %w", err)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("save DXF: %w", err)
	}
	return nil
}

func rectOnLayer(d *drawing.Drawing, layer string, r model.Rect) error {
	if err := d.ChangeLayer(layer); err != nil {
		return fmt.Errorf("select layer %s: %w", layer, err)
	}
	_, err := d.LwPolyline(true,
		[]float64{r.X, r.Y},
		[]float64{r.Right(), r.Y},
		[]float64{r.Right(), r.Bottom()},
		[]float64{r.X, r.Bottom()},
	)
	if err != nil {
		return fmt.Errorf("draw rectangle on %s: %w", layer, err)
	}
	return nil
}

// markerRadius scales the obstacle marker to the room.
func markerRadius(room model.Room) float64 {
	return room.LongestSide() / 100
}
