// Package export writes placement results to PDF drawings, QR furniture
// tags, spreadsheets and DXF files.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/RoomLayout/internal/model"
)

// Page layout constants (A4 landscape in mm)
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5
)

// itemColors cycles through fill colors for furniture kinds.
var itemColors = []struct{ R, G, B int }{
	{76, 175, 80},  // green
	{33, 150, 243}, // blue
	{255, 152, 0},  // orange
	{156, 39, 176}, // purple
	{0, 188, 212},  // cyan
	{244, 67, 54},  // red
	{255, 235, 59}, // yellow
	{121, 85, 72},  // brown
}

// ExportPDF draws the layout on one page and a summary on a second page.
// settings supplies the wall margin and obstacle clearance drawn around the
// room and obstacles.
func ExportPDF(path string, res model.PlacementResult, settings model.Settings) error {
	if !res.Room.Valid() {
		return fmt.Errorf("cannot draw layout for room %vx%v", res.Room.Width, res.Room.Height)
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderLayoutPage(pdf, res, settings)

	pdf.AddPage()
	renderSummaryPage(pdf, res, settings)

	return pdf.OutputFileAndClose(path)
}

// kindColors assigns a palette entry to every distinct kind, in order of
// first appearance.
func kindColors(items []model.PlacedItem) map[string]int {
	out := make(map[string]int)
	for _, p := range items {
		if _, ok := out[p.Kind]; !ok {
			out[p.Kind] = len(out) % len(itemColors)
		}
	}
	return out
}

// layoutScale returns the scale and offsets that fit the room into the
// drawing area, centered horizontally.
func layoutScale(room model.Room) (scale, offsetX, offsetY float64) {
	drawW := pageWidth - marginLeft - marginRight - 10
	drawH := pageHeight - drawAreaTop - marginBottom - legendHeight - 8
	scale = math.Min(drawW/room.Width, drawH/room.Height)
	offsetX = marginLeft + 10 + (drawW-room.Width*scale)/2
	offsetY = drawAreaTop
	return scale, offsetX, offsetY
}

func renderLayoutPage(pdf *fpdf.Fpdf, res model.PlacementResult, settings model.Settings) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Room Layout %s: %.1f x %.1f", res.ID, res.Room.Width, res.Room.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(pageWidth-marginRight-90, marginTop)
	info := fmt.Sprintf("Strategy: %s | Coverage: %.1f%%", res.Strategy, res.Coverage())
	pdf.CellFormat(90, headerHeight, info, "", 0, "R", false, 0, "")

	scale, ox, oy := layoutScale(res.Room)
	canvasW := res.Room.Width * scale
	canvasH := res.Room.Height * scale

	// Floor
	pdf.SetFillColor(250, 248, 240)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.6)
	pdf.Rect(ox, oy, canvasW, canvasH, "FD")

	// Wall margin band
	if m := settings.Margin(res.Room); m > 0 {
		inner := res.Room.Bounds().Inset(m)
		pdf.SetDrawColor(200, 0, 0)
		pdf.SetLineWidth(0.2)
		pdf.SetDashPattern([]float64{2, 1.5}, 0)
		pdf.Rect(ox+inner.X*scale, oy+inner.Y*scale, inner.Width*scale, inner.Height*scale, "D")
		pdf.SetDashPattern([]float64{}, 0)
	}

	// Obstacles with their clearance circle
	clearance := settings.MinSpacing(res.Room) * scale
	for _, o := range res.Obstacles {
		cx, cy := ox+o.X*scale, oy+o.Y*scale
		if clearance > 0 {
			pdf.SetDrawColor(200, 0, 0)
			pdf.SetLineWidth(0.15)
			pdf.Circle(cx, cy, clearance, "D")
		}
		pdf.SetFillColor(200, 0, 0)
		pdf.Circle(cx, cy, 1.2, "F")
	}

	colors := kindColors(res.Placements)
	for i, p := range res.Placements {
		col := itemColors[colors[p.Kind]]
		x := ox + p.X*scale
		y := oy + p.Y*scale
		w := p.Width * scale
		h := p.Height * scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(40, 40, 40)
		pdf.SetLineWidth(0.3)
		pdf.Rect(x, y, w, h, "FD")

		// Placement point
		pdf.SetFillColor(0, 0, 0)
		pdf.Circle(x, y, 0.6, "F")

		fontSize := labelFontSize(w, h)
		pdf.SetFont("Helvetica", "B", fontSize)
		pdf.SetTextColor(0, 0, 0)
		label := fmt.Sprintf("%d %s", i+1, p.Kind)
		if lw := pdf.GetStringWidth(label); lw < w-2 && h > fontSize*0.5 {
			pdf.SetXY(x+(w-lw)/2, y+h/2-2)
			pdf.CellFormat(lw, 4, label, "", 0, "C", false, 0, "")
		} else if nw := pdf.GetStringWidth(fmt.Sprint(i + 1)); nw < w {
			pdf.SetXY(x+(w-nw)/2, y+h/2-2)
			pdf.CellFormat(nw, 4, fmt.Sprint(i+1), "", 0, "C", false, 0, "")
		}
	}

	drawDimensionAnnotations(pdf, res.Room, ox, oy, canvasW, canvasH)
	drawItemsLegend(pdf, res.Placements, colors, oy+canvasH+8)
}

// drawDimensionAnnotations adds width and height labels outside the room.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, room model.Room, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.2f", room.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%.2f", room.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawItemsLegend renders one swatch per furniture kind below the room.
func drawItemsLegend(pdf *fpdf.Fpdf, items []model.PlacedItem, colors map[string]int, startY float64) {
	if len(items) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Furniture:", "", 0, "L", false, 0, "")

	counts := make(map[string]int)
	var order []string
	for _, p := range items {
		if counts[p.Kind] == 0 {
			order = append(order, p.Kind)
		}
		counts[p.Kind]++
	}

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight
	for _, kind := range order {
		col := itemColors[colors[kind]]
		label := fmt.Sprintf("%s x%d", kind, counts[kind])
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")
		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")
		xPos += labelW + 2
	}
}

func renderSummaryPage(pdf *fpdf.Fpdf, res model.PlacementResult, settings model.Settings) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Layout Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18
	y = drawKeyValues(pdf, y, "Overall Statistics", []keyValue{
		{"Room", fmt.Sprintf("%.2f x %.2f", res.Room.Width, res.Room.Height)},
		{"Requested Items", fmt.Sprintf("%d", len(res.Furniture))},
		{"Placed Items", fmt.Sprintf("%d", len(res.Placements))},
		{"Unplaced Items", fmt.Sprintf("%d", len(res.Unplaced))},
		{"Coverage", fmt.Sprintf("%.1f%%", res.Coverage())},
		{"Anchor", fmt.Sprintf("(%.2f, %.2f)", res.Anchor.X, res.Anchor.Y)},
		{"Candidates Sampled", fmt.Sprintf("%d", res.Attempts)},
	})

	y += 5
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Placements", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{15, 50, 35, 35, 35, 35}
	headers := []string{"#", "Kind", "X", "Y", "Width", "Height"}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, p := range res.Placements {
		// Rows that would run off the page continue on a new one
		if y > pageHeight-marginBottom-10 {
			pdf.AddPage()
			y = marginTop
		}
		row := []string{
			fmt.Sprintf("%d", i+1),
			p.Kind,
			fmt.Sprintf("%.2f", p.X),
			fmt.Sprintf("%.2f", p.Y),
			fmt.Sprintf("%.2f", p.Width),
			fmt.Sprintf("%.2f", p.Height),
		}
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		xPos = marginLeft
		for j, cell := range row {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	if len(res.Unplaced) > 0 || len(res.Ignored) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Incomplete Layout", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, u := range res.Unplaced {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(200, 5, fmt.Sprintf("- %s (item %d): no position after %d attempts", u.Kind, u.Index+1, u.Attempts), "", 0, "L", false, 0, "")
			y += 5
		}
		for _, name := range res.Ignored {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(200, 5, fmt.Sprintf("- %q: not in catalog", name), "", 0, "L", false, 0, "")
			y += 5
		}
	}

	y += 8
	drawKeyValues(pdf, y, "Placement Settings", []keyValue{
		{"Policy", string(settings.Policy)},
		{"Wall Margin", fmt.Sprintf("%.2f", settings.Margin(res.Room))},
		{"Obstacle Clearance", fmt.Sprintf("%.2f", settings.MinSpacing(res.Room))},
		{"Retry Budget", fmt.Sprintf("%d", settings.RetryBudget)},
		{"Jitter", fmt.Sprintf("%.2f", settings.Jitter)},
	})

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by RoomLayout", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

type keyValue struct {
	label string
	value string
}

// drawKeyValues writes a titled list of label/value rows and returns the
// next free y position.
func drawKeyValues(pdf *fpdf.Fpdf, y float64, title string, items []keyValue) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, title, "", 0, "L", false, 0, "")
	y += 9

	for _, item := range items {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		y += 7
	}
	return y
}

// labelFontSize returns a font size that suits the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
