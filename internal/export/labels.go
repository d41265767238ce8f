package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/goccy/go-json"
	"github.com/piwi3910/RoomLayout/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// TagInfo holds the data encoded into a furniture tag's QR code.
type TagInfo struct {
	LayoutID string  `json:"layout"`
	Item     int     `json:"item"` // 1-based position in the placement list
	Kind     string  `json:"kind"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
}

// Tag sheet layout for Avery 5160-compatible labels (3 columns, 10 rows on
// US Letter).
const (
	tagMarginTop  = 12.7
	tagMarginLeft = 4.8
	tagWidth      = 66.7
	tagHeight     = 25.4
	tagCols       = 3
	tagRows       = 10
	tagsPerPage   = tagCols * tagRows
	qrSize        = 20.0
	tagPadding    = 2.0
)

// CollectTagInfos returns one tag per placed item, in placement order.
func CollectTagInfos(res model.PlacementResult) []TagInfo {
	tags := make([]TagInfo, 0, len(res.Placements))
	for i, p := range res.Placements {
		tags = append(tags, TagInfo{
			LayoutID: res.ID,
			Item:     i + 1,
			Kind:     p.Kind,
			X:        p.X,
			Y:        p.Y,
			Width:    p.Width,
			Height:   p.Height,
		})
	}
	return tags
}

// ExportTags writes a PDF sheet of QR-coded tags, one per placed item, for
// marking furniture with its target position.
func ExportTags(path string, res model.PlacementResult) error {
	tags := CollectTagInfos(res)
	if len(tags) == 0 {
		return fmt.Errorf("no placed items to generate tags for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, tag := range tags {
		if i%tagsPerPage == 0 {
			pdf.AddPage()
		}
		pos := i % tagsPerPage
		x := tagMarginLeft + float64(pos%tagCols)*tagWidth
		y := tagMarginTop + float64(pos/tagCols)*tagHeight

		if err := renderTag(pdf, x, y, tag); err != nil {
			return fmt.Errorf("render tag for item %d (%s): %w", tag.Item, tag.Kind, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

func renderTag(pdf *fpdf.Fpdf, x, y float64, info TagInfo) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, tagWidth, tagHeight, "D")

	payload, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshal tag info: %w", err)
	}
	png, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%d", info.LayoutID, info.Item)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(imgName, opts, bytes.NewReader(png))
	pdf.ImageOptions(imgName, x+tagWidth-qrSize-tagPadding, y+(tagHeight-qrSize)/2, qrSize, qrSize, false, opts, 0, "")

	textX := x + tagPadding
	textW := tagWidth - qrSize - 3*tagPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+tagPadding)
	pdf.CellFormat(textW, 4.5, truncate(pdf, fmt.Sprintf("#%d %s", info.Item, info.Kind), textW), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+tagPadding+5)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("%.2f x %.2f", info.Width, info.Height), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+tagPadding+9)
	pdf.CellFormat(textW, 3, fmt.Sprintf("At (%.2f, %.2f)", info.X, info.Y), "", 1, "L", false, 0, "")

	if info.LayoutID != "" {
		pdf.SetXY(textX, y+tagPadding+12.5)
		pdf.CellFormat(textW, 3, "Layout "+info.LayoutID, "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// truncate shortens s with an ellipsis until it fits width at the current font.
func truncate(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > width {
		s = s[:len(s)-1]
	}
	return s + "..."
}
