package certificate

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF draws the template image full-bleed on a page matching its pixel
// dimensions (1px = 1pt) and renders each configured field's value inside
// its box. Fields without a value are skipped.
func RenderPDF(image io.Reader, imageType string, widthPx, heightPx float64, config TextBoxConfig, values map[string]string) ([]byte, error) {
	if widthPx <= 0 || heightPx <= 0 {
		return nil, fmt.Errorf("invalid template dimensions %gx%g", widthPx, heightPx)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: widthPx, Ht: heightPx},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: strings.ToUpper(imageType), ReadDpi: false}
	pdf.RegisterImageOptionsReader("template", opts, image)
	pdf.ImageOptions("template", 0, 0, widthPx, heightPx, false, opts, 0, "")

	// Deterministic draw order.
	fields := make([]string, 0, len(config))
	for f := range config {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	for _, field := range fields {
		value := values[field]
		if value == "" {
			continue
		}
		box := config[field]

		r, g, b := parseHexColor(box.Color)
		pdf.SetTextColor(r, g, b)
		pdf.SetFont(pdfFont(box.FontFamily), "", box.FontSize)
		pdf.SetXY(box.X, box.Y)
		pdf.CellFormat(box.Width, box.Height, value, "", 0, pdfAlign(box.Alignment), false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render certificate: %w", err)
	}
	return buf.Bytes(), nil
}

// pdfFont maps a configured family onto gofpdf's built-in fonts.
func pdfFont(family string) string {
	switch strings.ToLower(family) {
	case "times", "times new roman", "serif":
		return "Times"
	case "courier", "monospace":
		return "Courier"
	default:
		return "Arial"
	}
}

func pdfAlign(alignment string) string {
	switch strings.ToLower(alignment) {
	case "left":
		return "LM"
	case "right":
		return "RM"
	default:
		return "CM"
	}
}

// parseHexColor reads "#rrggbb"; anything unparseable comes out black.
func parseHexColor(s string) (r, g, b int) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0
	}
	rv, err1 := strconv.ParseUint(s[0:2], 16, 8)
	gv, err2 := strconv.ParseUint(s[2:4], 16, 8)
	bv, err3 := strconv.ParseUint(s[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0
	}
	return int(rv), int(gv), int(bv)
}
