package certificate

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	r, g, b := parseHexColor("#ff8000")
	assert.Equal(t, 255, r)
	assert.Equal(t, 128, g)
	assert.Equal(t, 0, b)

	r, g, b = parseHexColor("not-a-color")
	assert.Equal(t, 0, r)
	assert.Equal(t, 0, g)
	assert.Equal(t, 0, b)

	r, g, b = parseHexColor("#fff")
	assert.Equal(t, [3]int{0, 0, 0}, [3]int{r, g, b})
}

func TestPdfFontMapping(t *testing.T) {
	assert.Equal(t, "Times", pdfFont("Times New Roman"))
	assert.Equal(t, "Courier", pdfFont("courier"))
	assert.Equal(t, "Arial", pdfFont("Roboto"))
	assert.Equal(t, "Arial", pdfFont(""))
}

func TestRenderPDFProducesDocument(t *testing.T) {
	// 200x100 white PNG stand-in for a template image.
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			img.Set(x, y, color.White)
		}
	}
	var imgBuf bytes.Buffer
	require.NoError(t, png.Encode(&imgBuf, img))

	config := TextBoxConfig{
		"volunteer_name": {X: 10, Y: 20, Width: 150, Height: 40, FontSize: 18, FontFamily: "Arial", Color: "#003366", Alignment: "center"},
		"points":         {X: 10, Y: 60, Width: 100, Height: 30, FontSize: 12, Color: "#000000", Alignment: "left"},
	}
	values := map[string]string{
		"volunteer_name": "Tran Thi B",
		"points":         "120",
	}

	out, err := RenderPDF(&imgBuf, "PNG", 200, 100, config, values)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output must be a PDF document")
}

func TestRenderPDFRejectsInvalidDimensions(t *testing.T) {
	_, err := RenderPDF(bytes.NewReader(nil), "PNG", 0, 100, TextBoxConfig{}, nil)
	assert.Error(t, err)
}
