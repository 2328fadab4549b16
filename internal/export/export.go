package export

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/idilsaglam/shoplist/internal/model"
)

// DejaVu covers Latin Extended, so names like "Śmietana" survive in the PDF.
//
//go:embed fonts/DejaVuSansCondensed.ttf
var dejaVu []byte

// Formats lists what Export accepts.
var Formats = []string{"json", "csv", "pdf"}

func Export(items []model.Item, format string) ([]byte, error) {
	if items == nil {
		items = []model.Item{}
	}
	switch strings.ToLower(format) {
	case "json":
		return json.MarshalIndent(items, "", "  ")
	case "csv":
		var b bytes.Buffer
		w := csv.NewWriter(&b)
		if err := w.Write([]string{"id", "name", "quantity", "purchased"}); err != nil {
			return nil, err
		}
		for _, it := range items {
			if err := w.Write([]string{it.ID, it.Name, strconv.Itoa(it.Quantity), strconv.FormatBool(it.Purchased)}); err != nil {
				return nil, err
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, err
		}
		return b.Bytes(), nil
	case "pdf":
		return pdf(items, true)
	default:
		return nil, fmt.Errorf("unknown format %s", format)
	}
}

func pdf(items []model.Item, compress bool) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetCompression(compress)
	doc.AddUTF8FontFromBytes("DejaVu", "", dejaVu)
	doc.AddPage()
	doc.SetFont("DejaVu", "", 16)
	doc.Cell(40, 10, "Shopping list")
	doc.Ln(12)
	doc.SetFont("DejaVu", "", 11)
	if len(items) == 0 {
		doc.Cell(40, 7, "(empty)")
	}
	for _, it := range items {
		box := "[ ]"
		if it.Purchased {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s : %d", box, it.Name, it.Quantity)
		doc.MultiCell(0, 7, line, "0", "L", false)
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
