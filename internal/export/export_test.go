package export

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/idilsaglam/shoplist/internal/model"
)

var sample = []model.Item{
	{ID: "a", Name: "Milk", Quantity: 2},
	{ID: "b", Name: "Eggs, large", Quantity: 12, Purchased: true},
}

func TestExportJSON(t *testing.T) {
	b, err := Export(sample, "json")
	if err != nil {
		t.Fatal(err)
	}
	var got []model.Item
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, sample) {
		t.Errorf("json export = %+v", got)
	}
	if !bytes.Contains(b, []byte(`"isPurchased": true`)) {
		t.Errorf("json export lost the stored field names:\n%s", b)
	}
	if b, _ := Export(nil, "JSON"); string(b) != "[]" {
		t.Errorf("empty json export = %s", b)
	}
}

func TestExportCSV(t *testing.T) {
	b, err := Export(sample, "csv")
	if err != nil {
		t.Fatal(err)
	}
	want := "id,name,quantity,purchased\na,Milk,2,false\nb,\"Eggs, large\",12,true\n"
	if string(b) != want {
		t.Errorf("csv export =\n%s\nwant\n%s", b, want)
	}
}

func TestExportPDF(t *testing.T) {
	b, err := Export(sample, "pdf")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Errorf("pdf export does not start with a PDF header")
	}
}

func TestExportPDFKeepsPolishLetters(t *testing.T) {
	name := "Śmietana żółć"
	b, err := pdf([]model.Item{{ID: "a", Name: name, Quantity: 1}}, false)
	if err != nil {
		t.Fatal(err)
	}
	var utf16 []byte
	for _, r := range name {
		utf16 = append(utf16, byte(r>>8), byte(r))
	}
	if !bytes.Contains(b, utf16) {
		t.Errorf("pdf content does not carry %q as UTF-16", name)
	}
}

func TestExportUnknown(t *testing.T) {
	_, err := Export(sample, "xml")
	if err == nil || !strings.Contains(err.Error(), "xml") {
		t.Fatalf("err = %v", err)
	}
}
