package spreadsheet

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Field names of product record columns.
const (
	FieldName            = "name"
	FieldBarcode         = "barcode"
	FieldReference       = "reference"
	FieldBrand           = "brand"
	FieldColor           = "color"
	FieldCategory        = "category"
	FieldSubcategory     = "subcategory"
	FieldListPrice       = "list price"
	FieldDiscount        = "discount"
	FieldCost            = "cost"
	FieldSummary         = "summary"
	FieldKeywords        = "keywords"
	FieldMetaTitle       = "meta title"
	FieldMetaDescription = "meta description"
	FieldImage           = "image"
)

// Column describes spreadsheet column holding one product record field.
type Column struct {
	Field    string
	Aliases  []string
	Required bool
}

var columns = []Column{
	{Field: FieldName, Aliases: []string{"nombre", "name", "product name"}, Required: true},
	{Field: FieldBarcode, Aliases: []string{"ean13", "ean 13", "ean", "barcode", "gtin"}, Required: true},
	{Field: FieldReference, Aliases: []string{"reference", "referencia", "ref", "sku"}, Required: true},
	{Field: FieldBrand, Aliases: []string{"marca", "brand", "manufacturer", "fabricante"}, Required: true},
	{Field: FieldColor, Aliases: []string{"color", "colour"}},
	{Field: FieldCategory, Aliases: []string{"categoria", "category", "default category"}, Required: true},
	{Field: FieldSubcategory, Aliases: []string{"subcategoria", "subcategory"}, Required: true},
	{Field: FieldListPrice, Aliases: []string{"pvp", "precio", "price", "list price"}, Required: true},
	{Field: FieldDiscount, Aliases: []string{"descuento", "discount"}},
	{Field: FieldCost, Aliases: []string{"costo", "coste", "cost", "wholesale price"}, Required: true},
	{Field: FieldSummary, Aliases: []string{"resumen", "summary"}},
	{Field: FieldKeywords, Aliases: []string{"keyword", "keywords", "palabras clave"}},
	{Field: FieldMetaTitle, Aliases: []string{"meta titulo", "meta title"}},
	{Field: FieldMetaDescription, Aliases: []string{"meta descripcion", "meta description"}},
	{Field: FieldImage, Aliases: []string{"imagen", "image", "image url", "image link"}},
}

// Columns returns columns recognized in header row.
func Columns() []Column {
	result := make([]Column, 0, len(columns))
	for _, col := range columns {
		col.Aliases = append([]string(nil), col.Aliases...)
		result = append(result, col)
	}
	return result
}

// layout maps fields to column indexes of the sheet.
type layout map[string]int

// newLayout finds column of every known field in header row.
// The first matching header wins when the same alias is used more than once.
func newLayout(header []string) (layout, []string) {
	normalized := make([]string, len(header))
	for ix, h := range header {
		normalized[ix] = normalizeHeader(h)
	}

	l := layout{}
	var missing []string
	for _, col := range columns {
		ix := findColumn(normalized, col.Aliases)
		if ix < 0 {
			if col.Required {
				missing = append(missing, col.Field)
			}
			continue
		}
		l[col.Field] = ix
	}

	// keywords were historically read from the summary column
	if _, ok := l[FieldKeywords]; !ok {
		if ix, ok := l[FieldSummary]; ok {
			l[FieldKeywords] = ix
		}
	}

	return l, missing
}

// cell returns trimmed value of field in row, empty string when field has no column or cell is missing.
func (l layout) cell(row []string, field string) string {
	ix, ok := l[field]
	if !ok || ix >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[ix])
}

func findColumn(header []string, aliases []string) int {
	for _, alias := range aliases {
		alias = normalizeHeader(alias)
		for ix, h := range header {
			if h == alias {
				return ix
			}
		}
	}
	return -1
}

// normalizeHeader folds case, strips accents and required markers, and treats '_' and '-' as spaces.
func normalizeHeader(header string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, header)
	if err != nil {
		stripped = header
	}

	folded := cases.Fold().String(stripped)
	folded = strings.TrimSuffix(strings.TrimSpace(folded), "*")
	folded = strings.NewReplacer("_", " ", "-", " ").Replace(folded)

	return strings.Join(strings.Fields(folded), " ")
}
