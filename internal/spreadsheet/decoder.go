package spreadsheet

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/MichalMitros/catalog-importer/internal/platform/models"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Decoder decodes spreadsheet workbooks into product records.
type Decoder struct {
	// SheetName is name of the sheet with products, the active sheet is used when empty.
	SheetName string
}

// Decode reads products from workbook. First row of the sheet is the header,
// blank rows are skipped and records keep order of rows.
func (d Decoder) Decode(ctx context.Context, workbook io.Reader) ([]models.ProductRecord, error) {
	f, err := excelize.OpenReader(workbook)
	if err != nil {
		return nil, fmt.Errorf("can't open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := d.SheetName
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("can't read sheet %q: %w", sheet, err)
	}

	if len(rows) == 0 {
		return nil, ErrMissingHeader
	}

	l, missing := newLayout(rows[0])
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	records := make([]models.ProductRecord, 0, len(rows)-1)
	for ix, row := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if isBlank(row) {
			continue
		}

		record, err := l.record(ix+2, row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (l layout) record(rowNumber int, row []string) (models.ProductRecord, error) {
	category, err := l.categoryID(rowNumber, row, FieldCategory)
	if err != nil {
		return models.ProductRecord{}, err
	}

	subcategory, err := l.categoryID(rowNumber, row, FieldSubcategory)
	if err != nil {
		return models.ProductRecord{}, err
	}

	return models.ProductRecord{
		Row:             rowNumber,
		Name:            l.cell(row, FieldName),
		Barcode:         l.cell(row, FieldBarcode),
		Reference:       l.cell(row, FieldReference),
		Brand:           l.cell(row, FieldBrand),
		Color:           l.cell(row, FieldColor),
		CategoryID:      category,
		SubcategoryID:   subcategory,
		ListPrice:       l.cell(row, FieldListPrice),
		Discount:        l.cell(row, FieldDiscount),
		Cost:            l.cell(row, FieldCost),
		Summary:         l.cell(row, FieldSummary),
		Keywords:        l.cell(row, FieldKeywords),
		MetaTitle:       l.cell(row, FieldMetaTitle),
		MetaDescription: l.cell(row, FieldMetaDescription),
		ImageURL:        l.cell(row, FieldImage),
	}, nil
}

// categoryID parses category id cell, whole numbers written as decimals like "12.0" are accepted.
func (l layout) categoryID(rowNumber int, row []string, field string) (int32, error) {
	value := l.cell(row, field)

	id, err := decimal.NewFromString(value)
	if err != nil || !id.IsInteger() || id.Sign() < 0 || id.GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
		cellName, _ := excelize.CoordinatesToCellName(l[field]+1, rowNumber)
		return 0, fmt.Errorf("%w %s: %s %q is not an id", ErrInvalidCell, cellName, field, value)
	}

	return int32(id.IntPart()), nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
