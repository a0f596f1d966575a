package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ProductRecord is single product row read from spreadsheet.
type ProductRecord struct {
	Row             int
	Name            string
	Barcode         string
	Reference       string
	Brand           string
	Color           string
	CategoryID      int32
	SubcategoryID   int32
	ListPrice       string
	Discount        string
	Cost            string
	Summary         string
	Keywords        string
	MetaTitle       string
	MetaDescription string
	ImageURL        string
}

// CatalogProduct is product with all its rows written into catalog.
type CatalogProduct struct {
	Header      ProductHeader
	Description ProductDescription
	Categories  []CategoryLink
	Shop        ProductShop
}

// ProductHeader is catalog product main row.
type ProductHeader struct {
	ID                int32
	SupplierID        int32
	ManufacturerID    int32
	CategoryDefaultID int32
	ShopDefaultID     int32
	TaxRulesGroupID   int32
	Barcode           string
	Price             decimal.Decimal
	WholesalePrice    decimal.Decimal
	Reference         string
	DateAdd           time.Time
	DateUpd           time.Time
	ExternalImageURL  string
}

// ProductDescription is localized product description.
type ProductDescription struct {
	ProductID       int32
	ShopID          int32
	LangID          int32
	Description     string
	MetaKeywords    string
	MetaTitle       string
	MetaDescription string
	Name            string
}

// CategoryLink links product with category.
type CategoryLink struct {
	CategoryID int32
	ProductID  int32
}

// ProductShop is shop scoped copy of product pricing and category.
type ProductShop struct {
	ProductID         int32
	ShopID            int32
	CategoryDefaultID int32
	TaxRulesGroupID   int32
	Price             decimal.Decimal
	WholesalePrice    decimal.Decimal
	DateAdd           time.Time
	DateUpd           time.Time
}

// Status is result of importing single record.
type Status string

const (
	// StatusInserted means product was created.
	StatusInserted Status = "inserted"
	// StatusSkippedDuplicate means product with the same barcode or reference already exists.
	StatusSkippedDuplicate Status = "skipped_duplicate"
	// StatusSkippedNoManufacturer means there is no manufacturer matching record's brand.
	StatusSkippedNoManufacturer Status = "skipped_no_manufacturer"
)

// RecordOutcome is import result of single record.
type RecordOutcome struct {
	Row       int
	Barcode   string
	Reference string
	Status    Status
	ProductID *int32
}

// ImportReport is summary of single import run.
type ImportReport struct {
	RunID      uuid.UUID
	StartedAt  time.Time
	FinishedAt time.Time
	DryRun     bool
	Committed  bool
	Outcomes   []RecordOutcome
}

// Inserted returns number of inserted products.
func (r ImportReport) Inserted() int {
	return r.count(StatusInserted)
}

// SkippedDuplicates returns number of records skipped because product already existed.
func (r ImportReport) SkippedDuplicates() int {
	return r.count(StatusSkippedDuplicate)
}

// SkippedNoManufacturer returns number of records skipped because of missing manufacturer.
func (r ImportReport) SkippedNoManufacturer() int {
	return r.count(StatusSkippedNoManufacturer)
}

func (r ImportReport) count(status Status) int {
	return lo.CountBy(r.Outcomes, func(o RecordOutcome) bool { return o.Status == status })
}
