package importer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/catalog-importer/internal/platform"
	"github.com/MichalMitros/catalog-importer/internal/platform/models"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Catalog --filename catalog.go

// TxFunc is executed inside catalog transaction.
type TxFunc func(ctx context.Context, catalog Catalog) error

// Storage runs functions inside catalog transactions.
type Storage interface {
	// InTransaction commits changes made by fn when it returns nil and rolls them back otherwise.
	InTransaction(ctx context.Context, fn TxFunc) error
}

// Catalog reads and writes catalog rows within single transaction.
type Catalog interface {
	// ProductExists reports whether there is product with provided barcode or reference.
	ProductExists(ctx context.Context, barcode, reference string) (bool, error)
	// ManufacturerID returns id of manufacturer whose name contains brand, ignoring case.
	// Returns platform.ErrManufacturerNotFound if there is no such manufacturer.
	ManufacturerID(ctx context.Context, brand string) (int32, error)
	// InsertProduct inserts product header and returns its new id.
	InsertProduct(ctx context.Context, header *models.ProductHeader) (int32, error)
	// InsertDescription inserts localized product description.
	InsertDescription(ctx context.Context, description *models.ProductDescription) error
	// InsertCategoryLinks links product with categories.
	InsertCategoryLinks(ctx context.Context, links []models.CategoryLink) error
	// InsertShopMirror inserts shop scoped product row.
	InsertShopMirror(ctx context.Context, shop *models.ProductShop) error
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

// Settings holds catalog constants used for every imported product.
type Settings struct {
	SupplierID      int32
	ShopID          int32
	LangID          int32
	TaxRulesGroupID int32
	// TaxRate is tax included in list prices, in percents.
	TaxRate decimal.Decimal
}

// DefaultSettings returns settings of the default shop.
func DefaultSettings() Settings {
	return Settings{
		SupplierID:      11,
		ShopID:          1,
		LangID:          1,
		TaxRulesGroupID: 5,
		TaxRate:         decimal.NewFromInt(21),
	}
}

// Option is custom configuration of Importer.
type Option func(i *Importer)

// Importer imports product records into catalog.
type Importer struct {
	storage   Storage
	settings  Settings
	logger    *zerolog.Logger
	clock     Clock
	newRunID  func() uuid.UUID
	sanitizer *bluemonday.Policy
	dryRun    bool
}

// errDryRun rolls back dry run transaction.
var errDryRun = errors.New("dry run")

// NewImporter returns new Importer.
func NewImporter(storage Storage, settings Settings, logger *zerolog.Logger, ops ...Option) *Importer {
	imp := &Importer{
		storage:   storage,
		settings:  settings,
		logger:    logger,
		clock:     systemClock{},
		newRunID:  newRunID,
		sanitizer: bluemonday.UGCPolicy(),
	}

	for _, op := range ops {
		op(imp)
	}

	return imp
}

// Import imports records in single transaction. Records which already exist in catalog
// or have no matching manufacturer are skipped.
// Any other failure rolls back the whole batch. Report is returned also on failure.
func (i *Importer) Import(ctx context.Context, records []models.ProductRecord) (*models.ImportReport, error) {
	report := &models.ImportReport{
		RunID:     i.newRunID(),
		StartedAt: i.clock.Now(),
		DryRun:    i.dryRun,
		Outcomes:  make([]models.RecordOutcome, 0, len(records)),
	}

	err := i.storage.InTransaction(ctx, func(ctx context.Context, catalog Catalog) error {
		for ix := range records {
			outcome, err := i.importRecord(ctx, catalog, &records[ix])
			if err != nil {
				return fmt.Errorf("can't import record from row %d: %w", records[ix].Row, err)
			}
			report.Outcomes = append(report.Outcomes, *outcome)
		}

		if i.dryRun {
			return errDryRun
		}
		return nil
	})

	report.FinishedAt = i.clock.Now()

	if err != nil && !errors.Is(err, errDryRun) {
		return report, err
	}

	report.Committed = !i.dryRun

	return report, nil
}

func (i *Importer) importRecord(
	ctx context.Context,
	catalog Catalog,
	record *models.ProductRecord,
) (*models.RecordOutcome, error) {
	outcome := &models.RecordOutcome{
		Row:       record.Row,
		Barcode:   record.Barcode,
		Reference: record.Reference,
	}
	logger := i.logger.With().
		Int("row", record.Row).
		Str("barcode", record.Barcode).
		Str("reference", record.Reference).
		Logger()

	exists, err := catalog.ProductExists(ctx, record.Barcode, record.Reference)
	if err != nil {
		return nil, fmt.Errorf("can't check if product exists: %w", err)
	}
	if exists {
		logger.Info().Msg("product already exists")
		outcome.Status = models.StatusSkippedDuplicate
		return outcome, nil
	}

	manufacturerID, err := catalog.ManufacturerID(ctx, record.Brand)
	if errors.Is(err, platform.ErrManufacturerNotFound) {
		logger.Warn().Str("brand", record.Brand).Msg("manufacturer not found")
		outcome.Status = models.StatusSkippedNoManufacturer
		return outcome, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can't find manufacturer: %w", err)
	}

	price, cost, err := derivePrices(record.ListPrice, record.Cost, i.settings.TaxRate)
	if err != nil {
		return nil, err
	}

	product := i.toCatalogProduct(record, manufacturerID, price, cost, i.clock.Now())

	if err := i.insertProduct(ctx, catalog, product); err != nil {
		return nil, err
	}

	logger.Debug().
		Int32("productId", product.Header.ID).
		Int32("manufacturerId", manufacturerID).
		Str("price", price.StringFixed(2)).
		Msg("product inserted")

	outcome.Status = models.StatusInserted
	outcome.ProductID = lo.ToPtr(product.Header.ID)

	return outcome, nil
}

// insertProduct writes product header and sets new product id on all its rows before writing them.
func (i *Importer) insertProduct(ctx context.Context, catalog Catalog, product *models.CatalogProduct) error {
	productID, err := catalog.InsertProduct(ctx, &product.Header)
	if err != nil {
		return fmt.Errorf("can't insert product: %w", err)
	}

	product.Header.ID = productID
	product.Description.ProductID = productID
	product.Shop.ProductID = productID
	lo.ForEach(product.Categories, func(_ models.CategoryLink, ix int) { product.Categories[ix].ProductID = productID })

	if err = catalog.InsertDescription(ctx, &product.Description); err != nil {
		return fmt.Errorf("can't insert product description: %w", err)
	}

	if err = catalog.InsertCategoryLinks(ctx, product.Categories); err != nil {
		return fmt.Errorf("can't link product with categories: %w", err)
	}

	if err = catalog.InsertShopMirror(ctx, &product.Shop); err != nil {
		return fmt.Errorf("can't insert product shop: %w", err)
	}

	return nil
}

func (i *Importer) toCatalogProduct(
	record *models.ProductRecord,
	manufacturerID int32,
	price decimal.Decimal,
	cost decimal.Decimal,
	now time.Time,
) *models.CatalogProduct {
	return &models.CatalogProduct{
		Header: models.ProductHeader{
			SupplierID:        i.settings.SupplierID,
			ManufacturerID:    manufacturerID,
			CategoryDefaultID: record.CategoryID,
			ShopDefaultID:     i.settings.ShopID,
			TaxRulesGroupID:   i.settings.TaxRulesGroupID,
			Barcode:           record.Barcode,
			Price:             price,
			WholesalePrice:    cost,
			Reference:         record.Reference,
			DateAdd:           now,
			DateUpd:           now,
			ExternalImageURL:  record.ImageURL,
		},
		Description: models.ProductDescription{
			ShopID:          i.settings.ShopID,
			LangID:          i.settings.LangID,
			Description:     "<h2>" + i.sanitizer.Sanitize(record.Summary) + "</h2>",
			MetaKeywords:    record.Keywords,
			MetaTitle:       record.MetaTitle,
			MetaDescription: record.MetaDescription,
			Name:            record.Name,
		},
		// subcategory and default category are both linked, even when equal
		Categories: []models.CategoryLink{
			{CategoryID: record.SubcategoryID},
			{CategoryID: record.CategoryID},
		},
		Shop: models.ProductShop{
			ShopID:            i.settings.ShopID,
			CategoryDefaultID: record.CategoryID,
			TaxRulesGroupID:   i.settings.TaxRulesGroupID,
			Price:             price,
			WholesalePrice:    cost,
			DateAdd:           now,
			DateUpd:           now,
		},
	}
}

// WithClock sets Importer's custom Clock.
func WithClock(c Clock) Option {
	return func(i *Importer) {
		i.clock = c
	}
}

// WithDryRun makes Importer roll back the transaction after all records are processed.
func WithDryRun(dryRun bool) Option {
	return func(i *Importer) {
		i.dryRun = dryRun
	}
}

// WithRunIDGenerator sets function generating import run ids.
func WithRunIDGenerator(fn func() uuid.UUID) Option {
	return func(i *Importer) {
		i.newRunID = fn
	}
}
