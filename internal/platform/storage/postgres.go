package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MichalMitros/catalog-importer/internal/importer"
	"github.com/MichalMitros/catalog-importer/internal/platform"
	"github.com/MichalMitros/catalog-importer/internal/platform/models"
	"github.com/MichalMitros/catalog-importer/internal/platform/storage/gen/postgres/public/table"

	pgmodels "github.com/MichalMitros/catalog-importer/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// likeEscaper escapes LIKE pattern wildcards, backslash is Postgres' default escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Postgres is storage for catalog products.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// Ping checks if database is reachable.
func (p Postgres) Ping(ctx context.Context) error {
	if err := p.db.PingContext(ctx); err != nil {
		return fmt.Errorf("can't reach database: %w", err)
	}
	return nil
}

// InTransaction runs fn with catalog bound to new transaction.
// Transaction is committed when fn returns nil and rolled back otherwise.
func (p Postgres) InTransaction(ctx context.Context, fn importer.TxFunc) error {
	return runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		return fn(ctx, &txCatalog{db: tx})
	})
}

// txCatalog reads and writes catalog within transaction.
type txCatalog struct {
	db qrm.DB
}

// ProductExists reports whether there is product with provided barcode or reference.
// Empty barcode or reference never matches, product without any of them never exists.
func (c *txCatalog) ProductExists(ctx context.Context, barcode, reference string) (bool, error) {
	var keys []pg.BoolExpression
	if strings.TrimSpace(barcode) != "" {
		keys = append(keys, table.Product.Barcode.EQ(pg.String(barcode)))
	}
	if strings.TrimSpace(reference) != "" {
		keys = append(keys, table.Product.Reference.EQ(pg.String(reference)))
	}
	if len(keys) == 0 {
		return false, nil
	}

	var product pgmodels.Product
	err := table.Product.SELECT(table.Product.ID).
		WHERE(pg.OR(keys...)).
		LIMIT(1).
		QueryContext(ctx, c.db, &product)

	if errors.Is(err, qrm.ErrNoRows) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("can't get product from database: %w", err)
	}

	return true, nil
}

// ManufacturerID returns id of the first manufacturer whose name contains brand, ignoring case.
// Returns platform.ErrManufacturerNotFound for empty brand or when there is no such manufacturer.
func (c *txCatalog) ManufacturerID(ctx context.Context, brand string) (int32, error) {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return 0, platform.ErrManufacturerNotFound
	}

	pattern := "%" + likeEscaper.Replace(strings.ToLower(brand)) + "%"

	var manufacturer pgmodels.Manufacturer
	err := table.Manufacturer.SELECT(table.Manufacturer.ID).
		WHERE(pg.LOWER(table.Manufacturer.Name).LIKE(pg.String(pattern))).
		ORDER_BY(table.Manufacturer.ID.ASC()).
		LIMIT(1).
		QueryContext(ctx, c.db, &manufacturer)

	if errors.Is(err, qrm.ErrNoRows) {
		return 0, platform.ErrManufacturerNotFound
	}

	if err != nil {
		return 0, fmt.Errorf("can't get manufacturer from database: %w", err)
	}

	return manufacturer.ID, nil
}

// InsertProduct inserts product header and returns its id.
func (c *txCatalog) InsertProduct(ctx context.Context, header *models.ProductHeader) (int32, error) {
	product := ToDBProduct(header)
	err := table.Product.INSERT(table.Product.MutableColumns).
		MODEL(product).
		RETURNING(table.Product.ID).
		QueryContext(ctx, c.db, product)
	if err != nil {
		return 0, fmt.Errorf("can't insert product into database: %w", err)
	}

	return product.ID, nil
}

// InsertDescription inserts product description.
func (c *txCatalog) InsertDescription(ctx context.Context, description *models.ProductDescription) error {
	_, err := table.ProductLang.INSERT(table.ProductLang.AllColumns).
		MODEL(ToDBProductLang(description)).
		ExecContext(ctx, c.db)
	if err != nil {
		return fmt.Errorf("can't insert product description into database: %w", err)
	}

	return nil
}

// InsertCategoryLinks inserts product categories. Duplicated links are inserted as they are.
func (c *txCatalog) InsertCategoryLinks(ctx context.Context, links []models.CategoryLink) error {
	if len(links) == 0 {
		return nil
	}

	_, err := table.CategoryProduct.INSERT(table.CategoryProduct.AllColumns).
		MODELS(ToDBCategoryProducts(links)).
		ExecContext(ctx, c.db)
	if err != nil {
		return fmt.Errorf("can't insert product categories into database: %w", err)
	}

	return nil
}

// InsertShopMirror inserts shop scoped product row.
func (c *txCatalog) InsertShopMirror(ctx context.Context, shop *models.ProductShop) error {
	_, err := table.ProductShop.INSERT(table.ProductShop.AllColumns).
		MODEL(ToDBProductShop(shop)).
		ExecContext(ctx, c.db)
	if err != nil {
		return fmt.Errorf("can't insert product shop into database: %w", err)
	}

	return nil
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
