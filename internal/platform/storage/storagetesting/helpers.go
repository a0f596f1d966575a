package storagetesting

import (
	"context"
	"database/sql"
	"os"
	"testing"

	pgmodels "github.com/MichalMitros/catalog-importer/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/catalog-importer/internal/platform/storage/gen/postgres/public/table"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	_ "github.com/lib/pq"
)

// Open opens connection to DB.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// InsertManufacturers is a helper test function to insert manufacturers.
func InsertManufacturers(t *testing.T, exc qrm.Executable, manufacturers ...pgmodels.Manufacturer) {
	t.Helper()

	if len(manufacturers) == 0 {
		return
	}

	_, err := table.Manufacturer.INSERT(table.Manufacturer.AllColumns).MODELS(manufacturers).Exec(exc)
	if err != nil {
		t.Fatal("can't insert manufacturers", err)
	}
}

// InsertProducts is a helper test function to insert products with ids assigned by database.
func InsertProducts(t *testing.T, exc qrm.Executable, products ...pgmodels.Product) {
	t.Helper()

	if len(products) == 0 {
		return
	}

	_, err := table.Product.INSERT(table.Product.MutableColumns).MODELS(products).Exec(exc)
	if err != nil {
		t.Fatal("can't insert products", err)
	}
}

// GetProducts is a helper test function to get all products ordered by id.
func GetProducts(t *testing.T, queryable qrm.Queryable) []pgmodels.Product {
	t.Helper()

	products := []pgmodels.Product{}
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(table.Product.ID.IS_NOT_NULL()).
		ORDER_BY(table.Product.ID.ASC()).
		Query(queryable, &products)
	if err != nil {
		t.Fatal("can't get products", err)
	}

	return products
}

// GetProductLangs is a helper test function to get all product descriptions.
func GetProductLangs(t *testing.T, queryable qrm.Queryable) []pgmodels.ProductLang {
	t.Helper()

	langs := []pgmodels.ProductLang{}
	err := table.ProductLang.SELECT(table.ProductLang.AllColumns).
		WHERE(table.ProductLang.ProductID.IS_NOT_NULL()).
		ORDER_BY(table.ProductLang.ProductID.ASC()).
		Query(queryable, &langs)
	if err != nil {
		t.Fatal("can't get product descriptions", err)
	}

	return langs
}

// GetCategoryProducts is a helper test function to get category links of product.
func GetCategoryProducts(t *testing.T, queryable qrm.Queryable, productID int32) []pgmodels.CategoryProduct {
	t.Helper()

	// rows without primary key can't be grouped by qrm, so they are scanned one column at a time
	stmt := table.CategoryProduct.SELECT(table.CategoryProduct.CategoryID).
		WHERE(table.CategoryProduct.ProductID.EQ(pg.Int32(productID)))

	query, args := stmt.Sql()
	rows, err := queryable.QueryContext(context.Background(), query, args...)
	if err != nil {
		t.Fatal("can't get category products", err)
	}
	defer rows.Close()

	links := []pgmodels.CategoryProduct{}
	for rows.Next() {
		link := pgmodels.CategoryProduct{ProductID: productID}
		if err := rows.Scan(&link.CategoryID); err != nil {
			t.Fatal("can't scan category product", err)
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		t.Fatal("can't read category products", err)
	}

	return links
}

// CountCategoryProducts is a helper test function to count all category links.
func CountCategoryProducts(t *testing.T, queryable qrm.Queryable) int64 {
	t.Helper()

	var result struct {
		Count int64
	}
	err := table.CategoryProduct.SELECT(pg.COUNT(pg.STAR).AS("count")).
		Query(queryable, &result)
	if err != nil {
		t.Fatal("can't count category products", err)
	}

	return result.Count
}

// GetProductShops is a helper test function to get all shop mirrors.
func GetProductShops(t *testing.T, queryable qrm.Queryable) []pgmodels.ProductShop {
	t.Helper()

	shops := []pgmodels.ProductShop{}
	err := table.ProductShop.SELECT(table.ProductShop.AllColumns).
		WHERE(table.ProductShop.ProductID.IS_NOT_NULL()).
		ORDER_BY(table.ProductShop.ProductID.ASC()).
		Query(queryable, &shops)
	if err != nil {
		t.Fatal("can't get product shops", err)
	}

	return shops
}

// CleanupData is a helper test function to delete all catalog data.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.CategoryProduct.DELETE().WHERE(table.CategoryProduct.ProductID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete category products data", err)
	}

	_, err = table.ProductShop.DELETE().WHERE(table.ProductShop.ProductID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete product shops data", err)
	}

	_, err = table.ProductLang.DELETE().WHERE(table.ProductLang.ProductID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete product descriptions data", err)
	}

	_, err = table.Product.DELETE().WHERE(table.Product.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete products data", err)
	}

	_, err = table.Manufacturer.DELETE().WHERE(table.Manufacturer.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete manufacturers data", err)
	}
}
