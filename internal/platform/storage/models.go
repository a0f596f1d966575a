package storage

import (
	"github.com/MichalMitros/catalog-importer/internal/platform/models"

	pgmodels "github.com/MichalMitros/catalog-importer/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

// ToDBProduct converts models.ProductHeader into postgres product model.
func ToDBProduct(header *models.ProductHeader) *pgmodels.Product {
	return &pgmodels.Product{
		ID:                header.ID,
		SupplierID:        header.SupplierID,
		ManufacturerID:    header.ManufacturerID,
		CategoryDefaultID: header.CategoryDefaultID,
		ShopDefaultID:     header.ShopDefaultID,
		TaxRulesGroupID:   header.TaxRulesGroupID,
		Barcode:           header.Barcode,
		Price:             header.Price.InexactFloat64(),
		WholesalePrice:    header.WholesalePrice.InexactFloat64(),
		Reference:         header.Reference,
		DateAdd:           header.DateAdd,
		DateUpd:           header.DateUpd,
		ExternalImageURL:  header.ExternalImageURL,
	}
}

// ToDBProductLang converts models.ProductDescription into postgres product lang model.
func ToDBProductLang(description *models.ProductDescription) *pgmodels.ProductLang {
	return &pgmodels.ProductLang{
		ProductID:       description.ProductID,
		ShopID:          description.ShopID,
		LangID:          description.LangID,
		Description:     description.Description,
		MetaKeywords:    description.MetaKeywords,
		MetaTitle:       description.MetaTitle,
		MetaDescription: description.MetaDescription,
		Name:            description.Name,
	}
}

// ToDBCategoryProducts converts models.CategoryLink slice into postgres category product slice.
func ToDBCategoryProducts(links []models.CategoryLink) []pgmodels.CategoryProduct {
	if len(links) == 0 {
		return []pgmodels.CategoryProduct{}
	}

	dbLinks := make([]pgmodels.CategoryProduct, 0, len(links))
	for ix := range links {
		dbLinks = append(dbLinks, pgmodels.CategoryProduct{
			CategoryID: links[ix].CategoryID,
			ProductID:  links[ix].ProductID,
		})
	}
	return dbLinks
}

// ToDBProductShop converts models.ProductShop into postgres product shop model.
func ToDBProductShop(shop *models.ProductShop) *pgmodels.ProductShop {
	return &pgmodels.ProductShop{
		ProductID:         shop.ProductID,
		ShopID:            shop.ShopID,
		CategoryDefaultID: shop.CategoryDefaultID,
		TaxRulesGroupID:   shop.TaxRulesGroupID,
		Price:             shop.Price.InexactFloat64(),
		WholesalePrice:    shop.WholesalePrice.InexactFloat64(),
		DateAdd:           shop.DateAdd,
		DateUpd:           shop.DateUpd,
	}
}
