package modelstesting

import (
	"math/rand"
	"strconv"

	"github.com/MichalMitros/catalog-importer/internal/platform/models"
	"github.com/go-faker/faker/v4"
)

// FakeRecord returns models.ProductRecord with fake data and valid prices.
func FakeRecord(ops ...func(r *models.ProductRecord)) models.ProductRecord {
	record := models.ProductRecord{
		Row:             rand.Intn(1000) + 2,
		Name:            faker.Word(),
		Barcode:         fakeBarcode(),
		Reference:       "REF-" + faker.UUIDDigit()[:10],
		Brand:           faker.Word(),
		Color:           faker.Word(),
		CategoryID:      rand.Int31n(100) + 1,
		SubcategoryID:   rand.Int31n(100) + 1,
		ListPrice:       fakeAmount(),
		Discount:        strconv.Itoa(rand.Intn(50)),
		Cost:            fakeAmount(),
		Summary:         faker.Sentence(),
		Keywords:        faker.Word(),
		MetaTitle:       faker.Word(),
		MetaDescription: faker.Sentence(),
		ImageURL:        faker.URL(),
	}

	for _, op := range ops {
		op(&record)
	}

	return record
}

// fakeBarcode returns random 13 digits.
func fakeBarcode() string {
	digits := make([]byte, 13)
	for ix := range digits {
		digits[ix] = byte('0' + rand.Intn(10))
	}
	return string(digits)
}

// fakeAmount returns random amount with comma decimal separator.
func fakeAmount() string {
	return strconv.Itoa(rand.Intn(500)+1) + "," + strconv.Itoa(rand.Intn(90)+10)
}
