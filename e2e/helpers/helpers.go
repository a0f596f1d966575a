package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MichalMitros/catalog-importer/internal/fetcher"
	"github.com/MichalMitros/catalog-importer/internal/platform/models"
	"github.com/MichalMitros/catalog-importer/internal/platform/models/modelstesting"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const (
	contentType = "Content-Type"
	sheet       = "Sheet1"
)

var header = []any{
	"Nombre", "Ean13", "Reference", "Marca", "Color", "Categoría", "Subcategoría", "PVP",
	"Descuento", "Costo", "Resumen", "Meta_Título", "Meta_Descripción", "Imagen",
}

// PrepareMockedHTTPServer is helper function for mocking http srv serving workbooks.
// Returns function for setting workbook to return, workbook number is from 0 to len(workbooks) exclusive.
func PrepareMockedHTTPServer(t *testing.T, workbooks [][]byte, statusCode int) (*httptest.Server, func(int)) {
	t.Helper()

	workbookToReturnIx := 0

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		wrt.Header().Add(contentType, fetcher.XLSXContentType)
		wrt.WriteHeader(statusCode)
		_, _ = wrt.Write(workbooks[workbookToReturnIx])
	}))

	t.Cleanup(func() {
		srv.Close()
	})

	return srv, func(i int) { workbookToReturnIx = i }
}

// DeclareRMQExchange is helper function for declaring RMQ exchange.
func DeclareRMQExchange(t *testing.T, ch *amqp.Channel, exchange string) {
	t.Helper()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}
}

// DeclareRMQQueue is helper function for declaring RMQ queue and binding and cleaning them after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}

// WaitForMessage is helper function polling queue until message arrives or timeout passes.
func WaitForMessage(t *testing.T, channel *amqp.Channel, queueName string, timeout time.Duration) amqp.Delivery {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		delivery, ok, err := channel.Get(queueName, true)
		if err != nil {
			require.FailNow(t, "can't get message", queueName, err)
		}
		if ok {
			return delivery
		}
		time.Sleep(50 * time.Millisecond)
	}

	require.FailNow(t, "no message received", queueName)
	return amqp.Delivery{}
}

// GenerateTestData generates n product records of brand.
func GenerateTestData(t *testing.T, n int, brand string) []models.ProductRecord {
	t.Helper()

	results := make([]models.ProductRecord, n)
	for ix := range results {
		results[ix] = modelstesting.FakeRecord(func(r *models.ProductRecord) {
			r.Brand = brand
			r.Row = ix + 2
		})
	}

	return results
}

// RecordsToWorkbook is helper function writing records into xlsx workbook, one row per record.
func RecordsToWorkbook(t *testing.T, records []models.ProductRecord) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	setRow(t, f, 1, header)
	for ix := range records {
		r := &records[ix]
		setRow(t, f, ix+2, []any{
			r.Name, r.Barcode, r.Reference, r.Brand, r.Color, r.CategoryID, r.SubcategoryID, r.ListPrice,
			r.Discount, r.Cost, r.Summary, r.MetaTitle, r.MetaDescription, r.ImageURL,
		})
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		require.FailNow(t, "can't write workbook", err)
	}

	return buf.Bytes()
}

func setRow(t *testing.T, f *excelize.File, row int, values []any) {
	t.Helper()

	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		require.FailNow(t, "can't get cell name", err)
	}

	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		require.FailNow(t, "can't set row", row, err)
	}
}
