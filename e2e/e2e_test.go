package e2e

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/MichalMitros/catalog-importer/cmd/importer/config"
	"github.com/MichalMitros/catalog-importer/e2e/helpers"
	"github.com/MichalMitros/catalog-importer/internal/fetcher"
	"github.com/MichalMitros/catalog-importer/internal/importer"
	"github.com/MichalMitros/catalog-importer/internal/platform"
	"github.com/MichalMitros/catalog-importer/internal/platform/models"
	"github.com/MichalMitros/catalog-importer/internal/platform/rabbitmq"
	"github.com/MichalMitros/catalog-importer/internal/platform/storage"
	pgmodels "github.com/MichalMitros/catalog-importer/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/catalog-importer/internal/platform/storage/storagetesting"
	"github.com/MichalMitros/catalog-importer/internal/spreadsheet"
	"github.com/MichalMitros/catalog-importer/pkg/v1/notifier"
	"github.com/caarlos0/env/v6"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	userAgent = "catalog-importer-e2e-test/0.0.1"
	exchange  = "catalog-importer-e2e"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	os.Exit(m.Run())
}

func TestE2E(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}

type E2ETestSuite struct {
	suite.Suite
	cfg *config.Config
	db  *sql.DB
}

func (s *E2ETestSuite) SetupSuite() {
	var err error

	var cfg config.Config
	if err = env.Parse(&cfg); err != nil {
		s.Require().FailNow("can't parse env variables", err)
	}
	s.cfg = &cfg

	if s.db, err = sql.Open("postgres", cfg.DSN()); err != nil {
		s.Require().FailNow("can't open Postgres connection", err)
	}
}

func (s *E2ETestSuite) SetupTest() {
	storagetesting.CleanupData(s.T(), s.db)
	storagetesting.InsertManufacturers(s.T(), s.db,
		pgmodels.Manufacturer{ID: 7, Name: "Acme"},
		pgmodels.Manufacturer{ID: 8, Name: "Orbea Bikes"},
	)
}

func (s *E2ETestSuite) TearDownSuite() {
	storagetesting.CleanupData(s.T(), s.db)
	if err := s.db.Close(); err != nil {
		s.FailNow("can't close Postgres connection", err)
	}
}

func (s *E2ETestSuite) TestImport() {
	// Prepare test data
	acme := helpers.GenerateTestData(s.T(), 15, "Acme")
	orbea := helpers.GenerateTestData(s.T(), 5, "orbea")
	unknown := helpers.GenerateTestData(s.T(), 5, "Zeta")
	firstFile := helpers.RecordsToWorkbook(s.T(), lo.Flatten([][]models.ProductRecord{acme, unknown, orbea[:2]}))
	// all products of the first file and three more
	secondFile := helpers.RecordsToWorkbook(s.T(), lo.Flatten([][]models.ProductRecord{orbea, acme, unknown}))

	// Mock http server
	httpSrv, setFile := helpers.PrepareMockedHTTPServer(s.T(), [][]byte{firstFile, secondFile}, http.StatusOK)
	setFile(0)
	location := fmt.Sprintf("%s/%d.xlsx", httpSrv.URL, rand.Intn(100000))

	// Prepare test logger
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	imp := importer.NewImporter(storage.NewPostgres(s.db), importer.DefaultSettings(), &logger)

	// First run
	first, err := imp.Import(context.TODO(), s.readRecords(httpSrv.Client(), location))
	s.Require().NoError(err, "first run shouldn't return any error")

	s.True(first.Committed, "first run should be committed")
	s.Equal(17, first.Inserted(), "should insert products with known manufacturer")
	s.Equal(5, first.SkippedNoManufacturer(), "should skip products with unknown manufacturer")
	s.Equal(0, first.SkippedDuplicates(), "shouldn't skip any duplicate")
	s.assertCatalogSize(17)
	assertLogsMessages(s.T(), "manufacturer not found", 5, &buf)
	assertLogsMessages(s.T(), "product inserted", 17, &buf)

	// Second run
	setFile(1)
	buf.Reset()

	second, err := imp.Import(context.TODO(), s.readRecords(httpSrv.Client(), location))
	s.Require().NoError(err, "second run shouldn't return any error")

	s.Equal(3, second.Inserted(), "should insert only new products")
	s.Equal(17, second.SkippedDuplicates(), "should skip products inserted by first run")
	s.Equal(5, second.SkippedNoManufacturer(), "should skip products with unknown manufacturer again")
	s.assertCatalogSize(20)
	assertLogsMessages(s.T(), "product already exists", 17, &buf)

	products := storagetesting.GetProducts(s.T(), s.db)
	manufacturers := lo.CountValuesBy(products, func(p pgmodels.Product) int32 { return p.ManufacturerID })
	s.Equal(map[int32]int{7: 15, 8: 5}, manufacturers, "should link products with manufacturers")
}

func (s *E2ETestSuite) TestImportScenario() {
	record := models.ProductRecord{
		Name:            "Acme Trail 29",
		Barcode:         "123",
		Reference:       "R1",
		Brand:           "Acme",
		Color:           "Red",
		CategoryID:      12,
		SubcategoryID:   34,
		ListPrice:       "19,99",
		Cost:            "10.00",
		Summary:         "Trail <b>bike</b><script>alert(1)</script>",
		MetaTitle:       "Acme Trail",
		MetaDescription: "Trail bike by Acme",
		ImageURL:        "https://example.com/acme.jpg",
	}
	httpSrv, _ := helpers.PrepareMockedHTTPServer(s.T(), [][]byte{helpers.RecordsToWorkbook(s.T(), []models.ProductRecord{record})}, http.StatusOK)

	logger := zerolog.Nop()
	imp := importer.NewImporter(storage.NewPostgres(s.db), importer.DefaultSettings(), &logger)

	report, err := imp.Import(context.TODO(), s.readRecords(httpSrv.Client(), httpSrv.URL+"/teambike.xlsx"))
	s.Require().NoError(err, "shouldn't return any error")
	s.Require().Equal(1, report.Inserted(), "should insert product")

	products := storagetesting.GetProducts(s.T(), s.db)
	s.Require().Len(products, 1, "should insert one product")
	product := products[0]
	s.Equal(*report.Outcomes[0].ProductID, product.ID, "should report inserted product id")
	s.Equal(int32(7), product.ManufacturerID, "should link manufacturer")
	s.Equal(int32(11), product.SupplierID, "should use default supplier")
	s.Equal(int32(12), product.CategoryDefaultID, "should use record category as default")
	s.Equal(int32(5), product.TaxRulesGroupID, "should use default tax rules group")
	s.InDelta(16.52, product.Price, 0.000001, "should store net price")
	s.InDelta(10, product.WholesalePrice, 0.000001, "should store cost")
	s.Equal(product.DateAdd, product.DateUpd, "should use one timestamp for creation and update")

	langs := storagetesting.GetProductLangs(s.T(), s.db)
	s.Require().Len(langs, 1, "should insert one description")
	s.Equal("<h2>Trail <b>bike</b></h2>", langs[0].Description, "should wrap sanitized summary with heading")
	s.Equal("Acme Trail 29", langs[0].Name, "should store name")

	s.ElementsMatch([]pgmodels.CategoryProduct{
		{CategoryID: 12, ProductID: product.ID},
		{CategoryID: 34, ProductID: product.ID},
	}, storagetesting.GetCategoryProducts(s.T(), s.db, product.ID), "should link both categories")

	shops := storagetesting.GetProductShops(s.T(), s.db)
	s.Require().Len(shops, 1, "should insert one shop mirror")
	s.InDelta(16.52, shops[0].Price, 0.000001, "should mirror net price")
	s.Equal(int32(12), shops[0].CategoryDefaultID, "should mirror default category")
}

func (s *E2ETestSuite) TestImportIsAtomic() {
	records := helpers.GenerateTestData(s.T(), 10, "Acme")
	records[9].ListPrice = "N/A"
	httpSrv, _ := helpers.PrepareMockedHTTPServer(s.T(), [][]byte{helpers.RecordsToWorkbook(s.T(), records)}, http.StatusOK)

	logger := zerolog.Nop()
	imp := importer.NewImporter(storage.NewPostgres(s.db), importer.DefaultSettings(), &logger)

	report, err := imp.Import(context.TODO(), s.readRecords(httpSrv.Client(), httpSrv.URL+"/teambike.xlsx"))

	s.Require().ErrorIs(err, platform.ErrMalformedPrice, "should return malformed price error")
	s.False(report.Committed, "shouldn't commit")
	s.assertCatalogSize(0)
}

func (s *E2ETestSuite) TestDryRun() {
	records := helpers.GenerateTestData(s.T(), 5, "Acme")
	httpSrv, _ := helpers.PrepareMockedHTTPServer(s.T(), [][]byte{helpers.RecordsToWorkbook(s.T(), records)}, http.StatusOK)

	logger := zerolog.Nop()
	imp := importer.NewImporter(storage.NewPostgres(s.db), importer.DefaultSettings(), &logger, importer.WithDryRun(true))

	report, err := imp.Import(context.TODO(), s.readRecords(httpSrv.Client(), httpSrv.URL+"/teambike.xlsx"))

	s.Require().NoError(err, "shouldn't return any error")
	s.True(report.DryRun, "should report dry run")
	s.False(report.Committed, "shouldn't commit")
	s.Equal(5, report.Inserted(), "should report products which would be inserted")
	s.assertCatalogSize(0)
}

func (s *E2ETestSuite) TestImportReportPublished() {
	if s.cfg.RabbitMQ.URL == "" {
		s.T().Skip("RABBITMQ_URL not set")
	}

	connection, err := amqp.Dial(s.cfg.RabbitMQ.URL)
	s.Require().NoError(err, "can't open RabbitMQ connection")
	defer func() { _ = connection.Close() }()

	channel, err := connection.Channel()
	s.Require().NoError(err, "can't open RabbitMQ channel")
	defer func() { _ = channel.Close() }()

	// Prepare test RMQ queue
	helpers.DeclareRMQExchange(s.T(), channel, exchange)
	queue := fmt.Sprintf("catalog-importer-e2e-test-%d", rand.Int63n(100000))
	routingKey := fmt.Sprintf("catalog-importer.e2e.%d", rand.Int63n(100000))
	helpers.DeclareRMQQueue(s.T(), channel, queue, exchange, routingKey)

	rmq, err := rabbitmq.NewRabbitMQ(connection, exchange)
	s.Require().NoError(err, "can't create RabbitMQ client")
	defer func() { _ = rmq.Close() }()
	ntf := notifier.NewReportNotifier(notifier.NewRabbitMQSender(rmq, routingKey))

	// Run import
	records := helpers.GenerateTestData(s.T(), 3, "Acme")
	records = append(records, helpers.GenerateTestData(s.T(), 2, "Zeta")...)
	httpSrv, _ := helpers.PrepareMockedHTTPServer(s.T(), [][]byte{helpers.RecordsToWorkbook(s.T(), records)}, http.StatusOK)

	logger := zerolog.Nop()
	imp := importer.NewImporter(storage.NewPostgres(s.db), importer.DefaultSettings(), &logger)
	report, err := imp.Import(context.TODO(), s.readRecords(httpSrv.Client(), httpSrv.URL+"/teambike.xlsx"))
	s.Require().NoError(err, "shouldn't return any error")

	s.Require().NoError(ntf.NotifyImportFinished(context.TODO(), report), "should publish report")

	delivery := helpers.WaitForMessage(s.T(), channel, queue, 5*time.Second)

	var event notifier.ImportFinished
	s.Require().NoError(json.Unmarshal(delivery.Body, &event), "should publish json event")
	s.Equal("application/json", delivery.ContentType, "should publish json content")
	s.NotEmpty(delivery.MessageId, "should set message id")
	s.Equal(report.RunID.String(), event.RunID, "should publish run id")
	s.Equal(3, event.Inserted, "should publish inserted count")
	s.Equal(2, event.SkippedNoManufacturer, "should publish skipped count")
	s.True(event.Committed, "should publish committed flag")
}

func (s *E2ETestSuite) readRecords(client *http.Client, location string) []models.ProductRecord {
	s.T().Helper()

	file, err := fetcher.NewFetcher(client, userAgent).FetchFile(context.TODO(), location)
	s.Require().NoError(err, "can't fetch spreadsheet")
	defer func() { _ = file.Close() }()

	records, err := spreadsheet.Decoder{SheetName: s.cfg.SheetName}.Decode(context.TODO(), file)
	s.Require().NoError(err, "can't decode spreadsheet")

	return records
}

// assertCatalogSize checks number of products and number of rows linked with them.
func (s *E2ETestSuite) assertCatalogSize(products int) {
	s.T().Helper()

	s.Len(storagetesting.GetProducts(s.T(), s.db), products, "incorrect number of products")
	s.Len(storagetesting.GetProductLangs(s.T(), s.db), products, "incorrect number of product descriptions")
	s.Equal(int64(2*products), storagetesting.CountCategoryProducts(s.T(), s.db), "incorrect number of category links")
	s.Len(storagetesting.GetProductShops(s.T(), s.db), products, "incorrect number of shop mirrors")
}

// assertLogsMessages is helper function which unmarshals json logs and counts messages.
func assertLogsMessages(t *testing.T, message string, count int, buf *bytes.Buffer) {
	t.Helper()

	logs := strings.Split(buf.String(), "\n")
	logs = lo.Filter(logs, func(log string, _ int) bool { return strings.TrimSpace(log) != "" })

	messages := lo.Map(logs, func(log string, _ int) string {
		var entry struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal([]byte(log), &entry), "can't unmarshal json log")
		return entry.Message
	})

	assert.Equalf(t, count, lo.Count(messages, message), "incorrect number of %q logs", message)
}
