package config

import (
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/MichalMitros/catalog-importer/internal/importer"
	"github.com/shopspring/decimal"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string        `env:"DATABASE_URL"`
	SpreadsheetPath string        `env:"SPREADSHEET_PATH" envDefault:"teambike.xlsx"`
	SheetName       string        `env:"SHEET_NAME"`
	HTTPTimeout     time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	DryRun          bool          `env:"DRY_RUN" envDefault:"false"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`

	Database Database
	Catalog  Catalog
	RabbitMQ RabbitMQ
}

// Database holds database connection parameters used when DATABASE_URL is not set.
type Database struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"postgres"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// Catalog holds fixed catalog identifiers written with every product.
type Catalog struct {
	SupplierID      int32           `env:"CATALOG_SUPPLIER_ID" envDefault:"11"`
	ShopID          int32           `env:"CATALOG_SHOP_ID" envDefault:"1"`
	LangID          int32           `env:"CATALOG_LANG_ID" envDefault:"1"`
	TaxRulesGroupID int32           `env:"CATALOG_TAX_RULES_GROUP_ID" envDefault:"5"`
	TaxRate         decimal.Decimal `env:"CATALOG_TAX_RATE" envDefault:"21"`
}

// RabbitMQ holds RabbitMQ configuration. Import reports are not published when URL is empty.
type RabbitMQ struct {
	URL        string `env:"RABBITMQ_URL"`
	Exchange   string `env:"RABBITMQ_EXCHANGE" envDefault:"catalog-importer-ex"`
	RoutingKey string `env:"RABBITMQ_ROUTING_KEY" envDefault:"catalog-importer.import-finished"`
}

// DSN returns database connection string, DATABASE_URL takes precedence over connection parameters.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	dsn := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port)),
		Path:   "/" + c.Database.Name,
	}
	if c.Database.Password != "" {
		dsn.User = url.UserPassword(c.Database.User, c.Database.Password)
	} else {
		dsn.User = url.User(c.Database.User)
	}

	query := url.Values{}
	query.Set("sslmode", c.Database.SSLMode)
	dsn.RawQuery = query.Encode()

	return dsn.String()
}

// Settings returns importer settings.
func (c Catalog) Settings() importer.Settings {
	return importer.Settings{
		SupplierID:      c.SupplierID,
		ShopID:          c.ShopID,
		LangID:          c.LangID,
		TaxRulesGroupID: c.TaxRulesGroupID,
		TaxRate:         c.TaxRate,
	}
}
