package config

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"
	"time"

	"github.com/ian-kent/gofigure"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// UnsetAPIKey is the placeholder shipped in deployment templates for the Asaas API key
const UnsetAPIKey = "SUA_CHAVE_API_AQUI"

// Key store backends
const (
	KeyStoreFile  = "file"
	KeyStoreMongo = "mongo"
)

// Config is the polo report service config
type Config struct {
	gofigure                 interface{} `order:"env,flag"`
	BindAddr                 string      `env:"BIND_ADDR"                            flag:"bind-addr"                            flagDesc:"Bind address for the HTTP server"`
	AsaasAPIKey              string      `env:"ASAAS_API_KEY"                        flag:"asaas-api-key"                        flagDesc:"Asaas API access token"`
	AsaasBaseURL             string      `env:"ASAAS_BASE_URL"                       flag:"asaas-base-url"                       flagDesc:"Base URL for the Asaas API"`
	AsaasTimeoutSeconds      int         `env:"ASAAS_TIMEOUT_SECONDS"                flag:"asaas-timeout-seconds"                flagDesc:"Timeout applied to every Asaas API call"`
	ReportPageSize           int         `env:"REPORT_PAGE_SIZE"                     flag:"report-page-size"                     flagDesc:"Page size used when walking the customer collection"`
	ReportMaxPageLoops       int         `env:"REPORT_MAX_PAGE_LOOPS"                flag:"report-max-page-loops"                flagDesc:"Maximum customer pages fetched per report"`
	DefaultMaxClientes       int         `env:"REPORT_DEFAULT_MAX_CLIENTES"          flag:"report-default-max-clientes"          flagDesc:"Default maximum customers considered per report"`
	DefaultMaxFaturasCliente int         `env:"REPORT_DEFAULT_MAX_FATURAS_CLIENTE"   flag:"report-default-max-faturas-cliente"   flagDesc:"Default maximum payments fetched per customer"`
	DefaultMaxRegistros      int         `env:"REPORT_DEFAULT_MAX_REGISTROS"         flag:"report-default-max-registros"         flagDesc:"Default maximum rows emitted per report"`
	LimitMaxClientes         int         `env:"REPORT_LIMIT_MAX_CLIENTES"            flag:"report-limit-max-clientes"            flagDesc:"Hard ceiling for max_clientes"`
	LimitMaxFaturasCliente   int         `env:"REPORT_LIMIT_MAX_FATURAS_CLIENTE"     flag:"report-limit-max-faturas-cliente"     flagDesc:"Hard ceiling for max_faturas_cliente"`
	LimitMaxRegistros        int         `env:"REPORT_LIMIT_MAX_REGISTROS"           flag:"report-limit-max-registros"           flagDesc:"Hard ceiling for max_registros"`
	KeyStore                 string      `env:"KEY_STORE"                            flag:"key-store"                            flagDesc:"Access key store backend (file or mongo)"`
	PartnersFile             string      `env:"PARTNERS_FILE"                        flag:"partners-file"                        flagDesc:"Path of the flat access key file"`
	MongoDBURL               string      `env:"MONGODB_URL"                          flag:"mongodb-url"                          flagDesc:"MongoDB server URL"`
	Database                 string      `env:"PARTNERS_MONGODB_DATABASE"            flag:"mongodb-database"                     flagDesc:"MongoDB database for access keys"`
	PartnerKeysCollection    string      `env:"MONGODB_PARTNER_KEYS_COLLECTION"      flag:"mongodb-partner-keys-collection"      flagDesc:"MongoDB collection for access keys"`
	AdminToken               string      `env:"ADMIN_TOKEN"                          flag:"admin-token"                          flagDesc:"Token required on the admin endpoints"`
	BrokerAddr               []string    `env:"KAFKA_BROKER_ADDR"                    flag:"broker-addr"                          flagDesc:"Kafka broker cluster address"`
	SchemaRegistryURL        string      `env:"SCHEMA_REGISTRY_URL"                  flag:"schema-registry-url"                  flagDesc:"Schema registry url"`
	PartnerKeyChangedTopic   string      `env:"PARTNER_KEY_CHANGED_TOPIC"            flag:"partner-key-changed-topic"            flagDesc:"Topic receiving access key change events"`
	ProtectedKeysFile        string      `env:"PROTECTED_KEYS_FILE"                  flag:"protected-keys-file"                  flagDesc:"YAML file listing the protected access keys"`
}

// ReportLimits holds the bounds applied to every report
type ReportLimits struct {
	PageSize     int
	MaxPageLoops int

	DefaultMaxClientes       int
	DefaultMaxFaturasCliente int
	DefaultMaxRegistros      int

	LimitMaxClientes       int
	LimitMaxFaturasCliente int
	LimitMaxRegistros      int
}

// Namespace returns the service namespace used for logging
func (c *Config) Namespace() string {
	return "polo-report-service"
}

// AsaasTimeout returns the per-call timeout for the Asaas API
func (c *Config) AsaasTimeout() time.Duration {
	return time.Duration(c.AsaasTimeoutSeconds) * time.Second
}

// UpstreamConfigured reports whether an Asaas credential has been supplied
func (c *Config) UpstreamConfigured() bool {
	apiKey := strings.TrimSpace(c.AsaasAPIKey)
	return apiKey != "" && apiKey != UnsetAPIKey
}

// AuditEnabled reports whether key change events should be published to Kafka
func (c *Config) AuditEnabled() bool {
	return len(c.BrokerAddr) > 0 && c.PartnerKeyChangedTopic != ""
}

// ReportLimits returns the report bounds derived from the config
func (c *Config) ReportLimits() ReportLimits {
	return ReportLimits{
		PageSize:                 c.ReportPageSize,
		MaxPageLoops:             c.ReportMaxPageLoops,
		DefaultMaxClientes:       c.DefaultMaxClientes,
		DefaultMaxFaturasCliente: c.DefaultMaxFaturasCliente,
		DefaultMaxRegistros:      c.DefaultMaxRegistros,
		LimitMaxClientes:         c.LimitMaxClientes,
		LimitMaxFaturasCliente:   c.LimitMaxFaturasCliente,
		LimitMaxRegistros:        c.LimitMaxRegistros,
	}
}

// ProtectedKey is a well-known access key provisioned at start up
type ProtectedKey struct {
	Chave string `yaml:"chave"`
	Nome  string `yaml:"nome"`
	Polo  string `yaml:"polo"`
}

// ProtectedKeys contains the protected access key set
type ProtectedKeys struct {
	Keys []ProtectedKey `yaml:"protected_keys"`
}

// GetProtectedKeys reads the protected access key set from the given YAML file
func GetProtectedKeys(path string) (*ProtectedKeys, error) {

	filename, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	yamlFile, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var protectedKeys ProtectedKeys
	err = yaml.Unmarshal(yamlFile, &protectedKeys)
	if err != nil {
		return nil, err
	}

	return &protectedKeys, nil
}

// Default returns a Config populated with the built-in defaults
func Default() *Config {
	return &Config{
		BindAddr:                 ":5000",
		AsaasAPIKey:              UnsetAPIKey,
		AsaasBaseURL:             "https://www.asaas.com/api/v3",
		AsaasTimeoutSeconds:      30,
		ReportPageSize:           100,
		ReportMaxPageLoops:       50,
		DefaultMaxClientes:       200,
		DefaultMaxFaturasCliente: 100,
		DefaultMaxRegistros:      2000,
		LimitMaxClientes:         1000,
		LimitMaxFaturasCliente:   100,
		LimitMaxRegistros:        10000,
		KeyStore:                 KeyStoreFile,
		PartnersFile:             "partners.json",
		Database:                 "polo_reports",
		PartnerKeysCollection:    "partner_keys",
		ProtectedKeysFile:        "assets/protected_keys.yml",
	}
}

// Validate rejects numeric settings that would leave upstream calls or report loops unbounded
func (c *Config) Validate() error {

	positive := []struct {
		name  string
		value int
	}{
		{"ASAAS_TIMEOUT_SECONDS", c.AsaasTimeoutSeconds},
		{"REPORT_PAGE_SIZE", c.ReportPageSize},
		{"REPORT_MAX_PAGE_LOOPS", c.ReportMaxPageLoops},
		{"REPORT_DEFAULT_MAX_CLIENTES", c.DefaultMaxClientes},
		{"REPORT_DEFAULT_MAX_FATURAS_CLIENTE", c.DefaultMaxFaturasCliente},
		{"REPORT_DEFAULT_MAX_REGISTROS", c.DefaultMaxRegistros},
		{"REPORT_LIMIT_MAX_CLIENTES", c.LimitMaxClientes},
		{"REPORT_LIMIT_MAX_FATURAS_CLIENTE", c.LimitMaxFaturasCliente},
		{"REPORT_LIMIT_MAX_REGISTROS", c.LimitMaxRegistros},
	}

	var invalid []string
	for _, p := range positive {
		if p.value <= 0 {
			invalid = append(invalid, p.name)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("config values must be greater than zero: %s", strings.Join(invalid, ", "))
	}
	return nil
}

var cfg *Config

// Get configures the application and returns the configuration
func Get() (*Config, error) {

	if cfg != nil {
		return cfg, nil
	}

	// a missing .env file is not an error, the environment may already be set
	_ = godotenv.Load()

	c := Default()

	err := gofigure.Gofigure(c)
	if err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	cfg = c
	return cfg, nil
}
