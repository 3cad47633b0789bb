package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Summarizer backend selectors.
const (
	BackendMock   = "mock"
	BackendOpenAI = "openai"
	BackendCortex = "cortex"
)

// Transcription backend selectors.
const (
	TranscriptionNone       = "none"
	TranscriptionOpenAI     = "openai"
	TranscriptionAssemblyAI = "assemblyai"
)

// Config holds application configuration
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	Storage       StorageConfig
	Summarizer    SummarizerConfig
	OpenAI        OpenAIConfig
	Snowflake     SnowflakeConfig
	Transcription TranscriptionConfig
	AssemblyAI    AssemblyAIConfig
	Salesforce    SalesforceConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"sfdc_notes"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// RedisConfig holds the optional summary-cache configuration
type RedisConfig struct {
	Enabled  bool   `envconfig:"CACHE_ENABLED" default:"false"`
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	TTLHours int    `envconfig:"CACHE_TTL_HOURS" default:"72"`
}

// StorageConfig holds the optional run-artifact archive configuration
type StorageConfig struct {
	Enabled         bool   `envconfig:"ARCHIVE_ENABLED" default:"false"`
	Endpoint        string `envconfig:"ARCHIVE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"ARCHIVE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"ARCHIVE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"ARCHIVE_BUCKET" default:"sfdc-notes"`
	UseSSL          bool   `envconfig:"ARCHIVE_USE_SSL" default:"false"`
}

// SummarizerConfig selects the summarization backend
type SummarizerConfig struct {
	Backend  string `envconfig:"LLM_BACKEND" default:"mock"`
	Initials string `envconfig:"SFDC_INITIALS" default:"SE"`
}

// OpenAIConfig holds the hosted chat-completion backend configuration
type OpenAIConfig struct {
	APIKey     string `envconfig:"OPENAI_API_KEY" default:""`
	Model      string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	AudioModel string `envconfig:"OPENAI_AUDIO_MODEL" default:"whisper-1"`
	BaseURL    string `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com"`
}

// SnowflakeConfig holds the warehouse (Cortex) backend configuration.
// Either Password or PrivateKeyPath must be set when the backend is selected.
type SnowflakeConfig struct {
	Account              string `envconfig:"SNOWFLAKE_ACCOUNT" default:""`
	User                 string `envconfig:"SNOWFLAKE_USER" default:""`
	Password             string `envconfig:"SNOWFLAKE_PASSWORD" default:""`
	PrivateKeyPath       string `envconfig:"SNOWFLAKE_PRIVATE_KEY_PATH" default:""`
	PrivateKeyPassphrase string `envconfig:"SNOWFLAKE_PRIVATE_KEY_PASSPHRASE" default:""`
	Role                 string `envconfig:"SNOWFLAKE_ROLE" default:""`
	Warehouse            string `envconfig:"SNOWFLAKE_WAREHOUSE" default:""`
	Database             string `envconfig:"SNOWFLAKE_DATABASE" default:""`
	Schema               string `envconfig:"SNOWFLAKE_SCHEMA" default:""`
	Model                string `envconfig:"SNOWFLAKE_CORTEX_MODEL" default:"llama3.1-70b"`
}

// TranscriptionConfig selects the audio transcription backend
type TranscriptionConfig struct {
	Backend string `envconfig:"TRANSCRIPTION_BACKEND" default:"none"`
}

// AssemblyAIConfig holds AssemblyAI configuration
type AssemblyAIConfig struct {
	APIKey string `envconfig:"ASSEMBLYAI_API_KEY" default:""`
}

// SalesforceConfig holds CRM connection and field-mapping configuration
type SalesforceConfig struct {
	LoginURL      string `envconfig:"SALESFORCE_LOGIN_URL" default:"https://login.salesforce.com"`
	Username      string `envconfig:"SALESFORCE_USERNAME" default:""`
	Password      string `envconfig:"SALESFORCE_PASSWORD" default:""`
	SecurityToken string `envconfig:"SALESFORCE_SECURITY_TOKEN" default:""`

	AssessmentObject        string `envconfig:"SALESFORCE_ASSESSMENT_OBJECT_API_NAME" default:""`
	AssessmentLookupField   string `envconfig:"SALESFORCE_ASSESSMENT_OPPORTUNITY_LOOKUP_FIELD_API_NAME" default:""`
	AssessmentCommentsField string `envconfig:"SALESFORCE_ASSESSMENT_OPPORTUNITY_COMMENTS_FIELD_API_NAME" default:""`

	AppendMode bool `envconfig:"SALESFORCE_APPEND_MODE" default:"true"`
}

// Load loads configuration from the environment, reading a .env file first
// when present. Core components never read the environment directly; they
// receive this struct (or a slice of it) from the process boundary.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	cfg.Summarizer.Backend = strings.ToLower(strings.TrimSpace(cfg.Summarizer.Backend))
	cfg.Transcription.Backend = strings.ToLower(strings.TrimSpace(cfg.Transcription.Backend))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field requirements for the selected backends.
// Backend selection itself is validated by the summarizer factory so that
// aliases resolve in one place.
func (c *Config) Validate() error {
	if c.Summarizer.Backend == BackendOpenAI && c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required for LLM_BACKEND=openai")
	}
	if c.Transcription.Backend == TranscriptionOpenAI && c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required for TRANSCRIPTION_BACKEND=openai")
	}
	if c.Transcription.Backend == TranscriptionAssemblyAI && c.AssemblyAI.APIKey == "" {
		return fmt.Errorf("ASSEMBLYAI_API_KEY is required for TRANSCRIPTION_BACKEND=assemblyai")
	}
	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// PushConfigured reports whether enough Salesforce settings are present to
// attempt a push.
func (c *Config) PushConfigured() bool {
	sf := c.Salesforce
	return sf.Username != "" && sf.Password != "" &&
		sf.AssessmentObject != "" && sf.AssessmentLookupField != "" && sf.AssessmentCommentsField != ""
}
