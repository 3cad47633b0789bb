package ai

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sf "github.com/snowflakedb/gosnowflake"

	apperrors "github.com/salesnotes/sfdc-notes-agent/errors"
	"github.com/salesnotes/sfdc-notes-agent/pkg/config"
)

// ErrEmptyCompletion reports a NULL or missing completion column.
var ErrEmptyCompletion = errors.New("completion function returned no response")

const cortexQueryTimeout = 5 * time.Minute

// cortexCompleteSQL is parameterized; the prompt never gets interpolated into
// SQL text.
const cortexCompleteSQL = "SELECT SNOWFLAKE.CORTEX.COMPLETE(?, ?) AS RESPONSE"

// CortexClient runs model completions through Snowflake's Cortex SQL
// function. One client holds one session pool for the duration of a run;
// calls are issued strictly one at a time by the summarizer.
type CortexClient struct {
	db *sql.DB
}

// NewCortexClient opens a Snowflake session from config. Authentication is
// password or key-pair; missing credentials are a fatal configuration error.
func NewCortexClient(cfg *config.SnowflakeConfig) (*CortexClient, error) {
	if strings.TrimSpace(cfg.Account) == "" || strings.TrimSpace(cfg.User) == "" {
		return nil, apperrors.ErrMissingCredential("SNOWFLAKE_ACCOUNT/SNOWFLAKE_USER")
	}

	sfCfg := &sf.Config{
		Account:   cfg.Account,
		User:      cfg.User,
		Role:      cfg.Role,
		Warehouse: cfg.Warehouse,
		Database:  cfg.Database,
		Schema:    cfg.Schema,
	}

	switch {
	case cfg.PrivateKeyPath != "":
		key, err := LoadPrivateKey(cfg.PrivateKeyPath, cfg.PrivateKeyPassphrase)
		if err != nil {
			return nil, apperrors.ErrConfigInvalid(fmt.Sprintf("failed to load Snowflake private key: %v", err))
		}
		sfCfg.Authenticator = sf.AuthTypeJwt
		sfCfg.PrivateKey = key
	case cfg.Password != "":
		sfCfg.Password = cfg.Password
	default:
		return nil, apperrors.ErrMissingCredential("SNOWFLAKE_PASSWORD or SNOWFLAKE_PRIVATE_KEY_PATH")
	}

	dsn, err := sf.DSN(sfCfg)
	if err != nil {
		return nil, apperrors.ErrConfigInvalid(fmt.Sprintf("invalid Snowflake configuration: %v", err))
	}

	db, err := sql.Open("snowflake", dsn)
	if err != nil {
		return nil, apperrors.ErrConfigInvalid(fmt.Sprintf("failed to open Snowflake connection: %v", err))
	}

	// One live session per run; the summarizer issues one query at a time.
	db.SetMaxOpenConns(1)

	return &CortexClient{db: db}, nil
}

// Complete executes one parameterized completion query and returns the scalar
// response column. A NULL response is ErrEmptyCompletion.
func (c *CortexClient) Complete(ctx context.Context, model, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, cortexQueryTimeout)
	defer cancel()

	var response sql.NullString
	if err := c.db.QueryRowContext(ctx, cortexCompleteSQL, model, prompt).Scan(&response); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrEmptyCompletion
		}
		return "", fmt.Errorf("cortex completion query failed: %w", err)
	}
	if !response.Valid || response.String == "" {
		return "", ErrEmptyCompletion
	}
	return response.String, nil
}

// Close releases the Snowflake session.
func (c *CortexClient) Close() error {
	return c.db.Close()
}
