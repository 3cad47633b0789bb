package crm

import (
	"context"
	"fmt"
	"strings"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/simpleforce/simpleforce"
)

const defaultLoginURL = "https://login.salesforce.com"

// SalesforceClient implements Client over the Salesforce REST API with a
// username/password/security-token login.
type SalesforceClient struct {
	sf *simpleforce.Client
}

// Connect logs in to Salesforce. The login handshake is retried with
// exponential backoff; per-record operations afterwards are not.
func Connect(ctx context.Context, loginURL, username, password, securityToken string) (*SalesforceClient, error) {
	if strings.TrimSpace(loginURL) == "" {
		loginURL = defaultLoginURL
	}

	client := simpleforce.NewClient(loginURL, simpleforce.DefaultClientID, simpleforce.DefaultAPIVersion)
	if client == nil {
		return nil, fmt.Errorf("failed to create salesforce client for %s", loginURL)
	}

	login := func() error {
		return client.LoginPassword(username, password, securityToken)
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(login, policy); err != nil {
		return nil, fmt.Errorf("salesforce login failed: %w", err)
	}

	return &SalesforceClient{sf: client}, nil
}

// Query runs a SOQL query and returns the matching records.
func (c *SalesforceClient) Query(_ context.Context, soql string) ([]Record, error) {
	result, err := c.sf.Query(soql)
	if err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(result.Records))
	for _, sobj := range result.Records {
		records = append(records, Record(sobj))
	}
	return records, nil
}

// UpdateField writes a single field on one record.
func (c *SalesforceClient) UpdateField(_ context.Context, object, id, field string, value any) error {
	updated := c.sf.SObject(object).
		Set("Id", id).
		Set(field, value).
		Update()
	if updated == nil {
		return fmt.Errorf("update of %s %s failed", object, id)
	}
	return nil
}

// QuoteSOQL renders a string as a SOQL literal, backslash-escaping
// backslashes and single quotes. Deliberately narrow escaping; callers must
// not route untrusted external input through this path verbatim.
func QuoteSOQL(value string) string {
	v := strings.ReplaceAll(value, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
