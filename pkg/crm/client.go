package crm

import "context"

// Record is one CRM record as returned by a query.
type Record map[string]any

// StringField returns the named field as a string, empty when missing or not
// textual.
func (r Record) StringField(name string) string {
	if v, ok := r[name]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Client is the query/update capability the synchronizer needs. The core
// depends on this interface, not on a concrete driver; the session behind an
// implementation is created once per synchronization invocation and must not
// be shared across goroutines.
type Client interface {
	Query(ctx context.Context, soql string) ([]Record, error)
	UpdateField(ctx context.Context, object, id, field string, value any) error
}
