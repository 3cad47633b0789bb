package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/salesnotes/sfdc-notes-agent/internal/domain/entities"
)

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yaml")
	content := `transcripts:
  acme_call.vtt:
    opportunity_name: Acme Renewal
    account_name: Acme Corp
    opportunity_id: "0065g00000ABCDE"
    call_date: "2025-08-12"
    source: gong
    owner: JD
    stage: Negotiation
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	md := m.MetadataFor("acme_call.vtt")
	if md.OpportunityName != "Acme Renewal" || md.AccountName != "Acme Corp" {
		t.Fatalf("got %+v", md)
	}
	if md.Source != entities.SourceGong {
		t.Fatalf("got source %q", md.Source)
	}
	if md.CallDate == nil || md.CallDate.Format("2006-01-02") != "2025-08-12" {
		t.Fatalf("got call date %v", md.CallDate)
	}
}

func TestMetadataForUnknownFileGuessesName(t *testing.T) {
	m := &Manifest{}
	md := m.MetadataFor("big_deal_review.txt")
	if md.OpportunityName != "big deal review" {
		t.Fatalf("got %q", md.OpportunityName)
	}
	if md.Source != entities.SourceOther {
		t.Fatalf("got source %q", md.Source)
	}
}

func TestLoadManifestEmptyPath(t *testing.T) {
	m, err := LoadManifest("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil {
		t.Fatal("expected empty manifest")
	}
}

func TestLoadManifestBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("transcripts: [not a map"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := LoadManifest(path); err == nil {
		t.Fatal("expected parse error")
	}
}
