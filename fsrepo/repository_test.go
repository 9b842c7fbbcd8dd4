package fsrepo

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsWithoutRoot(t *testing.T) {
	repo, err := NewStandardsRepository("")
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}

	standards, err := repo.Standards()
	if err != nil {
		t.Fatalf("Failed to load standards: %v", err)
	}
	if len(standards) != 8 {
		t.Errorf("Expected 8 built-in standards, got %d", len(standards))
	}

	terms, err := repo.Terms()
	if err != nil {
		t.Fatalf("Failed to load terms: %v", err)
	}
	if len(terms) != 40 {
		t.Errorf("Expected 40 built-in terms, got %d", len(terms))
	}

	items, err := repo.RequestItems()
	if err != nil {
		t.Fatalf("Failed to load request items: %v", err)
	}
	if len(items) != 7 {
		t.Errorf("Expected 7 built-in request items, got %d", len(items))
	}
}

func TestMissingRootFails(t *testing.T) {
	if _, err := NewStandardsRepository("/nonexistent/standards"); err == nil {
		t.Error("Expected error for missing root path")
	}
}

func TestLoadStandardsFromYAML(t *testing.T) {
	dir := t.TempDir()
	content := `
- typeId: GDPR-2026
  typeName: GDPR Compliance Review
  publishedDate: 2026-01-10T00:00:00Z
  author: Emily Rodriguez
  typeVersionId: v3.0.0
  status: active
- typeId: GDPR-2024
  typeName: GDPR Compliance Review
  publishedDate: 2024-01-15T00:00:00Z
  author: Emily Rodriguez
  typeVersionId: v2.3.0
  status: deprecated
`
	if err := os.WriteFile(filepath.Join(dir, "standards.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	repo, err := NewStandardsRepository(dir)
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}

	standards, err := repo.Standards()
	if err != nil {
		t.Fatalf("Failed to load standards: %v", err)
	}
	if len(standards) != 2 {
		t.Fatalf("Expected 2 standards from file, got %d", len(standards))
	}
	if standards[0].TypeID != "GDPR-2026" || !standards[0].IsActive() {
		t.Errorf("Unexpected first standard: %+v", standards[0])
	}
	if standards[0].Version != "v3.0.0" {
		t.Errorf("Version mismatch: got %s", standards[0].Version)
	}

	// Terms file absent, defaults still served
	terms, err := repo.Terms()
	if err != nil {
		t.Fatalf("Failed to load terms: %v", err)
	}
	if len(terms) != 40 {
		t.Errorf("Expected built-in terms alongside file standards, got %d", len(terms))
	}
}

func TestLoadTermsFromYAML(t *testing.T) {
	dir := t.TempDir()
	content := `
- id: "1"
  heading: Data Encryption Requirements
  description: Contract must specify encryption in transit and at rest.
  sub_points:
    - heading: Encryption in Transit
      met: true
    - heading: Encryption at Rest
      met: false
`
	if err := os.WriteFile(filepath.Join(dir, "terms.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	repo, err := NewStandardsRepository(dir)
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}

	terms, err := repo.Terms()
	if err != nil {
		t.Fatalf("Failed to load terms: %v", err)
	}
	if len(terms) != 1 {
		t.Fatalf("Expected 1 term from file, got %d", len(terms))
	}
	if len(terms[0].SubPoints) != 2 || !terms[0].SubPoints[0].Met {
		t.Errorf("Subpoints not parsed: %+v", terms[0].SubPoints)
	}
}

func TestInvalidYAMLFails(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "terms.yaml"), []byte("{not yaml"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	repo, err := NewStandardsRepository(dir)
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	if _, err := repo.Terms(); err == nil {
		t.Error("Expected parse error for invalid YAML")
	}
}

func TestReload(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewStandardsRepository(dir)
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}

	standards, err := repo.Standards()
	if err != nil {
		t.Fatalf("Failed to load standards: %v", err)
	}
	if len(standards) != 8 {
		t.Fatalf("Expected defaults, got %d standards", len(standards))
	}

	content := `
- typeId: SOC2-TYPE2-2026
  typeName: SOC 2 Type II Compliance Review
  publishedDate: 2026-02-01T00:00:00Z
  author: Michael Chen
  typeVersionId: v2.0.0
  status: active
`
	if err := os.WriteFile(filepath.Join(dir, "standards.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	repo.Reload()
	standards, err = repo.Standards()
	if err != nil {
		t.Fatalf("Failed to reload standards: %v", err)
	}
	if len(standards) != 1 {
		t.Errorf("Expected 1 standard after reload, got %d", len(standards))
	}
}
