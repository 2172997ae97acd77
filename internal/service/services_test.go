package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportService_WriteXLSX(t *testing.T) {
	svc := newTestServices(t)
	logHours(t, svc, "2025-04-01", "2025-04-02")

	out := filepath.Join(t.TempDir(), "hours.xlsx")
	count, err := svc.Export.WriteXLSX(out)
	if err != nil {
		t.Fatalf("WriteXLSX() unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("exported entry count = %d, expected 2", count)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("workbook missing: %v", err)
	}
}

func TestConfigService_InitAndExists(t *testing.T) {
	svc := newTestServices(t)

	if svc.Config.Exists() {
		t.Fatal("Exists() = true before init")
	}
	if err := svc.Config.Init(); err != nil {
		t.Fatalf("Init() unexpected error: %v", err)
	}
	if !svc.Config.Exists() {
		t.Error("Exists() = false after init")
	}
	if err := svc.Config.Init(); err == nil {
		t.Error("second Init() succeeded, expected refusal to overwrite")
	}

	raw, err := os.ReadFile(svc.Config.GetPath())
	if err != nil {
		t.Fatalf("reading written config: %v", err)
	}
	if !strings.Contains(string(raw), "hourly_rate") {
		t.Error("sample config missing hourly_rate key")
	}

	cfg, err := svc.Config.Get()
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if cfg.Invoice.NextNumber != 1000 {
		t.Errorf("NextNumber = %d, expected sample default 1000", cfg.Invoice.NextNumber)
	}
}
