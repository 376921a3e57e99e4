package writer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rickgao/ledger-fixtures/internal/model"
)

func sampleDataset() *model.Dataset {
	return &model.Dataset{
		Assets: []model.Asset{
			{Code: "ABC", USDTDecimals: 2, BalanceDecimals: 4, Price: 52000},
		},
		Accounts: []model.Account{
			{ID: "6b86b273ff34fce19d6b804eff5a3f5747ada4eaa22f1d49c01e52ddb7875b4b", Balances: []int64{500}},
		},
		Timestamp: 1705321845123,
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "private_ledger.json")
	ds := sampleDataset()

	n, err := Save(ds, path)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(data) != n {
		t.Errorf("Save reported %d bytes, file has %d", n, len(data))
	}

	want, err := json.Marshal(ds)
	if err != nil {
		t.Fatalf("marshal dataset: %v", err)
	}
	if string(data) != string(want) {
		t.Errorf("file content = %s, want %s", data, want)
	}
}

func TestSaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "private_ledger.json")

	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatalf("seed existing file: %v", err)
	}

	if _, err := Save(sampleDataset(), path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) == "stale" {
		t.Error("Save did not overwrite existing file")
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "private_ledger.json")

	if _, err := Save(sampleDataset(), path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "private_ledger.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory contents = %v, want only private_ledger.json", names)
	}
}

func TestSaveMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.json")

	if _, err := Save(sampleDataset(), path); err == nil {
		t.Error("Save expected error for missing directory, got nil")
	}
}

func TestSaveEncodingFailure(t *testing.T) {
	ds := sampleDataset()
	ds.Accounts[0].Balances = nil // balance count no longer matches assets

	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	if _, err := Save(ds, path); err == nil {
		t.Fatal("Save expected encoding error, got nil")
	}

	// Nothing may be written on an encoding failure.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("output file exists after encoding failure (stat err = %v)", err)
	}
}
