package writer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/rickgao/ledger-fixtures/internal/model"
)

// Save encodes the dataset and writes it to path in a single pass,
// returning the number of bytes written.
//
// The document is first written to a uniquely named temp file in the target
// directory, then renamed over path, so a crash mid-write never leaves a
// truncated fixture behind. An existing file at path is overwritten without
// confirmation. Any failure removes the temp file and propagates the error;
// there is no retry.
func Save(ds *model.Dataset, path string) (int, error) {
	data, err := json.Marshal(ds)
	if err != nil {
		return 0, fmt.Errorf("encode dataset: %w", err)
	}

	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return 0, fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return 0, fmt.Errorf("close %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return 0, fmt.Errorf("rename %s to %s: %w", tmp, path, err)
	}

	return len(data), nil
}
