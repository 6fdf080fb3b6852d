package csvout

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"contactsorter/internal/domain"
)

func TestWriteBucket(t *testing.T) {
	t.Parallel()

	bucket := []domain.Contact{
		{Name: "Alice Smith", Email: "alice@cern.ch", Phone: "+41791234567"},
		{Name: "Rossi, Mario", Email: "", Phone: "+39061234567"},
	}

	path := filepath.Join(t.TempDir(), "Doctors.csv")
	if err := NewWriter().WriteBucket(context.Background(), path, bucket); err != nil {
		t.Fatalf("WriteBucket error: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Name" || rows[0][1] != "Email" || rows[0][2] != "Phone" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "Alice Smith" || rows[1][2] != "+41791234567" {
		t.Fatalf("unexpected row: %v", rows[1])
	}
	if rows[2][0] != "Rossi, Mario" {
		t.Fatalf("comma in name must survive quoting: %v", rows[2])
	}
}

func TestWriteBucketEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "all_others.csv")
	if err := NewWriter().WriteBucket(context.Background(), path, nil); err != nil {
		t.Fatalf("WriteBucket error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(raw) != "Name,Email,Phone\n" {
		t.Fatalf("empty bucket must still carry the header, got %q", string(raw))
	}
}
