package swc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestBulkFileNamesCSVDefault(t *testing.T) {
	c, err := New(Config{BaseURL: "http://example.com", BulkFileFormat: "xlsx"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	names := c.BulkFileNames()
	if len(names) != 5 {
		t.Fatalf("table has %d entries, want 5", len(names))
	}
	for entity, name := range names {
		if !strings.HasSuffix(name, ".csv") {
			t.Errorf("%s -> %q, want .csv suffix", entity, name)
		}
	}
}

func TestBulkFileNamesParquetAnyCase(t *testing.T) {
	c, err := New(Config{BaseURL: "http://example.com", BulkFileFormat: "Parquet"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	name, err := c.BulkFileName(BulkPlayers)
	if err != nil {
		t.Fatalf("BulkFileName: %v", err)
	}
	if name != "player_data.parquet" {
		t.Fatalf("players -> %q, want player_data.parquet", name)
	}
	for entity, got := range c.BulkFileNames() {
		if !strings.HasSuffix(got, ".parquet") {
			t.Errorf("%s -> %q, want .parquet suffix", entity, got)
		}
	}
}

func TestBulkFileNameUnknownEntity(t *testing.T) {
	c, err := New(Config{BaseURL: "http://example.com"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.BulkFileName("stadiums"); !errors.Is(err, ErrUnknownEntity) {
		t.Fatalf("err = %v, want ErrUnknownEntity", err)
	}
	if _, err := c.DownloadBulkFile(context.Background(), "stadiums"); !errors.Is(err, ErrUnknownEntity) {
		t.Fatalf("download err = %v, want ErrUnknownEntity", err)
	}
}

func TestDownloadBulkFile(t *testing.T) {
	const payload = "player_id,first_name,last_name\n1,Patrick,Mahomes\n"
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: "http://example.com", BulkFileBaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	data, err := c.DownloadBulkPlayerFile(context.Background())
	if err != nil {
		t.Fatalf("DownloadBulkPlayerFile: %v", err)
	}
	if string(data) != payload {
		t.Fatalf("payload mismatch: %q", data)
	}
	if gotPath != "/player_data.csv" {
		t.Fatalf("requested path %q, want /player_data.csv", gotPath)
	}
}

func TestDownloadBulkFileStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: "http://example.com", BulkFileBaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.DownloadBulkTeamFile(context.Background())
	se, ok := AsStatusError(err)
	if !ok || se.StatusCode != http.StatusNotFound {
		t.Fatalf("err = %v, want 404 StatusError", err)
	}
}
