package swc

import "testing"

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SWC_BASE_URL", "https://api.example.com")
	t.Setenv("SWC_BACKOFF", "false")
	t.Setenv("SWC_BACKOFF_MAX_TIME", "90")
	t.Setenv("SWC_BULK_FILE_FORMAT", "parquet")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.BaseURL != "https://api.example.com" {
		t.Fatalf("base url = %q", cfg.BaseURL)
	}
	if cfg.Backoff {
		t.Fatal("backoff should be disabled")
	}
	if cfg.BackoffMaxSeconds != 90 {
		t.Fatalf("backoff max = %d", cfg.BackoffMaxSeconds)
	}
	if cfg.BulkFileFormat != "parquet" {
		t.Fatalf("bulk format = %q", cfg.BulkFileFormat)
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("SWC_BASE_URL", "https://api.example.com")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if !cfg.Backoff {
		t.Fatal("backoff should default to enabled")
	}
	if cfg.BackoffMaxSeconds != 30 {
		t.Fatalf("backoff max = %d, want 30", cfg.BackoffMaxSeconds)
	}
	if got := cfg.fileFormat(); got != FormatCSV {
		t.Fatalf("file format = %q, want csv", got)
	}
	if cfg.bulkBaseURL() != DefaultBulkFileBaseURL {
		t.Fatalf("bulk base url = %q", cfg.bulkBaseURL())
	}
}

func TestConfigFileFormat(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"parquet", FormatParquet},
		{"Parquet", FormatParquet},
		{"PARQUET", FormatParquet},
		{"csv", FormatCSV},
		{"CSV", FormatCSV},
		{"", FormatCSV},
		{"xlsx", FormatCSV},
	}
	for _, tc := range cases {
		cfg := Config{BulkFileFormat: tc.in}
		if got := cfg.fileFormat(); got != tc.want {
			t.Errorf("fileFormat(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
