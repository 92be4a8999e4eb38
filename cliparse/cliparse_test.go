// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/quickly-nps/csvexport"
	"github.com/danielhkuo/quickly-nps/store"
)

// clearEnv blanks every variable ParseFlags reads
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "STORE_TYPE", "DATABASE_URL", "STORAGE_KEY", "SURVEY_LOCALE",
		"RECENT_LIMIT", "SURVEY_FILE", "ADMIN_KEY_SALT",
	} {
		t.Setenv(k, "")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.StoreType != StoreFile || cfg.DatabaseURL != DefaultFileDir {
		t.Errorf("expected file store in %s, got %s %s", DefaultFileDir, cfg.StoreType, cfg.DatabaseURL)
	}
	if cfg.StorageKey != store.DefaultKey {
		t.Errorf("expected storage key %s, got %s", store.DefaultKey, cfg.StorageKey)
	}
	if cfg.Locale != csvexport.LocaleEN {
		t.Errorf("expected locale en, got %s", cfg.Locale)
	}
	if cfg.RecentLimit != DefaultRecentLimit {
		t.Errorf("expected recent limit %d, got %d", DefaultRecentLimit, cfg.RecentLimit)
	}
	if cfg.ExportFilename != csvexport.DefaultFilename {
		t.Errorf("expected export filename %s, got %s", csvexport.DefaultFilename, cfg.ExportFilename)
	}
	if cfg.AdminKeySalt != "" {
		t.Errorf("expected no admin salt, got %s", cfg.AdminKeySalt)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_TYPE", "sqlite")
	t.Setenv("STORAGE_KEY", "survey_b")
	t.Setenv("SURVEY_LOCALE", "pt-BR")
	t.Setenv("RECENT_LIMIT", "5")
	t.Setenv("ADMIN_KEY_SALT", "test-salt")

	cfg, err := ParseFlags([]string{"-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.StoreType != StoreSQLite || cfg.DatabaseURL != DefaultSQLitePath {
		t.Errorf("expected sqlite at %s, got %s %s", DefaultSQLitePath, cfg.StoreType, cfg.DatabaseURL)
	}
	if cfg.StorageKey != "survey_b" {
		t.Errorf("expected storage key survey_b, got %s", cfg.StorageKey)
	}
	if cfg.Locale != csvexport.LocalePTBR {
		t.Errorf("expected locale pt-BR, got %s", cfg.Locale)
	}
	if cfg.RecentLimit != 5 {
		t.Errorf("expected recent limit 5, got %d", cfg.RecentLimit)
	}
	if cfg.AdminKeySalt != "test-salt" {
		t.Errorf("expected admin salt from env, got %s", cfg.AdminKeySalt)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_TYPE", "sqlite")

	cfg, err := ParseFlags([]string{"-env-file", "", "-p", "8080", "-t", "memory", "-admin-salt", "s1"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.StoreType != StoreMemory {
		t.Errorf("CLI should override env: expected memory, got %s", cfg.StoreType)
	}
	if cfg.AdminKeySalt != "s1" {
		t.Errorf("expected admin salt s1, got %s", cfg.AdminKeySalt)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"postgres without url", []string{"-t", "postgres"}, nil},
		{"unknown store type", []string{"-t", "redis"}, nil},
		{"unsupported locale", []string{"-locale", "fr"}, nil},
		{"negative recent limit", []string{"-recent", "-1"}, nil},
		{"bad port env", nil, map[string]string{"PORT": "abc"}},
		{"bad recent env", nil, map[string]string{"RECENT_LIMIT": "many"}},
		{"missing survey file", []string{"-survey-file", "does-not-exist.yaml"}, nil},
		{"unknown flag", []string{"-x"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			args := append([]string{"-env-file", ""}, tt.args...)
			if _, err := ParseFlags(args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseFlags_DotEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("STORAGE_KEY")
	t.Cleanup(func() { os.Unsetenv("STORAGE_KEY") })

	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("STORAGE_KEY=from_dotenv\nPORT=7000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags([]string{"-env-file", envPath})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.StorageKey != "from_dotenv" {
		t.Errorf("expected storage key from dotenv, got %s", cfg.StorageKey)
	}
	// PORT was already set (to empty) in the process, so the file must not override it
	if cfg.Port != DefaultPort {
		t.Errorf("expected default port, got %d", cfg.Port)
	}

	// a missing dotenv file is fine
	if _, err := ParseFlags([]string{"-env-file", filepath.Join(dir, "missing.env")}); err != nil {
		t.Errorf("missing dotenv file should be ignored, got %v", err)
	}
}

func TestParseFlags_SurveyFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "survey.yaml")
	content := `locale: pt-BR
recent_limit: 50
export_filename: respostas.csv
csv_header: [Data, Papel, Nota, Gosta, Ajuda, Problemas, Melhorar]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags([]string{"-env-file", "", "-survey-file", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Locale != csvexport.LocalePTBR {
		t.Errorf("expected locale from survey file, got %s", cfg.Locale)
	}
	if cfg.RecentLimit != 50 {
		t.Errorf("expected recent limit 50, got %d", cfg.RecentLimit)
	}
	if cfg.ExportFilename != "respostas.csv" {
		t.Errorf("expected export filename respostas.csv, got %s", cfg.ExportFilename)
	}
	if len(cfg.CSVHeader) != csvexport.ColumnCount || cfg.CSVHeader[3] != "Gosta" {
		t.Errorf("unexpected csv header %v", cfg.CSVHeader)
	}

	// flags beat the survey file
	cfg, err = ParseFlags([]string{"-env-file", "", "-survey-file", path, "-locale", "en", "-recent", "3"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Locale != csvexport.LocaleEN || cfg.RecentLimit != 3 {
		t.Errorf("flags should override survey file, got %s %d", cfg.Locale, cfg.RecentLimit)
	}
}

func TestLoadSurveyFile_BadHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.yaml")
	if err := os.WriteFile(path, []byte("csv_header: [one, two]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSurveyFile(path); err == nil {
		t.Error("expected error for short csv_header")
	}
}
