package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "hwgrade") {
		t.Errorf("GetConfigDir() = %v, should contain 'hwgrade'", configDir)
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigDir_XDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if want := filepath.Join(dir, "hwgrade"); got != want {
		t.Errorf("GetConfigDir() = %v, want %v", got, want)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestDefaults(t *testing.T) {
	s := Defaults()

	if s.Version != 1 {
		t.Errorf("Defaults().Version = %v, want 1", s.Version)
	}
	if !s.WatchDatabase {
		t.Error("Defaults().WatchDatabase should be true")
	}
	if s.Layout != DefaultLayout() {
		t.Errorf("Defaults().Layout = %+v, want %+v", s.Layout, DefaultLayout())
	}
	if s.Layout.ErrorRows != 4 || s.Layout.ErrorColumns != 2 {
		t.Errorf("default layout = %dx%d, want 4x2", s.Layout.ErrorRows, s.Layout.ErrorColumns)
	}
}

func TestLoad_Missing(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Version != CurrentVersion {
		t.Errorf("Load() of missing file should return defaults, got %+v", s)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	s := Defaults()
	s.Database = "/srv/grades/homework.db"
	s.LogLevel = "debug"
	s.WatchDatabase = false
	s.Layout.ErrorRows = 6

	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Database != s.Database {
		t.Errorf("Database = %q, want %q", loaded.Database, s.Database)
	}
	if loaded.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", loaded.LogLevel)
	}
	if loaded.WatchDatabase {
		t.Error("WatchDatabase should round-trip as false")
	}
	if loaded.Layout.ErrorRows != 6 {
		t.Errorf("Layout.ErrorRows = %d, want 6", loaded.Layout.ErrorRows)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "version: 1\ndatabase: grades.db\nlayout:\n  error_rows: 2\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !s.WatchDatabase {
		t.Error("WatchDatabase should default to true")
	}
	want := DefaultLayout()
	want.ErrorRows = 2
	if s.Layout != want {
		t.Errorf("Layout = %+v, want %+v", s.Layout, want)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "version: [1"},
		{"wrong version", "version: 2\n"},
		{"overlapping rows", "version: 1\nlayout:\n  row_spacing: 2\n"},
		{"negative columns", "version: 1\nlayout:\n  error_columns: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name    string
		layout  Layout
		wantErr bool
	}{
		{"default", DefaultLayout(), false},
		{"smallest spacing", Layout{ErrorRows: 1, ErrorColumns: 1, RowSpacing: MinRowSpacing, ColumnSpacing: MinColumnSpacing}, false},
		{"list runs into next row", Layout{ErrorRows: 2, ErrorColumns: 1, RowSpacing: 3, ColumnSpacing: 50}, true},
		{"row spacing one short", Layout{ErrorRows: 2, ErrorColumns: 1, RowSpacing: MinRowSpacing - 1, ColumnSpacing: 50}, true},
		{"points lost overwrites next type", Layout{ErrorRows: 1, ErrorColumns: 2, RowSpacing: 9, ColumnSpacing: 35}, true},
		{"column spacing one short", Layout{ErrorRows: 1, ErrorColumns: 2, RowSpacing: 9, ColumnSpacing: MinColumnSpacing - 1}, true},
		{"no rows", Layout{ErrorRows: 0, ErrorColumns: 1, RowSpacing: 9, ColumnSpacing: 50}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	written, err := CreateDefaultConfig(path)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if written != path {
		t.Errorf("CreateDefaultConfig() = %q, want %q", written, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# hwgrade settings") {
		t.Errorf("missing header comment: %q", string(data)[:40])
	}

	if _, err := CreateDefaultConfig(path); err == nil {
		t.Error("CreateDefaultConfig() should refuse to overwrite")
	}
}
