package reporter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mkowalczuk/citelens/internal/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad_SkipsBlankLines(t *testing.T) {
	path := writeFile(t, "reporters.txt", "F.2d\n\n  \nU.S.\n\nS. Ct.\n")

	set, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := []string{"F.2d", "U.S.", "S. Ct."}
	got := set.Reporters()
	if len(got) != len(want) {
		t.Fatalf("Expected %d reporters, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Reporter %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestLoad_PreservesOrder(t *testing.T) {
	// Order decides alternation precedence, so it must survive loading.
	path := writeFile(t, "reporters.txt", "U.S.C.\nU.S.\nU.\n")

	set, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if set.Reporters()[0] != "U.S.C." {
		t.Errorf("Expected first entry U.S.C., got %q", set.Reporters()[0])
	}
	if set.Len() != 3 {
		t.Errorf("Expected 3 entries, got %d", set.Len())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}

	var cfgErr *model.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("Expected ConfigError, got %T: %v", err, err)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeFile(t, "reporters.txt", "\n  \n\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected error for file with no usable entries")
	}

	var cfgErr *model.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("Expected ConfigError, got %T: %v", err, err)
	}
}

func TestNewSet_RejectsEmpty(t *testing.T) {
	if _, err := NewSet(nil); err == nil {
		t.Error("Expected error for empty list")
	}
}
