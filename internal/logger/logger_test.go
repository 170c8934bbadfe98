package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveLogFilePathDefaultDir(t *testing.T) {
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
	})
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}

	got, err := resolveLogFilePath(Options{})
	if err != nil {
		t.Fatalf("resolve default log path failed: %v", err)
	}

	realTmpDir, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("resolve tmp dir symlink failed: %v", err)
	}
	realGot, err := filepath.EvalSymlinks(filepath.Dir(got))
	if err != nil {
		t.Fatalf("resolve got dir symlink failed: %v", err)
	}
	expectedDir := filepath.Join(realTmpDir, defaultLogDirName)
	if realGot != expectedDir {
		t.Fatalf("unexpected log dir: got=%s expected=%s", realGot, expectedDir)
	}
	if filepath.Base(got) != defaultLogFilename {
		t.Fatalf("unexpected log filename: %s", filepath.Base(got))
	}
}

func TestResolveLogFilePathCustom(t *testing.T) {
	tmpDir := t.TempDir()
	got, err := resolveLogFilePath(Options{Dir: tmpDir, Filename: "api.log"})
	if err != nil {
		t.Fatalf("resolve custom log path failed: %v", err)
	}
	if got != filepath.Join(tmpDir, "api.log") {
		t.Fatalf("unexpected log path: %s", got)
	}
	if _, err := os.Stat(got); err != nil {
		t.Fatalf("log file should be created: %v", err)
	}
}

func TestNormalizePositiveInt(t *testing.T) {
	if normalizePositiveInt(0, 7) != 7 {
		t.Fatalf("zero should fall back")
	}
	if normalizePositiveInt(-1, 7) != 7 {
		t.Fatalf("negative should fall back")
	}
	if normalizePositiveInt(3, 7) != 3 {
		t.Fatalf("positive should pass through")
	}
}
