package pkg

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	expected := "webconf"
	if Name != expected {
		t.Errorf("Expected Name to be %q, got %q", expected, Name)
	}
}

func TestVersion(t *testing.T) {
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("Failed to read VERSION file: %v", err)
	}

	if content := strings.TrimSpace(string(buf)); Version != content {
		t.Errorf("Expected Version to be %q, got %q", content, Version)
	}
}

func TestErrorChain(t *testing.T) {
	cause := errors.New("disk on fire")
	err := ErrReadFile.Wrap(cause).Wrapf("path %s", "a.config")

	if got, want := err.Error(), "read file: disk on fire: path a.config"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if !errors.Is(err, ErrReadFile) {
		t.Error("wrapped error should match its sentinel")
	}

	if !errors.Is(err, cause) {
		t.Error("wrapped error should match its cause")
	}

	if errors.Is(err, ErrWriteFile) {
		t.Error("wrapped error should not match an unrelated sentinel")
	}

	if len(ErrReadFile) != 1 {
		t.Errorf("Wrap must not grow the sentinel, len = %d", len(ErrReadFile))
	}
}

func TestMakeErrorNil(t *testing.T) {
	if err := MakeError(nil, nil); err != nil {
		t.Errorf("MakeError(nil) = %v, want nil", err)
	}
}

func TestCacheDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CACHE_HOME is only honored on linux")
	}

	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)

	if got, want := CacheDir(), filepath.Join(dir, Name); got != want {
		t.Errorf("CacheDir() = %q, want %q", got, want)
	}
}
