package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/webconf/cli/cmd"
	"github.com/ardnew/webconf/pkg"
)

const webConfig = `<?xml version="1.0" encoding="utf-8"?>
<configuration>
  <appSettings>
    <add key="ApiUrl" value="http://old"/>
    <!-- <add key="Mode" value="commented"/> -->
    <add key="Mode" value="debug"/>
  </appSettings>
  <connectionStrings>
    <add name="Main" connectionString="Server=old" providerName="System.Data.SqlClient"/>
  </connectionStrings>
</configuration>
`

const manifestLayout = `files:
  - file: %q
    config:
      api: {key: ApiUrl, type: appSetting}
      mode: {key: Mode, type: appSetting}
      db: {key: Main, type: connectionString}
presets:
  local:
    api: http://localhost:5000
    db: Server=.;Database=app
  staging:
    api: https://staging.example.com
    mode: release
%s`

type fixture struct {
	manifest string
	target   string
}

func newFixture(t *testing.T, extra string) fixture {
	t.Helper()

	dir := t.TempDir()
	target := filepath.Join(dir, "Web.config")
	manifest := filepath.Join(dir, "webconf.yaml")

	if err := os.WriteFile(target, []byte(webConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	content := fmt.Sprintf(manifestLayout, target, extra)
	if err := os.WriteFile(manifest, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return fixture{manifest: manifest, target: target}
}

func (f fixture) read(t *testing.T) string {
	t.Helper()

	data, err := os.ReadFile(f.target)
	if err != nil {
		t.Fatal(err)
	}

	return string(data)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	exit := func(code int) { t.Fatalf("unexpected exit(%d): %s", code, stderr.String()) }
	err := run(context.Background(), exit, &stdout, &stderr, args...)

	return stdout.String(), err
}

func TestRun_Set(t *testing.T) {
	f := newFixture(t, "")

	out, err := execute(t, "--config", f.manifest,
		"set", "api=https://new.example.com", "db=Server=new;Database=app")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := strings.NewReplacer(
		`value="http://old"`, `value="https://new.example.com"`,
		`connectionString="Server=old"`, `connectionString="Server=new;Database=app"`,
	).Replace(webConfig)

	if got := f.read(t); got != want {
		t.Errorf("file content:\n%s\nwant:\n%s", got, want)
	}

	if want := "updated " + f.target + "\n"; out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestRun_Preset(t *testing.T) {
	f := newFixture(t, "")

	if _, err := execute(t, "--config", f.manifest, "preset", "staging"); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := f.read(t)

	for _, want := range []string{
		`<add key="ApiUrl" value="https://staging.example.com"/>`,
		`<!-- <add key="Mode" value="commented"/> -->`,
		`<add key="Mode" value="release"/>`,
		`connectionString="Server=old"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestRun_UnknownPreset(t *testing.T) {
	f := newFixture(t, "")

	out, err := execute(t, "--config", f.manifest, "preset", "prod")
	if !errors.Is(err, cmd.ErrUnknownPreset) {
		t.Fatalf("expected unknown preset error, got %v", err)
	}

	if want := "Unknown preset: prod\nAvailable presets:\nlocal staging\n"; out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}

	if f.read(t) != webConfig {
		t.Error("unknown preset modified the target file")
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	f := newFixture(t, "")

	out, err := execute(t, "--config", f.manifest, "apply")
	if !errors.Is(err, cmd.ErrUnknownCommand) {
		t.Fatalf("expected unknown command error, got %v", err)
	}

	if want := "Unknown command: apply\n"; out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestRun_MissingConfig(t *testing.T) {
	out, err := execute(t, "set", "a=b")
	if err == nil {
		t.Fatal("expected error for missing --config")
	}

	if !strings.Contains(err.Error(), "--config") {
		t.Errorf("error %q does not name --config", err)
	}

	if !strings.Contains(out, "Usage:") {
		t.Errorf("expected usage on stdout, got %q", out)
	}
}

func TestRun_DryRun(t *testing.T) {
	tests := []struct {
		name  string
		extra string
		args  []string
	}{
		{"flag", "", []string{"--dry-run"}},
		{"short flag", "", []string{"-n"}},
		{"manifest", "dry_run: true\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.extra)

			args := append([]string{"--config", f.manifest}, tt.args...)
			args = append(args, "preset", "local")

			out, err := execute(t, args...)
			if err != nil {
				t.Fatalf("run: %v", err)
			}

			if f.read(t) != webConfig {
				t.Error("dry run modified the target file")
			}

			if want := "would update " + f.target + "\n"; out != want {
				t.Errorf("stdout = %q, want %q", out, want)
			}
		})
	}
}

func TestRun_Show(t *testing.T) {
	f := newFixture(t, "")

	out, err := execute(t, "--config", f.manifest, "show", "--format", "json")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	for _, want := range []string{`"files"`, `"presets"`, `"staging"`, f.target} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestRun_Version(t *testing.T) {
	type exited struct{ code int }

	var stdout, stderr bytes.Buffer

	func() {
		defer func() {
			r := recover()
			if e, ok := r.(exited); !ok || e.code != 0 {
				t.Errorf("expected exit(0), got %v", r)
			}
		}()

		_ = run(context.Background(), func(code int) { panic(exited{code}) },
			&stdout, &stderr, "--version")
	}()

	if got := strings.TrimSpace(stdout.String()); got != pkg.Version {
		t.Errorf("version = %q, want %q", got, pkg.Version)
	}
}

func TestLoad(t *testing.T) {
	r, err := load(strings.NewReader(`{"dry_run": true}`))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := load(strings.NewReader(`[1, 2]`)); !errors.Is(err, pkg.ErrParseManifest) {
		t.Errorf("expected parse error for non-mapping manifest, got %v", err)
	}

	if _, err := load(strings.NewReader("{")); !errors.Is(err, pkg.ErrParseManifest) {
		t.Errorf("expected parse error for malformed manifest, got %v", err)
	}

	if err := r.Validate(nil); err != nil {
		t.Errorf("Validate: %v", err)
	}

	r, err = load(strings.NewReader(`{"presets": {"local": "not a mapping"}}`))
	if err != nil {
		t.Fatal(err)
	}

	if err := r.Validate(nil); !errors.Is(err, pkg.ErrParseManifest) {
		t.Errorf("expected Validate to reject a malformed preset, got %v", err)
	}
}
