package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	rootpkg "tools.zach/dev/colorsets"
	"tools.zach/dev/colorsets/internal/config"
	"tools.zach/dev/colorsets/internal/palette"
)

// run executes colorgen with args against a config path inside dir unless
// args already name one.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	full := append([]string{"--config", filepath.Join(dir, "colorgen.toml")}, args...)
	err := newApp(&stdout, &stderr).execute(context.Background(), full)
	return stdout.String(), err
}

func countColorsets(t *testing.T, base string) int {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(base, "*.colorset", "Contents.json"))
	if err != nil {
		t.Fatal(err)
	}
	return len(matches)
}

// ///////////////////////////////////////////////
// resolveVersion Tests
// ///////////////////////////////////////////////

func TestResolveVersionWithLdflags(t *testing.T) {
	original := version
	defer func() { version = original }()

	version = "1.2.3"
	if got := resolveVersion(); got != "1.2.3" {
		t.Errorf("resolveVersion() = %q, want %q", got, "1.2.3")
	}
}

func TestResolveVersionDev(t *testing.T) {
	original := version
	defer func() { version = original }()

	version = "dev"
	if got := resolveVersion(); !strings.HasPrefix(got, "dev") {
		t.Errorf("resolveVersion() = %q, expected to start with 'dev'", got)
	}
}

// ///////////////////////////////////////////////
// generate Tests
// ///////////////////////////////////////////////

func TestGenerateDefaults(t *testing.T) {
	for _, args := range [][]string{{}, {"generate"}} {
		t.Run(strings.Join(append([]string{"root"}, args...), " "), func(t *testing.T) {
			dir := t.TempDir()
			out := filepath.Join(dir, "Colors.xcassets")
			stdout, err := run(t, dir, append(args, "--out", out)...)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if n := countColorsets(t, out); n != 61 {
				t.Errorf("wrote %d colorsets, want 61", n)
			}
			if !strings.HasSuffix(stdout, "All 61 color sets created successfully!\n") {
				t.Errorf("stdout tail = %q", stdout[max(0, len(stdout)-80):])
			}
		})
	}
}

func TestGenerateFlags(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "Colors.xcassets")
	stdout, err := run(t, dir, "generate", "--out", out, "--dark", "mirror", "--include", "Navy/*", "--exclude", "*/navy50")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n := countColorsets(t, out); n != 9 {
		t.Errorf("wrote %d colorsets, want 9", n)
	}
	if got := strings.Count(stdout, "(light + dark mode)"); got != 9 {
		t.Errorf("dark suffix count = %d, want 9", got)
	}
}

func TestGenerateFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	paletteFile := filepath.Join(dir, "brand.toml")
	os.WriteFile(paletteFile, []byte("version = 1\n\n[Brand]\nprimary = { light = \"#34C759\", dark = \"#30D158\" }\nink = \"#1C1C1E\"\n"), 0o644)
	out := filepath.Join(dir, "App.xcassets")
	cfg := "version = 1\n[output]\nbase_path = " + quote(out) + "\n[palette]\nsource = \"file\"\nfile = " + quote(paletteFile) + "\n"
	os.WriteFile(filepath.Join(dir, "colorgen.toml"), []byte(cfg), 0o644)

	stdout, err := run(t, dir)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n := countColorsets(t, out); n != 2 {
		t.Errorf("wrote %d colorsets, want 2", n)
	}
	if !strings.Contains(stdout, filepath.Join("primary.colorset", "Contents.json")+" (light + dark mode)") {
		t.Errorf("missing dark progress line in %q", stdout)
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		args    []string
		wantErr string
	}{
		{name: "invalid dark flag", args: []string{"--dark", "always"}, wantErr: "invalid settings"},
		{name: "invalid log level", args: []string{"--log-level", "loud"}, wantErr: "log.level"},
		{name: "invalid include", args: []string{"--include", "Navy/["}, wantErr: "palette.include"},
		{name: "malformed config", config: "[output\n", wantErr: "parse config"},
		{name: "unexpected argument", args: []string{"generate", "extra"}, wantErr: "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.config != "" {
				os.WriteFile(filepath.Join(dir, "colorgen.toml"), []byte(tt.config), 0o644)
			}
			args := append([]string{"--out", filepath.Join(dir, "out")}, tt.args...)
			_, err := run(t, dir, args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateMalformedPaletteAborts(t *testing.T) {
	dir := t.TempDir()
	paletteFile := filepath.Join(dir, "bad.toml")
	os.WriteFile(paletteFile, []byte("version = 1\n[F]\ngood = \"#123456\"\nbad = \"#12345\"\n"), 0o644)
	out := filepath.Join(dir, "out")
	cfg := "[output]\nbase_path = " + quote(out) + "\n[palette]\nsource = \"file\"\nfile = " + quote(paletteFile) + "\n"
	os.WriteFile(filepath.Join(dir, "colorgen.toml"), []byte(cfg), 0o644)

	stdout, err := run(t, dir)
	if err == nil {
		t.Fatal("expected error for malformed hex")
	}
	if strings.Contains(stdout, "successfully") {
		t.Error("completion line printed after failure")
	}
	if n := countColorsets(t, out); n != 1 {
		t.Errorf("wrote %d colorsets before failing, want 1", n)
	}
}

// ///////////////////////////////////////////////
// config init Tests
// ///////////////////////////////////////////////

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "colorgen.toml")

	if _, err := run(t, dir, "config", "init"); err != nil {
		t.Fatalf("config init: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(data, rootpkg.DefaultConfigTOML) {
		t.Error("written config differs from embedded default")
	}
	if _, err := config.Load(path); err != nil {
		t.Errorf("written config does not load: %v", err)
	}

	if _, err := run(t, dir, "config", "init"); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("second init error = %v, want already exists", err)
	}
	if _, err := run(t, dir, "config", "init", "--force"); err != nil {
		t.Errorf("init --force: %v", err)
	}
}

func TestConfigInitIgnoresBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "colorgen.toml"), []byte("[output\n"), 0o644)
	if _, err := run(t, dir, "config", "init", "--force"); err != nil {
		t.Fatalf("config init --force over a broken config: %v", err)
	}
}

// ///////////////////////////////////////////////
// palette export Tests
// ///////////////////////////////////////////////

func TestPaletteExport(t *testing.T) {
	dir := t.TempDir()
	stdout, err := run(t, dir, "palette", "export")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	tbl, err := palette.Decode([]byte(stdout))
	if err != nil {
		t.Fatalf("decode exported palette: %v", err)
	}
	if tbl.Len() != 61 {
		t.Errorf("exported %d variants, want 61", tbl.Len())
	}

	file := filepath.Join(dir, "grey.toml")
	if _, err := run(t, dir, "palette", "export", "--include", "Grey/*", "-o", file); err != nil {
		t.Fatalf("export -o: %v", err)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	grey, err := palette.Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(grey.Families) != 1 || grey.Len() != 12 {
		t.Errorf("grey export = %d families, %d variants", len(grey.Families), grey.Len())
	}
}

// ///////////////////////////////////////////////
// list / preview Tests
// ///////////////////////////////////////////////

func TestList(t *testing.T) {
	stdout, err := run(t, t.TempDir(), "list", "--include", "Navy/**")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"Navy", "navy500", "#1C274C", "10 variants"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("list output missing %q:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "yellow50") {
		t.Error("list output includes an unselected variant")
	}
}

func TestPreview(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "sheet.png")
	stdout, err := run(t, dir, "preview", "-o", file, "--include", "Red/*")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !strings.HasPrefix(stdout, "Wrote "+file) {
		t.Errorf("stdout = %q", stdout)
	}
	f, err := os.Open(file)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("preview is not a PNG: %v", err)
	}
}

// ///////////////////////////////////////////////
// watch Tests
// ///////////////////////////////////////////////

func TestWatchRegeneratesOnConfigChange(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping slow watcher test in short mode")
	}

	dir := t.TempDir()
	out := filepath.Join(dir, "Colors.xcassets")
	cfgPath := filepath.Join(dir, "colorgen.toml")
	write := func(dark string) {
		cfg := "[output]\nbase_path = " + quote(out) + "\ndark_mode = " + quote(dark) + "\n[palette]\ninclude = [\"Navy/navy500\"]\n"
		if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("off")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		var stdout, stderr bytes.Buffer
		done <- newApp(&stdout, &stderr).execute(ctx, []string{"watch", "--config", cfgPath})
	}()

	contents := filepath.Join(out, "navy500.colorset", "Contents.json")
	waitFor(t, func() bool { return countColorsets(t, out) == 1 })
	time.Sleep(200 * time.Millisecond)

	write("mirror")
	waitFor(t, func() bool {
		data, err := os.ReadFile(contents)
		return err == nil && strings.Contains(string(data), `"dark"`)
	})

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watch returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

// ///////////////////////////////////////////////
// Helpers
// ///////////////////////////////////////////////

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal("timed out waiting for condition")
}

// quote renders s as a TOML literal string, which keeps Windows paths intact.
func quote(s string) string {
	return "'" + s + "'"
}
