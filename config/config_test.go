package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/troll-dodge/engine"
)

// isolate runs the test in an empty directory so no stray .env is picked up
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	// os.Chdir + Cleanup: t.Chdir requires Go 1.24
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return dir
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Difficulty != "normal" || cfg.Audio.Volume != 50 || !cfg.Audio.Enabled {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.PlayArea.Width != 800 || cfg.PlayArea.Height != 500 {
		t.Errorf("play area = %+v", cfg.PlayArea)
	}
	if cfg.DifficultyLevel() != engine.DifficultyNormal {
		t.Errorf("DifficultyLevel = %v", cfg.DifficultyLevel())
	}
}

func TestLoadYAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "troll.yaml")
	writeFile(t, path, `
difficulty: hard
seed: 42
frame_interval: 20ms
audio:
  enabled: false
  volume: 80
play_area:
  width: 1024
  height: 600
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Difficulty != "hard" || cfg.Seed != 42 || cfg.FrameInterval != 20*time.Millisecond {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Audio.Enabled || cfg.Audio.Volume != 80 {
		t.Errorf("audio = %+v", cfg.Audio)
	}
	if cfg.PlayArea.Width != 1024 || cfg.PlayArea.Height != 600 {
		t.Errorf("play area = %+v", cfg.PlayArea)
	}
	// Unset keys keep defaults
	if cfg.LogDir != "logs" {
		t.Errorf("LogDir = %q, want default", cfg.LogDir)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "troll.yaml")
	writeFile(t, path, "difficulty: hard\n")

	t.Setenv("TROLL_DIFFICULTY", "easy")
	t.Setenv("TROLL_VOLUME", "10")
	t.Setenv("TROLL_DEBUG", "true")
	t.Setenv("TROLL_SEED", "7")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Difficulty != "easy" || cfg.Audio.Volume != 10 || !cfg.Debug || cfg.Seed != 7 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestDotEnvLoaded(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "TROLL_AUDIO=false\n")
	// godotenv sets process env; make sure it is restored
	t.Setenv("TROLL_AUDIO", "")
	os.Unsetenv("TROLL_AUDIO")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Audio.Enabled {
		t.Error(".env TROLL_AUDIO=false not applied")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := isolate(t)

	tests := []struct {
		name string
		yaml string
		env  map[string]string
		want error
	}{
		{"bad difficulty", "difficulty: insane\n", nil, ErrInvalid},
		{"volume range", "audio:\n  volume: 150\n", nil, ErrInvalid},
		{"tiny play area", "play_area:\n  width: 100\n  height: 100\n", nil, ErrInvalid},
		{"malformed yaml", "difficulty: [\n", nil, ErrRead},
		{"bad env seed", "", map[string]string{"TROLL_SEED": "abc"}, ErrInvalid},
		{"bad env interval", "", map[string]string{"TROLL_FRAME_INTERVAL": "fast"}, ErrInvalid},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := filepath.Join(dir, "case"+string(rune('a'+i))+".yaml")
			writeFile(t, path, tt.yaml)

			_, err := Load(path)
			if !errors.Is(err, tt.want) {
				t.Errorf("Load error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"))
	if !errors.Is(err, ErrRead) {
		t.Errorf("missing file error = %v, want ErrRead", err)
	}
}
