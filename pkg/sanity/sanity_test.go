package sanity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ashduino101/polyparser/pkg/errors"
)

func TestCheckInRange(t *testing.T) {
	g := NewGuard(DefaultConfig(), nil)
	if err := g.Check("count", 12); err != nil {
		t.Fatalf("Check = %v, want nil", err)
	}
	if g.Offenses() != 0 {
		t.Errorf("Offenses = %d, want 0", g.Offenses())
	}
}

func TestCheckWarnBandDoesNotOffend(t *testing.T) {
	g := NewGuard(DefaultConfig(), nil)
	// Above warnMax (4096) but below max (10000): warn only.
	if err := g.Check("count", 5000); err != nil {
		t.Fatalf("Check = %v, want nil", err)
	}
	if g.Offenses() != 0 {
		t.Errorf("Offenses = %d, want 0", g.Offenses())
	}
}

func TestEscalationAfterThreeOffenses(t *testing.T) {
	g := NewGuard(DefaultConfig(), nil)

	// The first two hard violations log and continue.
	for i := 0; i < 2; i++ {
		if err := g.Check("count", -999999); err != nil {
			t.Fatalf("offense %d: Check = %v, want nil", i+1, err)
		}
	}

	// The third aborts.
	err := g.Check("count", 999999)
	if err == nil {
		t.Fatal("Check = nil, want RANGE error on third offense")
	}
	if !errors.Is(err, errors.ErrCodeRange) {
		t.Errorf("Check = %v, want RANGE", err)
	}
}

func TestWarnAfterLimitAborts(t *testing.T) {
	g := NewGuard(DefaultConfig(), nil)
	g.offenses = 3

	// Even a soft violation aborts once the limit has been reached.
	if err := g.Check("count", 5000); !errors.Is(err, errors.ErrCodeRange) {
		t.Errorf("Check = %v, want RANGE", err)
	}
}

func TestVersionEnvelope(t *testing.T) {
	g := NewGuard(DefaultConfig(), nil)
	if err := g.CheckVersion("layout version", 26); err != nil {
		t.Errorf("CheckVersion(26) = %v, want nil", err)
	}
	if err := g.CheckVersion("layout version", -1); err != nil {
		t.Errorf("CheckVersion(-1) = %v, want nil (first offense logs)", err)
	}
	if g.Offenses() != 1 {
		t.Errorf("Offenses = %d, want 1", g.Offenses())
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "polyparser.toml")
	data := `
max_offenses = 5

[default]
min = -10
max = 99
warn_min = 0
warn_max = 50
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig = %v", err)
	}
	if cfg.MaxOffenses != 5 {
		t.Errorf("MaxOffenses = %d, want 5", cfg.MaxOffenses)
	}
	if cfg.Default.Max != 99 {
		t.Errorf("Default.Max = %d, want 99", cfg.Default.Max)
	}
	// Sections absent from the file keep their defaults.
	if cfg.Version.Max != 100 {
		t.Errorf("Version.Max = %d, want 100", cfg.Version.Max)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("LoadConfig = nil, want error for missing file")
	}
}
