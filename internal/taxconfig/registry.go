package taxconfig

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"sync"

	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yaml
var embeddedTables embed.FS

// ErrInvalidTable is returned when a table document fails structural checks
var ErrInvalidTable = errors.New("invalid tax table")

type registryKey struct {
	year   int
	status domain.FilingStatus
}

// Registry maps (tax year, filing status) to a Configuration. It is safe for
// concurrent use; Lookup always hands out a deep copy.
type Registry struct {
	mu     sync.RWMutex
	tables map[registryKey]Configuration
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{tables: make(map[registryKey]Configuration)}
}

var (
	defaultOnce    sync.Once
	defaultConfigs []Configuration
	defaultErr     error
)

// NewDefaultRegistry creates a registry preloaded with the embedded tables
func NewDefaultRegistry() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultConfigs, defaultErr = parseEmbedded()
	})
	if defaultErr != nil {
		return nil, defaultErr
	}
	r := NewRegistry()
	for _, cfg := range defaultConfigs {
		if err := r.Register(cfg.Clone()); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func parseEmbedded() ([]Configuration, error) {
	entries, err := fs.ReadDir(embeddedTables, "tables")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded tables: %w", err)
	}
	var configs []Configuration
	for _, e := range entries {
		data, err := embeddedTables.ReadFile(path.Join("tables", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded table %s: %w", e.Name(), err)
		}
		parsed, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("embedded table %s: %w", e.Name(), err)
		}
		configs = append(configs, parsed...)
	}
	return configs, nil
}

// Parse decodes one or more YAML table documents
func Parse(data []byte) ([]Configuration, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []Configuration
	for {
		var cfg Configuration
		err := dec.Decode(&cfg)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		ok, err := IsCompatible(cfg.SchemaVersion)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: schema version %s is not supported (this build reads up to %s)",
				ErrInvalidTable, cfg.SchemaVersion, SchemaVersion)
		}
		out = append(out, cfg)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no table documents found", ErrInvalidTable)
	}
	return out, nil
}

// LoadFile parses a table file and registers every document in it
func (r *Registry) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	configs, err := Parse(data)
	if err != nil {
		return fmt.Errorf("table file %s: %w", filename, err)
	}
	for _, cfg := range configs {
		if err := r.Register(cfg); err != nil {
			return fmt.Errorf("table file %s: %w", filename, err)
		}
	}
	return nil
}

// Register validates cfg and adds it, replacing any table for the same key
func (r *Registry) Register(cfg Configuration) error {
	if err := Validate(cfg); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[registryKey{cfg.Year, cfg.FilingStatus}] = cfg.Clone()
	return nil
}

// Lookup returns the table for the year and status or a CONFIGURATION_MISMATCH error
func (r *Registry) Lookup(year int, status domain.FilingStatus) (Configuration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.tables[registryKey{year, status}]
	if !ok {
		return Configuration{}, domain.NewConfigurationMismatch("no tax table registered for %d / %s", year, status)
	}
	return cfg.Clone(), nil
}

// Configurations returns every registered table ordered by year then status
func (r *Registry) Configurations() []Configuration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Configuration, 0, len(r.tables))
	for _, cfg := range r.tables {
		out = append(out, cfg.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].FilingStatus < out[j].FilingStatus
	})
	return out
}

// Years returns the distinct registered tax years in ascending order
func (r *Registry) Years() []int {
	seen := make(map[int]bool)
	var years []int
	for _, cfg := range r.Configurations() {
		if !seen[cfg.Year] {
			seen[cfg.Year] = true
			years = append(years, cfg.Year)
		}
	}
	return years
}

// Validate checks a configuration for structural problems
func Validate(cfg Configuration) error {
	if cfg.Year <= 0 {
		return fmt.Errorf("%w: year is required", ErrInvalidTable)
	}
	if !cfg.FilingStatus.IsValid() {
		return fmt.Errorf("%w: unknown filing status %q", ErrInvalidTable, cfg.FilingStatus)
	}
	if err := validateBrackets("federal.ordinary_brackets", cfg.Federal.OrdinaryBrackets); err != nil {
		return err
	}
	if err := validateBrackets("federal.capital_gain_brackets", cfg.Federal.CapitalGainBrackets); err != nil {
		return err
	}
	if len(cfg.Federal.CapitalGainBrackets) != 3 {
		return fmt.Errorf("%w: federal.capital_gain_brackets must have exactly 3 brackets, got %d",
			ErrInvalidTable, len(cfg.Federal.CapitalGainBrackets))
	}
	if err := validateBrackets("california.brackets", cfg.California.Brackets); err != nil {
		return err
	}
	if cfg.California.ExemptionPhaseoutIncrement.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: california.exemption_phaseout_increment must be positive", ErrInvalidTable)
	}
	return nil
}

// validateBrackets requires a contiguous ascending partition of [0, inf)
func validateBrackets(name string, brackets []Bracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("%w: %s is empty", ErrInvalidTable, name)
	}
	if !brackets[0].Min.IsZero() {
		return fmt.Errorf("%w: %s must start at 0", ErrInvalidTable, name)
	}
	for i, b := range brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("%w: %s[%d] rate %s out of range", ErrInvalidTable, name, i, b.Rate.String())
		}
		last := i == len(brackets)-1
		if last {
			if b.Max != nil {
				return fmt.Errorf("%w: %s top bracket must be unbounded", ErrInvalidTable, name)
			}
			continue
		}
		if b.Max == nil {
			return fmt.Errorf("%w: %s[%d] is unbounded but is not the top bracket", ErrInvalidTable, name, i)
		}
		if b.Max.LessThanOrEqual(b.Min) {
			return fmt.Errorf("%w: %s[%d] max %s is not above min %s", ErrInvalidTable, name, i, b.Max.String(), b.Min.String())
		}
		if !brackets[i+1].Min.Equal(*b.Max) {
			return fmt.Errorf("%w: %s gap between bracket %d and %d", ErrInvalidTable, name, i, i+1)
		}
	}
	return nil
}
