package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"naccost-lab/internal/domain/models"
	"naccost-lab/pkg/logger"
)

// catalogFile is the override file name looked up in the data directory.
const catalogFile = "catalog.json"

type fileCatalog struct {
	Version    string                        `json:"version"`
	Vendors    []*models.VendorProfile       `json:"vendors"`
	Industries []*models.IndustryProfile     `json:"industries"`
	Frameworks []*models.ComplianceFramework `json:"frameworks"`
}

// LoadDir loads a catalog snapshot from catalog.json in the given
// directory. The file replaces the embedded dataset wholesale; partial
// overrides are not supported.
func LoadDir(dir string) (*Catalog, error) {
	path := filepath.Join(dir, catalogFile)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	var fc fileCatalog
	if err := json.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	if fc.Version == "" {
		return nil, fmt.Errorf("catalog file %s: version is required", path)
	}
	c, err := New(fc.Version, fc.Vendors, fc.Industries, fc.Frameworks)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return c, nil
}

// Load returns the catalog for the configured data directory, falling
// back to the embedded dataset when no directory is set.
func Load(dataDir string, log *logger.Logger) (*Catalog, error) {
	if dataDir == "" {
		c := Builtin()
		if log != nil {
			log.Info().Str("version", c.Version()).Msg("Loaded embedded catalog")
		}
		return c, nil
	}
	c, err := LoadDir(dataDir)
	if err != nil {
		return nil, err
	}
	if log != nil {
		log.Info().Str("version", c.Version()).Str("data_dir", dataDir).Msg("Loaded catalog from data directory")
	}
	return c, nil
}
