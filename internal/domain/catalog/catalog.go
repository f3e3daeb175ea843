// Package catalog holds the static reference data the cost engine operates
// on: vendor profiles, industry profiles, and compliance frameworks. A
// catalog is immutable after construction; hot reloads swap whole
// snapshots through Store.
package catalog

import (
	"fmt"
	"sort"
	"time"

	"naccost-lab/internal/domain/models"
)

// Catalog is one immutable snapshot of the reference data.
type Catalog struct {
	version    string
	loadedAt   time.Time
	vendors    map[string]*models.VendorProfile
	industries map[string]*models.IndustryProfile
	frameworks map[string]*models.ComplianceFramework
}

// New builds a validated catalog from the given records. Duplicate ids,
// a missing no-nac baseline, dangling framework references, or any
// malformed record fail construction; nothing is silently defaulted.
// Legacy 0-10 capability scores are normalized to the canonical 0-100
// scale before validation.
func New(version string, vendors []*models.VendorProfile, industries []*models.IndustryProfile, frameworks []*models.ComplianceFramework) (*Catalog, error) {
	c := &Catalog{
		version:    version,
		loadedAt:   time.Now().UTC(),
		vendors:    make(map[string]*models.VendorProfile, len(vendors)),
		industries: make(map[string]*models.IndustryProfile, len(industries)),
		frameworks: make(map[string]*models.ComplianceFramework, len(frameworks)),
	}

	for _, f := range frameworks {
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("invalid framework: %w", err)
		}
		if _, dup := c.frameworks[f.ID]; dup {
			return nil, fmt.Errorf("duplicate framework id: %s", f.ID)
		}
		c.frameworks[f.ID] = f
	}

	for _, v := range vendors {
		normalizeScores(v)
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("invalid vendor: %w", err)
		}
		if _, dup := c.vendors[v.ID]; dup {
			return nil, fmt.Errorf("duplicate vendor id: %s", v.ID)
		}
		for fw := range v.ComplianceScores {
			if _, ok := c.frameworks[fw]; !ok {
				return nil, fmt.Errorf("vendor %s references unknown framework %s", v.ID, fw)
			}
		}
		c.vendors[v.ID] = v
	}

	if _, ok := c.vendors[models.BaselineVendorID]; !ok {
		return nil, fmt.Errorf("catalog is missing the %s baseline vendor", models.BaselineVendorID)
	}

	for _, ind := range industries {
		if err := ind.Validate(); err != nil {
			return nil, fmt.Errorf("invalid industry: %w", err)
		}
		if _, dup := c.industries[ind.ID]; dup {
			return nil, fmt.Errorf("duplicate industry id: %s", ind.ID)
		}
		for _, fw := range ind.ComplianceFrameworks {
			if _, ok := c.frameworks[fw]; !ok {
				return nil, fmt.Errorf("industry %s references unknown framework %s", ind.ID, fw)
			}
		}
		c.industries[ind.ID] = ind
	}

	return c, nil
}

// normalizeScores converts legacy 0-10 capability scores to the canonical
// 0-100 scale. A vendor whose feature scores and zero trust score all fit
// in [0,10] is treated as legacy-scaled; mixed-scale records are left to
// fail validation.
func normalizeScores(v *models.VendorProfile) {
	if len(v.Features) == 0 {
		return
	}
	for _, s := range v.Features {
		if s > 10 {
			return
		}
	}
	if v.ZeroTrustScore > 10 {
		return
	}
	for name, s := range v.Features {
		v.Features[name] = s * 10
	}
	v.ZeroTrustScore *= 10
}

// Version returns the catalog's dataset version.
func (c *Catalog) Version() string {
	return c.version
}

// LoadedAt returns when this snapshot was constructed.
func (c *Catalog) LoadedAt() time.Time {
	return c.loadedAt
}

// Vendor looks up a vendor by id.
func (c *Catalog) Vendor(id string) (*models.VendorProfile, bool) {
	v, ok := c.vendors[id]
	return v, ok
}

// Vendors returns all vendors sorted by id.
func (c *Catalog) Vendors() []*models.VendorProfile {
	out := make([]*models.VendorProfile, 0, len(c.vendors))
	for _, v := range c.vendors {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Industry looks up an industry by id.
func (c *Catalog) Industry(id string) (*models.IndustryProfile, bool) {
	i, ok := c.industries[id]
	return i, ok
}

// Industries returns all industries sorted by id.
func (c *Catalog) Industries() []*models.IndustryProfile {
	out := make([]*models.IndustryProfile, 0, len(c.industries))
	for _, i := range c.industries {
		out = append(out, i)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Framework looks up a compliance framework by id.
func (c *Catalog) Framework(id string) (*models.ComplianceFramework, bool) {
	f, ok := c.frameworks[id]
	return f, ok
}

// Frameworks returns all frameworks sorted by id.
func (c *Catalog) Frameworks() []*models.ComplianceFramework {
	out := make([]*models.ComplianceFramework, 0, len(c.frameworks))
	for _, f := range c.frameworks {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Stats summarizes the snapshot for the stats endpoint.
func (c *Catalog) Stats() models.CatalogStats {
	stats := models.CatalogStats{
		Version:             c.version,
		TotalVendors:        len(c.vendors),
		VendorsByDeployment: make(map[string]int),
		VendorsByPricing:    make(map[string]int),
		TotalIndustries:     len(c.industries),
		TotalFrameworks:     len(c.frameworks),
		LoadedAt:            c.loadedAt,
	}
	for _, v := range c.vendors {
		stats.VendorsByDeployment[v.Deployment.String()]++
		stats.VendorsByPricing[v.Pricing.Model.String()]++
	}
	return stats
}
