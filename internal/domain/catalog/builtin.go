package catalog

import "naccost-lab/internal/domain/models"

// BuiltinVersion identifies the embedded dataset snapshot.
const BuiltinVersion = "2025.05.18"

// Builtin returns the embedded canonical catalog. The dataset is static
// and covered by tests, so a construction failure here is a programming
// error and panics.
func Builtin() *Catalog {
	c, err := New(BuiltinVersion, builtinVendors(), builtinIndustries(), builtinFrameworks())
	if err != nil {
		panic("catalog: invalid builtin dataset: " + err.Error())
	}
	return c
}

// Feature and zero trust scores below are on the legacy 0-10 scale and
// are normalized to 0-100 at load time.
func builtinVendors() []*models.VendorProfile {
	return []*models.VendorProfile{
		{
			ID:          "portnox",
			Name:        "Portnox Cloud",
			Description: "Cloud-native NAC with agentless deployment and zero-trust access control",
			Deployment:  models.DeploymentCloud,
			Pricing: models.Pricing{
				Model:                   models.PricingSubscription,
				BasePrice:               3.00,
				ImplementationDailyRate: 1500,
				Bands: []models.PriceBand{
					{UpTo: 1000, ImplementationDays: 14, FteRequired: 0.15},
					{UpTo: 5000, ImplementationDays: 21, FteRequired: 0.25},
					{UpTo: 10000, ImplementationDays: 30, FteRequired: 0.5},
					{ImplementationDays: 45, FteRequired: 0.75},
				},
				RiskReductionEffectiveness: 85,
				MeanTimeToRespondMinutes:   45,
			},
			CostBreakdown: models.CostBreakdown{Software: 43000, Implementation: 15000, Personnel: 37500, Training: 5000},
			Features: map[string]int{
				"cloudNative": 10, "zeroTrust": 9, "deploymentSpeed": 10,
				"managementSimplicity": 9, "scalability": 10, "remoteAccess": 9,
				"compliance": 8, "costEffectiveness": 10, "threatPrevention": 8,
				"deviceDiscovery": 9, "userExperience": 9, "thirdPartyIntegration": 8,
			},
			ComplianceScores: map[string]int{
				"pci": 95, "hipaa": 92, "nist": 94, "gdpr": 90,
				"iso": 93, "cmmc": 96, "ferpa": 88, "sox": 90,
			},
			ZeroTrustScore:       9,
			MarketShare:          12,
			CustomerSatisfaction: 4.7,
			AnalystRating:        4.5,
		},
		{
			ID:          "cisco",
			Name:        "Cisco ISE",
			Description: "Enterprise identity services engine with deep Cisco ecosystem integration",
			Deployment:  models.DeploymentOnPremises,
			Pricing: models.Pricing{
				Model:                   models.PricingPerpetual,
				BasePrice:               85.00,
				MaintenancePercentage:   20,
				ImplementationDailyRate: 2000,
				Bands: []models.PriceBand{
					{UpTo: 1000, ImplementationDays: 45, FteRequired: 0.5, HardwareCost: 50000},
					{UpTo: 5000, ImplementationDays: 90, FteRequired: 1.0, HardwareCost: 120000},
					{UpTo: 10000, ImplementationDays: 120, FteRequired: 1.5, HardwareCost: 200000},
					{ImplementationDays: 180, FteRequired: 2.0, HardwareCost: 350000},
				},
				RiskReductionEffectiveness: 75,
				MeanTimeToRespondMinutes:   90,
			},
			CostBreakdown: models.CostBreakdown{Hardware: 95000, Software: 135000, Implementation: 85000, Maintenance: 32000, Personnel: 195000, Training: 18000},
			Features: map[string]int{
				"cloudNative": 4, "zeroTrust": 7, "deploymentSpeed": 3,
				"managementSimplicity": 4, "scalability": 8, "remoteAccess": 6,
				"compliance": 9, "costEffectiveness": 3, "threatPrevention": 8,
				"deviceDiscovery": 8, "userExperience": 5, "thirdPartyIntegration": 9,
			},
			ComplianceScores: map[string]int{
				"pci": 90, "hipaa": 88, "nist": 92, "gdpr": 82,
				"iso": 90, "cmmc": 92, "ferpa": 80, "sox": 85,
			},
			ZeroTrustScore:       7,
			MarketShare:          35,
			CustomerSatisfaction: 3.8,
			AnalystRating:        4.1,
		},
		{
			ID:          "aruba",
			Name:        "Aruba ClearPass",
			Description: "Policy management platform for wired, wireless, and VPN access",
			Deployment:  models.DeploymentOnPremises,
			Pricing: models.Pricing{
				Model:                   models.PricingPerpetual,
				BasePrice:               70.00,
				MaintenancePercentage:   18,
				ImplementationDailyRate: 1800,
				Bands: []models.PriceBand{
					{UpTo: 1000, ImplementationDays: 40, FteRequired: 0.4, HardwareCost: 40000},
					{UpTo: 5000, ImplementationDays: 75, FteRequired: 0.75, HardwareCost: 90000},
					{UpTo: 10000, ImplementationDays: 100, FteRequired: 1.25, HardwareCost: 150000},
					{ImplementationDays: 150, FteRequired: 1.75, HardwareCost: 250000},
				},
				RiskReductionEffectiveness: 70,
				MeanTimeToRespondMinutes:   105,
			},
			CostBreakdown: models.CostBreakdown{Hardware: 85000, Software: 105000, Implementation: 65000, Maintenance: 25000, Personnel: 165000, Training: 14000},
			Features: map[string]int{
				"cloudNative": 5, "zeroTrust": 6, "deploymentSpeed": 4,
				"managementSimplicity": 5, "scalability": 7, "remoteAccess": 7,
				"compliance": 8, "costEffectiveness": 5, "threatPrevention": 7,
				"deviceDiscovery": 8, "userExperience": 6, "thirdPartyIntegration": 7,
			},
			ComplianceScores: map[string]int{
				"pci": 88, "hipaa": 85, "nist": 88, "gdpr": 80,
				"iso": 87, "cmmc": 85, "ferpa": 82, "sox": 82,
			},
			ZeroTrustScore:       6,
			MarketShare:          18,
			CustomerSatisfaction: 4.0,
			AnalystRating:        4.0,
		},
		{
			ID:          "forescout",
			Name:        "Forescout",
			Description: "Agentless device visibility and control across IT, OT, and IoT",
			Deployment:  models.DeploymentOnPremises,
			Pricing: models.Pricing{
				Model:                   models.PricingPerpetual,
				BasePrice:               75.00,
				MaintenancePercentage:   22,
				ImplementationDailyRate: 1900,
				Bands: []models.PriceBand{
					{UpTo: 1000, ImplementationDays: 50, FteRequired: 0.5, HardwareCost: 45000},
					{UpTo: 5000, ImplementationDays: 90, FteRequired: 0.8, HardwareCost: 100000},
					{UpTo: 10000, ImplementationDays: 130, FteRequired: 1.3, HardwareCost: 180000},
					{ImplementationDays: 180, FteRequired: 2.0, HardwareCost: 300000},
				},
				RiskReductionEffectiveness: 72,
				MeanTimeToRespondMinutes:   95,
			},
			CostBreakdown: models.CostBreakdown{Hardware: 100000, Software: 125000, Implementation: 90000, Maintenance: 35000, Personnel: 180000, Training: 20000},
			Features: map[string]int{
				"cloudNative": 4, "zeroTrust": 7, "deploymentSpeed": 3,
				"managementSimplicity": 5, "scalability": 8, "remoteAccess": 4,
				"compliance": 8, "costEffectiveness": 4, "threatPrevention": 9,
				"deviceDiscovery": 10, "userExperience": 5, "thirdPartyIntegration": 8,
			},
			ComplianceScores: map[string]int{
				"pci": 85, "hipaa": 84, "nist": 90, "gdpr": 78,
				"iso": 86, "cmmc": 88, "ferpa": 75,
			},
			ZeroTrustScore:       7,
			MarketShare:          15,
			CustomerSatisfaction: 3.9,
			AnalystRating:        4.2,
		},
		{
			ID:          "fortinac",
			Name:        "FortiNAC",
			Description: "Network access control integrated with the Fortinet security fabric",
			Deployment:  models.DeploymentOnPremises,
			Pricing: models.Pricing{
				Model:                   models.PricingPerpetual,
				BasePrice:               60.00,
				MaintenancePercentage:   20,
				ImplementationDailyRate: 1700,
				Bands: []models.PriceBand{
					{UpTo: 1000, ImplementationDays: 35, FteRequired: 0.4, HardwareCost: 30000},
					{UpTo: 5000, ImplementationDays: 70, FteRequired: 0.7, HardwareCost: 75000},
					{UpTo: 10000, ImplementationDays: 100, FteRequired: 1.2, HardwareCost: 140000},
					{ImplementationDays: 140, FteRequired: 1.8, HardwareCost: 220000},
				},
				RiskReductionEffectiveness: 68,
				MeanTimeToRespondMinutes:   110,
			},
			CostBreakdown: models.CostBreakdown{Hardware: 75000, Software: 95000, Implementation: 60000, Maintenance: 24000, Personnel: 150000, Training: 12000},
			Features: map[string]int{
				"cloudNative": 5, "zeroTrust": 7, "deploymentSpeed": 5,
				"managementSimplicity": 6, "scalability": 7, "remoteAccess": 6,
				"compliance": 7, "costEffectiveness": 6, "threatPrevention": 8,
				"deviceDiscovery": 7, "userExperience": 6, "thirdPartyIntegration": 7,
			},
			ComplianceScores: map[string]int{
				"pci": 82, "hipaa": 80, "nist": 84, "gdpr": 75,
				"iso": 82, "ferpa": 74, "sox": 78,
			},
			ZeroTrustScore:       7,
			MarketShare:          8,
			CustomerSatisfaction: 3.8,
			AnalystRating:        3.9,
		},
		{
			ID:          "juniper",
			Name:        "Juniper Mist",
			Description: "AI-driven access assurance delivered through the Mist cloud",
			Deployment:  models.DeploymentHybrid,
			Pricing: models.Pricing{
				Model:                   models.PricingHybrid,
				BasePrice:               50.00,
				MaintenancePercentage:   15,
				ImplementationDailyRate: 1800,
				Bands: []models.PriceBand{
					{UpTo: 1000, ImplementationDays: 30, FteRequired: 0.3, HardwareCost: 20000},
					{UpTo: 5000, ImplementationDays: 60, FteRequired: 0.6, HardwareCost: 60000},
					{UpTo: 10000, ImplementationDays: 90, FteRequired: 1.0, HardwareCost: 100000},
					{ImplementationDays: 130, FteRequired: 1.5, HardwareCost: 180000},
				},
				RiskReductionEffectiveness: 75,
				MeanTimeToRespondMinutes:   85,
			},
			CostBreakdown: models.CostBreakdown{Hardware: 60000, Software: 85000, Implementation: 54000, Maintenance: 18000, Personnel: 130000, Training: 10000},
			Features: map[string]int{
				"cloudNative": 7, "zeroTrust": 8, "deploymentSpeed": 6,
				"managementSimplicity": 7, "scalability": 8, "remoteAccess": 7,
				"compliance": 7, "costEffectiveness": 7, "threatPrevention": 7,
				"deviceDiscovery": 8, "userExperience": 8, "thirdPartyIntegration": 7,
			},
			ComplianceScores: map[string]int{
				"pci": 80, "hipaa": 78, "nist": 82, "gdpr": 76,
				"iso": 80, "cmmc": 80, "ferpa": 72, "sox": 75,
			},
			ZeroTrustScore:       8,
			MarketShare:          6,
			CustomerSatisfaction: 4.3,
			AnalystRating:        4.2,
		},
		{
			ID:          "extreme",
			Name:        "Extreme NAC",
			Description: "Access control for campus and fabric networks from ExtremeCloud",
			Deployment:  models.DeploymentOnPremises,
			Pricing: models.Pricing{
				Model:                   models.PricingPerpetual,
				BasePrice:               65.00,
				MaintenancePercentage:   18,
				ImplementationDailyRate: 1750,
				Bands: []models.PriceBand{
					{UpTo: 1000, ImplementationDays: 38, FteRequired: 0.45, HardwareCost: 35000},
					{UpTo: 5000, ImplementationDays: 75, FteRequired: 0.8, HardwareCost: 85000},
					{UpTo: 10000, ImplementationDays: 110, FteRequired: 1.3, HardwareCost: 150000},
					{ImplementationDays: 150, FteRequired: 1.8, HardwareCost: 270000},
				},
				RiskReductionEffectiveness: 70,
				MeanTimeToRespondMinutes:   100,
			},
			CostBreakdown: models.CostBreakdown{Hardware: 70000, Software: 90000, Implementation: 66000, Maintenance: 22000, Personnel: 145000, Training: 12000},
			Features: map[string]int{
				"cloudNative": 5, "zeroTrust": 7, "deploymentSpeed": 5,
				"managementSimplicity": 6, "scalability": 8, "remoteAccess": 6,
				"compliance": 7, "costEffectiveness": 6, "threatPrevention": 7,
				"deviceDiscovery": 8, "userExperience": 6, "thirdPartyIntegration": 7,
			},
			ComplianceScores: map[string]int{
				"pci": 78, "hipaa": 76, "nist": 80, "gdpr": 72,
				"iso": 78, "cmmc": 76, "ferpa": 70, "sox": 72,
			},
			ZeroTrustScore:       7,
			MarketShare:          7,
			CustomerSatisfaction: 3.9,
			AnalystRating:        3.8,
		},
		{
			ID:          "securew2",
			Name:        "SecureW2",
			Description: "Cloud RADIUS and certificate-based passwordless network access",
			Deployment:  models.DeploymentCloud,
			Pricing: models.Pricing{
				Model:                   models.PricingSubscription,
				BasePrice:               2.50,
				ImplementationDailyRate: 1500,
				Bands: []models.PriceBand{
					{UpTo: 1000, ImplementationDays: 20, FteRequired: 0.2},
					{UpTo: 5000, ImplementationDays: 30, FteRequired: 0.4},
					{UpTo: 10000, ImplementationDays: 45, FteRequired: 0.7},
					{ImplementationDays: 60, FteRequired: 1.0},
				},
				RiskReductionEffectiveness: 65,
				MeanTimeToRespondMinutes:   70,
			},
			CostBreakdown: models.CostBreakdown{Software: 30000, Implementation: 30000, Personnel: 60000, Training: 6000},
			Features: map[string]int{
				"cloudNative": 9, "zeroTrust": 6, "deploymentSpeed": 8,
				"managementSimplicity": 8, "scalability": 7, "remoteAccess": 8,
				"compliance": 6, "costEffectiveness": 8, "threatPrevention": 6,
				"deviceDiscovery": 7, "userExperience": 8, "thirdPartyIntegration": 7,
			},
			ComplianceScores: map[string]int{
				"pci": 70, "hipaa": 68, "nist": 72, "gdpr": 78,
				"iso": 70, "ferpa": 80, "sox": 65,
			},
			ZeroTrustScore:       6,
			MarketShare:          3,
			CustomerSatisfaction: 4.4,
			AnalystRating:        3.6,
		},
		{
			ID:          "arista",
			Name:        "Arista Agni",
			Description: "Identity-based network access service for Arista fabrics",
			Deployment:  models.DeploymentOnPremises,
			Pricing: models.Pricing{
				Model:                   models.PricingPerpetual,
				BasePrice:               65.00,
				MaintenancePercentage:   18,
				ImplementationDailyRate: 1800,
				Bands: []models.PriceBand{
					{UpTo: 1000, ImplementationDays: 40, FteRequired: 0.4, HardwareCost: 35000},
					{UpTo: 5000, ImplementationDays: 80, FteRequired: 0.75, HardwareCost: 85000},
					{UpTo: 10000, ImplementationDays: 110, FteRequired: 1.3, HardwareCost: 150000},
					{ImplementationDays: 160, FteRequired: 1.8, HardwareCost: 260000},
				},
				RiskReductionEffectiveness: 70,
				MeanTimeToRespondMinutes:   100,
			},
			CostBreakdown: models.CostBreakdown{Hardware: 70000, Software: 88000, Implementation: 72000, Maintenance: 21000, Personnel: 150000, Training: 13000},
			Features: map[string]int{
				"cloudNative": 5, "zeroTrust": 7, "deploymentSpeed": 4,
				"managementSimplicity": 5, "scalability": 8, "remoteAccess": 6,
				"compliance": 7, "costEffectiveness": 6, "threatPrevention": 7,
				"deviceDiscovery": 8, "userExperience": 5, "thirdPartyIntegration": 6,
			},
			ComplianceScores: map[string]int{
				"pci": 75, "hipaa": 72, "nist": 78, "gdpr": 70,
				"iso": 76, "cmmc": 74, "ferpa": 66, "sox": 70,
			},
			ZeroTrustScore:       7,
			MarketShare:          4,
			CustomerSatisfaction: 3.8,
			AnalystRating:        3.7,
		},
		{
			ID:          "foxpass",
			Name:        "Foxpass",
			Description: "Hosted RADIUS and LDAP for fast wireless access control rollouts",
			Deployment:  models.DeploymentCloud,
			Pricing: models.Pricing{
				Model:                   models.PricingSubscription,
				BasePrice:               2.00,
				ImplementationDailyRate: 1400,
				Bands: []models.PriceBand{
					{UpTo: 1000, ImplementationDays: 15, FteRequired: 0.2},
					{UpTo: 5000, ImplementationDays: 25, FteRequired: 0.35},
					{UpTo: 10000, ImplementationDays: 40, FteRequired: 0.6},
					{ImplementationDays: 60, FteRequired: 0.9},
				},
				RiskReductionEffectiveness: 60,
				MeanTimeToRespondMinutes:   75,
			},
			CostBreakdown: models.CostBreakdown{Software: 24000, Implementation: 21000, Personnel: 52000, Training: 4000},
			Features: map[string]int{
				"cloudNative": 9, "zeroTrust": 6, "deploymentSpeed": 8,
				"managementSimplicity": 7, "scalability": 7, "remoteAccess": 7,
				"compliance": 5, "costEffectiveness": 8, "threatPrevention": 5,
				"deviceDiscovery": 6, "userExperience": 7, "thirdPartyIntegration": 7,
			},
			ComplianceScores: map[string]int{
				"pci": 62, "hipaa": 58, "nist": 64, "gdpr": 70,
				"iso": 62, "ferpa": 72, "sox": 58,
			},
			ZeroTrustScore:       6,
			MarketShare:          2,
			CustomerSatisfaction: 4.3,
			AnalystRating:        3.4,
		},
		{
			ID:          "microsoft",
			Name:        "Microsoft NPS",
			Description: "Windows Server network policy server with Intune conditional access",
			Deployment:  models.DeploymentOnPremises,
			Pricing: models.Pricing{
				Model:                   models.PricingHybrid,
				BasePrice:               10.00,
				MaintenancePercentage:   25,
				ImplementationDailyRate: 1600,
				Bands: []models.PriceBand{
					{UpTo: 1000, ImplementationDays: 25, FteRequired: 0.4, HardwareCost: 15000},
					{UpTo: 5000, ImplementationDays: 50, FteRequired: 0.8, HardwareCost: 40000},
					{UpTo: 10000, ImplementationDays: 90, FteRequired: 1.4, HardwareCost: 80000},
					{ImplementationDays: 140, FteRequired: 2.0, HardwareCost: 150000},
				},
				RiskReductionEffectiveness: 55,
				MeanTimeToRespondMinutes:   120,
			},
			CostBreakdown: models.CostBreakdown{Hardware: 40000, Software: 12000, Implementation: 40000, Maintenance: 10000, Personnel: 160000, Training: 8000},
			Features: map[string]int{
				"cloudNative": 3, "zeroTrust": 5, "deploymentSpeed": 4,
				"managementSimplicity": 4, "scalability": 7, "remoteAccess": 5,
				"compliance": 6, "costEffectiveness": 7, "threatPrevention": 5,
				"deviceDiscovery": 6, "userExperience": 5, "thirdPartyIntegration": 7,
			},
			ComplianceScores: map[string]int{
				"pci": 60, "hipaa": 55, "nist": 68, "gdpr": 58,
				"iso": 62, "cmmc": 60, "ferpa": 56, "sox": 60,
			},
			ZeroTrustScore:       5,
			MarketShare:          12,
			CustomerSatisfaction: 3.5,
			AnalystRating:        3.2,
		},
		{
			ID:          models.BaselineVendorID,
			Name:        "No NAC",
			Description: "Status quo with no network access control in place",
			Deployment:  models.DeploymentOnPremises,
			Pricing: models.Pricing{
				Model: models.PricingPerpetual,
				Bands: []models.PriceBand{
					{UpTo: 1000}, {UpTo: 5000}, {UpTo: 10000}, {},
				},
				MeanTimeToRespondMinutes: 480,
			},
			Features: map[string]int{
				"cloudNative": 0, "zeroTrust": 0, "deploymentSpeed": 10,
				"managementSimplicity": 1, "scalability": 1, "remoteAccess": 2,
				"compliance": 1, "costEffectiveness": 5, "threatPrevention": 1,
				"deviceDiscovery": 2, "userExperience": 3, "thirdPartyIntegration": 1,
			},
			ComplianceScores:     map[string]int{},
			ZeroTrustScore:       0,
			MarketShare:          30,
			CustomerSatisfaction: 2.0,
			AnalystRating:        1.0,
		},
	}
}

func builtinIndustries() []*models.IndustryProfile {
	return []*models.IndustryProfile{
		{
			ID: "healthcare", Name: "Healthcare", RiskLevel: models.RiskHigh,
			ComplianceFrameworks: []string{"hipaa", "pci"},
			BreachCostPerRecord:  429, AverageBreachCost: 9_230_000, IncidentProbability: 0.32,
			RecommendedControls: []string{"Medical device segmentation", "PHI access auditing", "Guest network isolation"},
		},
		{
			ID: "financial", Name: "Financial Services", RiskLevel: models.RiskRegulated,
			ComplianceFrameworks: []string{"pci", "sox", "gdpr", "nist"},
			BreachCostPerRecord:  406, AverageBreachCost: 5_970_000, IncidentProbability: 0.35,
			RecommendedControls: []string{"Cardholder data isolation", "Privileged access control", "Continuous posture checks"},
		},
		{
			ID: "education", Name: "Education", RiskLevel: models.RiskStandard,
			ComplianceFrameworks: []string{"ferpa", "gdpr"},
			BreachCostPerRecord:  237, AverageBreachCost: 3_860_000, IncidentProbability: 0.43,
			RecommendedControls: []string{"BYOD onboarding", "Residence hall segmentation", "Student record protection"},
		},
		{
			ID: "government", Name: "Government", RiskLevel: models.RiskHigh,
			ComplianceFrameworks: []string{"nist", "cmmc", "gdpr"},
			BreachCostPerRecord:  402, AverageBreachCost: 9_480_000, IncidentProbability: 0.28,
			RecommendedControls: []string{"Classified network separation", "Supply chain device vetting", "Continuous monitoring"},
		},
		{
			ID: "manufacturing", Name: "Manufacturing", RiskLevel: models.RiskElevated,
			ComplianceFrameworks: []string{"iso", "nist"},
			BreachCostPerRecord:  273, AverageBreachCost: 4_470_000, IncidentProbability: 0.39,
			RecommendedControls: []string{"OT/IT segmentation", "Legacy device containment", "Vendor remote access control"},
		},
		{
			ID: "retail", Name: "Retail", RiskLevel: models.RiskElevated,
			ComplianceFrameworks: []string{"pci", "gdpr"},
			BreachCostPerRecord:  243, AverageBreachCost: 3_280_000, IncidentProbability: 0.45,
			RecommendedControls: []string{"POS network isolation", "Store guest WiFi separation", "IoT device inventory"},
		},
		{
			ID: "technology", Name: "Technology", RiskLevel: models.RiskElevated,
			ComplianceFrameworks: []string{"iso", "gdpr", "sox"},
			BreachCostPerRecord:  311, AverageBreachCost: 5_040_000, IncidentProbability: 0.37,
			RecommendedControls: []string{"Source code environment isolation", "Contractor access control", "Remote workforce posture"},
		},
		{
			ID: "energy", Name: "Energy & Utilities", RiskLevel: models.RiskHigh,
			ComplianceFrameworks: []string{"nist", "iso"},
			BreachCostPerRecord:  351, AverageBreachCost: 6_390_000, IncidentProbability: 0.31,
			RecommendedControls: []string{"SCADA network isolation", "Field device authentication", "Critical asset monitoring"},
		},
	}
}

func builtinFrameworks() []*models.ComplianceFramework {
	return []*models.ComplianceFramework{
		{
			ID: "pci", Name: "PCI DSS", FullName: "Payment Card Industry Data Security Standard",
			Description:  "Security standard for organizations that handle branded payment cards",
			Requirements: []string{"Network segmentation", "Access control", "Vulnerability management", "Regular testing"},
			Penalties:    "Fines up to $100,000 per month and loss of card processing privileges",
			NACRelevance: 9,
		},
		{
			ID: "hipaa", Name: "HIPAA", FullName: "Health Insurance Portability and Accountability Act",
			Description:  "US regulation protecting sensitive patient health information",
			Requirements: []string{"Access controls", "Audit controls", "Integrity controls", "Transmission security"},
			Penalties:    "Up to $1.5 million per violation category per year",
			NACRelevance: 8,
		},
		{
			ID: "nist", Name: "NIST 800-53", FullName: "NIST Special Publication 800-53",
			Description:  "Catalog of security and privacy controls for US federal information systems",
			Requirements: []string{"Access control", "Audit and accountability", "Identification and authentication", "System and communications protection"},
			Penalties:    "Loss of federal contracts and authorization to operate",
			NACRelevance: 9,
		},
		{
			ID: "gdpr", Name: "GDPR", FullName: "General Data Protection Regulation",
			Description:  "EU regulation on data protection and privacy",
			Requirements: []string{"Data access controls", "Data protection by design", "Breach notification", "Right to be forgotten"},
			Penalties:    "Up to 4% of annual global turnover or 20 million euros",
			NACRelevance: 7,
		},
		{
			ID: "iso", Name: "ISO 27001", FullName: "International Organization for Standardization 27001",
			Description:  "International standard for information security management systems",
			Requirements: []string{"Asset management", "Access control", "Cryptography", "Physical security"},
			Penalties:    "Certification loss and contractual exposure",
			NACRelevance: 8,
		},
		{
			ID: "cmmc", Name: "CMMC", FullName: "Cybersecurity Maturity Model Certification",
			Description:  "US DoD certification for defense industrial base contractors",
			Requirements: []string{"Access control", "Asset management", "Audit and accountability", "Security assessment"},
			Penalties:    "Disqualification from DoD contracts",
			NACRelevance: 10,
		},
		{
			ID: "ferpa", Name: "FERPA", FullName: "Family Educational Rights and Privacy Act",
			Description:  "US law protecting the privacy of student education records",
			Requirements: []string{"Access control", "Disclosure limitations", "Record management", "Parental and student rights"},
			Penalties:    "Loss of federal education funding",
			NACRelevance: 6,
		},
		{
			ID: "sox", Name: "SOX", FullName: "Sarbanes-Oxley Act",
			Description:  "US law on corporate financial reporting integrity",
			Requirements: []string{"Access controls", "Change management", "Segregation of duties", "IT general controls"},
			Penalties:    "Fines up to $5 million and criminal liability for officers",
			NACRelevance: 7,
		},
	}
}
