package pricing

// ServiceOffering is a sellable agency service. The catalog is authored at
// build time; base prices are in the numeraire currency (USD-equivalent).
//
// Display names double as the vocabulary the recommendation quiz answers in,
// so renaming an offering here must be mirrored in the quiz rules.

type ServiceOffering struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"base_price"`
}

// FeatureAddOn is a flat-priced optional extra on top of a service.

type FeatureAddOn struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

const (
	// Complexity ranks run 1..5; higher rank means a harder project and a
	// larger multiplier.
	MinComplexityRank = 1
	MaxComplexityRank = 5

	// Timeline ranks run 1..4; rank 1 is "Rush" and carries the largest
	// multiplier (urgency costs extra, flexibility earns a discount).
	MinTimelineRank = 1
	MaxTimelineRank = 4
)

var serviceOfferings = []ServiceOffering{
	{ID: "web-design", Name: "Web Design & Development", BasePrice: 15000},
	{ID: "ecommerce", Name: "E-commerce Solutions", BasePrice: 25000},
	{ID: "saas", Name: "SaaS Development", BasePrice: 45000},
	{ID: "custom-software", Name: "Custom Software Development", BasePrice: 35000},
	{ID: "ai-automation", Name: "AI & Automation Solutions", BasePrice: 30000},
	{ID: "mobile-app", Name: "Mobile App Development", BasePrice: 28000},
	{ID: "digital-marketing", Name: "Digital Marketing", BasePrice: 8000},
}

var featureAddOns = []FeatureAddOn{
	{ID: "seo-optimization", Name: "SEO Optimization", Price: 8000},
	{ID: "ssl-certificate", Name: "SSL Certificate", Price: 2000},
	{ID: "cms", Name: "Content Management System", Price: 5000},
	{ID: "payment-integration", Name: "Payment Gateway Integration", Price: 6000},
	{ID: "user-accounts", Name: "User Accounts & Authentication", Price: 4000},
	{ID: "analytics-dashboard", Name: "Analytics Dashboard", Price: 7000},
	{ID: "live-chat", Name: "Live Chat Support", Price: 3000},
	{ID: "multi-language", Name: "Multi-language Support", Price: 5000},
}

var complexityMultipliers = map[int]float64{
	1: 1.0,
	2: 1.3,
	3: 1.6,
	4: 2.0,
	5: 2.5,
}

var timelineMultipliers = map[int]float64{
	1: 1.2, // Rush
	2: 1.0, // Standard
	3: 0.9, // Relaxed
	4: 0.8, // Flexible
}

// Services returns the offerings in catalog order.
func Services() []ServiceOffering {
	out := make([]ServiceOffering, len(serviceOfferings))
	copy(out, serviceOfferings)
	return out
}

// Features returns the add-ons in catalog order.
func Features() []FeatureAddOn {
	out := make([]FeatureAddOn, len(featureAddOns))
	copy(out, featureAddOns)
	return out
}

// FindService resolves an offering by id.
func FindService(id string) (ServiceOffering, bool) {
	for _, s := range serviceOfferings {
		if s.ID == id {
			return s, true
		}
	}
	return ServiceOffering{}, false
}

// FindServiceByName resolves an offering by display name. The quiz engine
// recommends by display name, so this is the bridge back to the catalog.
func FindServiceByName(name string) (ServiceOffering, bool) {
	for _, s := range serviceOfferings {
		if s.Name == name {
			return s, true
		}
	}
	return ServiceOffering{}, false
}

// FindFeature resolves an add-on by id.
func FindFeature(id string) (FeatureAddOn, bool) {
	for _, f := range featureAddOns {
		if f.ID == id {
			return f, true
		}
	}
	return FeatureAddOn{}, false
}

// ComplexityMultiplier returns the multiplier for a rank and whether the
// rank is a valid one.
func ComplexityMultiplier(rank int) (float64, bool) {
	m, ok := complexityMultipliers[rank]
	return m, ok
}

// TimelineMultiplier returns the multiplier for a rank and whether the rank
// is a valid one.
func TimelineMultiplier(rank int) (float64, bool) {
	m, ok := timelineMultipliers[rank]
	return m, ok
}
