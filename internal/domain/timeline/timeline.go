// Package timeline answers "how long will this take" for a (service, size)
// pair from a static delivery table.
package timeline

import "errors"

// ErrEntryNotFound is returned when the table has no cell for the requested
// pair; callers render it as "no estimate available", never as a crash.
var ErrEntryNotFound = errors.New("no timeline entry for this service and size")

// ProjectSize is the coarse sizing bucket used purely as a lookup key.

type ProjectSize string

const (
	SizeSmall      ProjectSize = "small"
	SizeMedium     ProjectSize = "medium"
	SizeLarge      ProjectSize = "large"
	SizeEnterprise ProjectSize = "enterprise"
)

// Sizes returns all buckets in ascending order.
func Sizes() []ProjectSize {
	return []ProjectSize{SizeSmall, SizeMedium, SizeLarge, SizeEnterprise}
}

// ParseProjectSize validates a raw size value.
func ParseProjectSize(raw string) (ProjectSize, bool) {
	switch ProjectSize(raw) {
	case SizeSmall, SizeMedium, SizeLarge, SizeEnterprise:
		return ProjectSize(raw), true
	}
	return "", false
}

// Entry is one cell of the delivery table.

type Entry struct {
	Weeks  string   `json:"weeks"`
	Phases []string `json:"phases"`
}

var deliveryTable = map[string]map[ProjectSize]Entry{
	"web-design": {
		SizeSmall:      {Weeks: "2-4 weeks", Phases: []string{"Discovery", "Design", "Development", "Launch"}},
		SizeMedium:     {Weeks: "4-8 weeks", Phases: []string{"Discovery", "Design", "Development", "Testing", "Launch"}},
		SizeLarge:      {Weeks: "8-14 weeks", Phases: []string{"Discovery", "UX Research", "Design", "Development", "Testing", "Launch"}},
		SizeEnterprise: {Weeks: "14-24 weeks", Phases: []string{"Discovery", "UX Research", "Design", "Development", "Testing", "Rollout", "Handover"}},
	},
	"ecommerce": {
		SizeSmall:      {Weeks: "4-6 weeks", Phases: []string{"Discovery", "Store Setup", "Payment Integration", "Launch"}},
		SizeMedium:     {Weeks: "6-10 weeks", Phases: []string{"Discovery", "Design", "Store Build", "Payment Integration", "Testing", "Launch"}},
		SizeLarge:      {Weeks: "10-16 weeks", Phases: []string{"Discovery", "Design", "Store Build", "Integrations", "Testing", "Launch"}},
		SizeEnterprise: {Weeks: "16-28 weeks", Phases: []string{"Discovery", "Architecture", "Store Build", "Integrations", "Migration", "Testing", "Rollout"}},
	},
	"saas": {
		SizeSmall:      {Weeks: "8-12 weeks", Phases: []string{"Discovery", "MVP Build", "Beta", "Launch"}},
		SizeMedium:     {Weeks: "12-20 weeks", Phases: []string{"Discovery", "Architecture", "MVP Build", "Beta", "Launch"}},
		SizeLarge:      {Weeks: "20-32 weeks", Phases: []string{"Discovery", "Architecture", "Core Build", "Integrations", "Beta", "Launch"}},
		SizeEnterprise: {Weeks: "32-52 weeks", Phases: []string{"Discovery", "Architecture", "Core Build", "Integrations", "Security Review", "Beta", "Rollout"}},
	},
	"custom-software": {
		SizeSmall:      {Weeks: "6-10 weeks", Phases: []string{"Requirements", "Design", "Build", "Delivery"}},
		SizeMedium:     {Weeks: "10-16 weeks", Phases: []string{"Requirements", "Design", "Build", "Testing", "Delivery"}},
		SizeLarge:      {Weeks: "16-26 weeks", Phases: []string{"Requirements", "Architecture", "Build", "Testing", "Delivery"}},
		SizeEnterprise: {Weeks: "26-40 weeks", Phases: []string{"Requirements", "Architecture", "Build", "Integration", "Testing", "Rollout", "Support Handover"}},
	},
	"ai-automation": {
		SizeSmall:      {Weeks: "4-8 weeks", Phases: []string{"Process Audit", "Automation Build", "Pilot", "Rollout"}},
		SizeMedium:     {Weeks: "8-14 weeks", Phases: []string{"Process Audit", "Data Preparation", "Automation Build", "Pilot", "Rollout"}},
		SizeLarge:      {Weeks: "14-22 weeks", Phases: []string{"Process Audit", "Data Preparation", "Model Development", "Automation Build", "Pilot", "Rollout"}},
		SizeEnterprise: {Weeks: "22-36 weeks", Phases: []string{"Process Audit", "Data Preparation", "Model Development", "Automation Build", "Compliance Review", "Pilot", "Rollout"}},
	},
	"mobile-app": {
		SizeSmall:      {Weeks: "6-10 weeks", Phases: []string{"Discovery", "Design", "Development", "Store Submission"}},
		SizeMedium:     {Weeks: "10-16 weeks", Phases: []string{"Discovery", "Design", "Development", "Testing", "Store Submission"}},
		SizeLarge:      {Weeks: "16-24 weeks", Phases: []string{"Discovery", "Design", "Development", "Backend Integration", "Testing", "Store Submission"}},
		SizeEnterprise: {Weeks: "24-40 weeks", Phases: []string{"Discovery", "Design", "Development", "Backend Integration", "Security Review", "Testing", "Rollout"}},
	},
	"digital-marketing": {
		SizeSmall:      {Weeks: "2-4 weeks", Phases: []string{"Audit", "Strategy", "Campaign Launch"}},
		SizeMedium:     {Weeks: "4-8 weeks", Phases: []string{"Audit", "Strategy", "Content Production", "Campaign Launch"}},
		SizeLarge:      {Weeks: "8-12 weeks", Phases: []string{"Audit", "Strategy", "Content Production", "Campaign Launch", "Optimization"}},
		SizeEnterprise: {Weeks: "12-24 weeks", Phases: []string{"Audit", "Strategy", "Content Production", "Multi-channel Launch", "Optimization", "Reporting"}},
	},
}

// Estimate looks up the delivery entry for a (service, size) pair.
func Estimate(serviceID string, size ProjectSize) (Entry, error) {
	bySize, ok := deliveryTable[serviceID]
	if !ok {
		return Entry{}, ErrEntryNotFound
	}
	entry, ok := bySize[size]
	if !ok {
		return Entry{}, ErrEntryNotFound
	}
	out := Entry{Weeks: entry.Weeks, Phases: make([]string, len(entry.Phases))}
	copy(out.Phases, entry.Phases)
	return out, nil
}

// CoveredServices returns the service ids present in the delivery table.
func CoveredServices() []string {
	out := make([]string, 0, len(deliveryTable))
	for id := range deliveryTable {
		out = append(out, id)
	}
	return out
}
