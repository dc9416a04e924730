// Package scenario defines the canonical NGFS-style climate pathway
// archetypes. The table is assembled once at process start and is read-only;
// every other engine package resolves scenarios through the typed accessors
// here.
package scenario

import "errors"

// ID identifies one of the canonical climate pathways.
type ID string

const (
	NetZero2050       ID = "net_zero_2050"
	Below2C           ID = "below_2c"
	DelayedTransition ID = "delayed_transition"
	CurrentPolicies   ID = "current_policies"
)

// ErrUnknownScenario is returned by ParseID for identifiers outside the
// canonical set. Engine-internal lookups fall back to DelayedTransition
// instead; strict validation belongs at the API boundary.
var ErrUnknownScenario = errors.New("unknown_scenario")

// PriceAnchors are the legacy three-point carbon price anchors (USD/tCO2e)
// kept for downstream report consumers that embed these figures.
type PriceAnchors struct {
	Y2025 float64 `json:"y2025"`
	Y2030 float64 `json:"y2030"`
	Y2050 float64 `json:"y2050"`
}

// Scenario is an immutable named climate pathway archetype.
type Scenario struct {
	ID              ID           `json:"id"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Anchors         PriceAnchors `json:"anchors"`
	ReductionTarget float64      `json:"reduction_target"` // fraction of baseline emissions removed by 2050
	Color           string       `json:"color"`
}

var table = map[ID]Scenario{
	NetZero2050: {
		ID:              NetZero2050,
		Name:            "Net Zero 2050",
		Description:     "Orderly transition reaching net zero emissions by 2050, warming held to about 1.5°C.",
		Anchors:         PriceAnchors{Y2025: 75, Y2030: 130, Y2050: 250},
		ReductionTarget: 0.95,
		Color:           "#2ecc71",
	},
	Below2C: {
		ID:              Below2C,
		Name:            "Below 2°C",
		Description:     "Gradual tightening of policy keeping warming below 2°C with moderate carbon prices.",
		Anchors:         PriceAnchors{Y2025: 50, Y2030: 90, Y2050: 180},
		ReductionTarget: 0.80,
		Color:           "#3498db",
	},
	DelayedTransition: {
		ID:              DelayedTransition,
		Name:            "Delayed Transition",
		Description:     "Policy action deferred to 2030 followed by an abrupt, disorderly catch-up.",
		Anchors:         PriceAnchors{Y2025: 10, Y2030: 30, Y2050: 200},
		ReductionTarget: 0.70,
		Color:           "#f39c12",
	},
	CurrentPolicies: {
		ID:              CurrentPolicies,
		Name:            "Current Policies",
		Description:     "Only policies already legislated, warming approaching 3°C by end of century.",
		Anchors:         PriceAnchors{Y2025: 5, Y2030: 10, Y2050: 30},
		ReductionTarget: 0.20,
		Color:           "#e74c3c",
	},
}

// order fixes the list order exposed to callers.
var order = []ID{NetZero2050, Below2C, DelayedTransition, CurrentPolicies}

// List returns all canonical scenarios in their fixed display order.
func List() []Scenario {
	out := make([]Scenario, 0, len(order))
	for _, id := range order {
		out = append(out, table[id])
	}
	return out
}

// Get looks up a scenario by identifier.
func Get(id ID) (Scenario, bool) {
	s, ok := table[id]
	return s, ok
}

// GetOrDefault resolves id, falling back to the intermediate
// DelayedTransition archetype for unrecognized identifiers. The engine favors
// a best-effort estimate over refusing computation.
func GetOrDefault(id ID) Scenario {
	if s, ok := table[id]; ok {
		return s
	}
	return table[DelayedTransition]
}

// ParseID validates an externally supplied scenario string.
func ParseID(raw string) (ID, error) {
	id := ID(raw)
	if _, ok := table[id]; !ok {
		return "", ErrUnknownScenario
	}
	return id, nil
}
