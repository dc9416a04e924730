// Package carbon produces carbon-price trajectories per scenario and pricing
// regime, free-allocation relief, and the marginal-abatement-cost model built
// from per-sector technology stacks.
package carbon

import "errors"

// Regime selects the carbon market the trajectory is priced under.
type Regime string

const (
	// RegimeGlobal is the USD-denominated global benchmark path.
	RegimeGlobal Regime = "global"
	// RegimeKETS is the Korean emissions trading scheme, priced in KRW and
	// converted at a fixed rate. Free allocation applies under this regime.
	RegimeKETS Regime = "kets"
	// RegimeEU approximates the EU benchmark as a flat premium over the
	// global path. Whether it should be modeled as a distinct market is an
	// open question with the pricing team.
	RegimeEU Regime = "eu"
)

// ErrUnknownRegime is returned by ParseRegime for unrecognized identifiers.
var ErrUnknownRegime = errors.New("unknown_regime")

// ParseRegime validates an externally supplied regime string.
func ParseRegime(raw string) (Regime, error) {
	switch r := Regime(raw); r {
	case RegimeGlobal, RegimeKETS, RegimeEU:
		return r, nil
	}
	return "", ErrUnknownRegime
}

// Regimes lists the supported pricing regimes in a fixed order.
func Regimes() []Regime {
	return []Regime{RegimeGlobal, RegimeKETS, RegimeEU}
}
