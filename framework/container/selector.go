package container

import "reflect"

// Selector picks a single usable constructor for a type, given a resolver
// that answers whether each parameter type is producible. Selection is pure:
// it inspects metadata and the resolvability oracle, never constructs.
type Selector interface {
	Select(t reflect.Type, r Resolver) (*Constructor, error)
}

// RankingSelector is the default Selector. It classifies catalog candidates
// as eligible or disqualified and ranks the eligible ones:
//
//   - eligible: every parameter is resolvable via r, or carries a default
//   - rank: parameter count, descending (more dependencies = more
//     fully-specified)
//   - tie-break: count of default-carrying parameters, ascending; a
//     constructor whose every parameter is truly resolved beats one leaning
//     on declared defaults
//
// Zero eligible candidates yields *NoEligibleConstructorError; a residual
// tie yields *AmbiguousConstructorError. A constructor with any parameter
// that is neither resolvable nor defaulted is disqualified absolutely, even
// when it is the only candidate.
type RankingSelector struct {
	catalog *Catalog
}

// NewSelector creates a RankingSelector over catalog. A nil catalog means
// the process-wide DefaultCatalog.
func NewSelector(catalog *Catalog) *RankingSelector {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &RankingSelector{catalog: catalog}
}

// Select implements Selector.
func (s *RankingSelector) Select(t reflect.Type, r Resolver) (*Constructor, error) {
	type candidate struct {
		ctor         *Constructor
		defaultsUsed int
	}

	var eligible []candidate
	for _, ctor := range s.catalog.Constructors(t) {
		defaultsUsed := 0
		disqualified := false
		for _, p := range ctor.Params {
			if p.HasDefault {
				// Declared defaults rank as fallback parameters even when
				// the type happens to be resolvable too.
				defaultsUsed++
				continue
			}
			if !r.CanResolve(p.Type) {
				disqualified = true
				break
			}
		}
		if !disqualified {
			eligible = append(eligible, candidate{ctor: ctor, defaultsUsed: defaultsUsed})
		}
	}

	if len(eligible) == 0 {
		return nil, &NoEligibleConstructorError{Type: t}
	}

	best := eligible[0]
	ties := 1
	for _, c := range eligible[1:] {
		switch {
		case len(c.ctor.Params) > len(best.ctor.Params):
			best, ties = c, 1
		case len(c.ctor.Params) < len(best.ctor.Params):
			// outranked
		case c.defaultsUsed < best.defaultsUsed:
			best, ties = c, 1
		case c.defaultsUsed == best.defaultsUsed:
			ties++
		}
	}
	if ties > 1 {
		return nil, &AmbiguousConstructorError{Type: t, Count: ties}
	}
	return best.ctor, nil
}
