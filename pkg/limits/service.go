package limits

import (
	"context"
	"errors"
	"fmt"
)

// Checker answers quota questions against the static tier limit table.
// It is read-only: checking a limit never mutates usage.
type Checker interface {
	// Check reports whether one more unit of the resource may be consumed
	// at the given current usage. Allowed uses strict less-than: usage
	// equal to the limit is rejected, because the next action would exceed it.
	Check(tier Tier, res Resource, currentUsage int64) (Result, error)

	// Limit returns the configured quota for a tier resource.
	Limit(tier Tier, res Resource) (int64, error)

	// VerifyTier returns ErrUnknownTier if the given tier is not configured.
	VerifyTier(tier Tier) error
}

// Source defines how the limit table is loaded into the checker.
type Source interface {
	Load(ctx context.Context) (Table, error)
}

// checker implements the Checker interface.
type checker struct {
	// table is treated as immutable after initialization, making the
	// checker safe for unlimited concurrent readers.
	table Table
}

// NewChecker creates a Checker from the given source.
// The loaded table is validated for exhaustiveness: every tier must define
// every resource, and no unknown keys are tolerated. A bad table is a
// configuration bug and fails construction rather than surfacing at call time.
func NewChecker(ctx context.Context, src Source) (Checker, error) {
	table, err := src.Load(ctx)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadTable, err)
	}

	if err := validateTable(table); err != nil {
		return nil, err
	}

	return &checker{table: table}, nil
}

// Check reports whether one more unit of the resource may be consumed.
func (c *checker) Check(tier Tier, res Resource, currentUsage int64) (Result, error) {
	limit, err := c.Limit(tier, res)
	if err != nil {
		return Result{}, err
	}

	if limit == Unlimited {
		// Propagate the sentinel instead of a huge number so callers can
		// tell "no cap" apart from a large cap.
		return Result{Allowed: true, Limit: Unlimited, Remaining: Unlimited}, nil
	}

	return Result{
		Allowed:   currentUsage < limit,
		Limit:     limit,
		Remaining: max(0, limit-currentUsage),
	}, nil
}

// Limit returns the configured quota for a tier resource.
func (c *checker) Limit(tier Tier, res Resource) (int64, error) {
	tierLimits, exists := c.table[tier]
	if !exists {
		return 0, ErrUnknownTier
	}

	limit, exists := tierLimits[res]
	if !exists {
		return 0, ErrUnknownResource
	}

	return limit, nil
}

// VerifyTier returns ErrUnknownTier if the given tier is not configured.
func (c *checker) VerifyTier(tier Tier) error {
	if _, exists := c.table[tier]; !exists {
		return ErrUnknownTier
	}
	return nil
}

// validateTable enforces the closed-table invariant: all tiers present,
// each defining exactly the canonical resource set, with sane quotas.
func validateTable(table Table) error {
	for _, tier := range Tiers() {
		tierLimits, exists := table[tier]
		if !exists {
			return errors.Join(ErrInvalidConfiguration,
				fmt.Errorf("tier %q is missing from the limit table", tier))
		}

		for _, res := range Resources() {
			limit, exists := tierLimits[res]
			if !exists {
				return errors.Join(ErrInvalidConfiguration,
					fmt.Errorf("tier %q does not define a limit for resource %q", tier, res))
			}
			if limit < 0 && limit != Unlimited {
				return errors.Join(ErrInvalidConfiguration,
					fmt.Errorf("tier %q has invalid limit %d for resource %q", tier, limit, res))
			}
		}

		if len(tierLimits) != len(Resources()) {
			for res := range tierLimits {
				if err := findResource(res); err != nil {
					return errors.Join(ErrInvalidConfiguration,
						fmt.Errorf("tier %q defines unknown resource %q", tier, res))
				}
			}
		}
	}

	for tier := range table {
		if err := findTier(tier); err != nil {
			return errors.Join(ErrInvalidConfiguration,
				fmt.Errorf("limit table defines unknown tier %q", tier))
		}
	}

	return nil
}

func findTier(tier Tier) error {
	for _, t := range Tiers() {
		if t == tier {
			return nil
		}
	}
	return ErrUnknownTier
}

func findResource(res Resource) error {
	for _, r := range Resources() {
		if r == res {
			return nil
		}
	}
	return ErrUnknownResource
}
