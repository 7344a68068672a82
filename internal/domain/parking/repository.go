package parking

import "context"

// PolicyRepository loads and stores the singleton parking policy record.
// Get must fall back to DefaultPolicy when no record has been seeded.
type PolicyRepository interface {
	Get(ctx context.Context) (Policy, error)
	Save(ctx context.Context, policy Policy) error
}
