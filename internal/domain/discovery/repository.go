package discovery

import "context"

type Repository interface {
	// LocatedCandidates returns active services whose provider has both
	// coordinates recorded. An empty category matches every category.
	LocatedCandidates(ctx context.Context, category string) ([]Candidate, error)
}
