package graph

import (
	"context"
	"fmt"

	"github.com/docgraphhq/docgraph/internal/models"
)

// FindRelated returns the combined neighborhood of origin. For forward or
// reverse it is a single traversal; for both (the default when direction is
// empty) it runs one traversal per direction and merges the output.
//
// Deduplication treats (file, direction) as the identity: a file that is both
// an ancestor and a descendant appears twice, once per direction, each at its
// own minimum depth. Merged ordering is depth ascending, then file ascending,
// then direction ascending — forward sorts before reverse on a full tie, which
// is the documented stable tiebreak.
func FindRelated(
	ctx context.Context,
	src EdgeSource,
	origin string,
	direction models.Direction,
	maxDepth int,
) ([]models.TraversalResult, error) {
	if direction == "" {
		direction = models.DirectionBoth
	}

	if direction.Valid() {
		return Traverse(ctx, src, origin, direction, maxDepth)
	}

	if direction != models.DirectionBoth {
		return nil, fmt.Errorf("finding related files for %q: %w", origin, models.ErrInvalidDirection)
	}

	// One snapshot covers both passes, so the forward and reverse halves of
	// the neighborhood describe the same relation state.
	var merged []models.TraversalResult

	err := inSnapshot(ctx, src, func(src EdgeSource) error {
		forward, err := traverse(ctx, src, origin, models.DirectionForward, maxDepth)
		if err != nil {
			return err
		}

		reverse, err := traverse(ctx, src, origin, models.DirectionReverse, maxDepth)
		if err != nil {
			return err
		}

		merged = make([]models.TraversalResult, 0, len(forward)+len(reverse))
		merged = append(merged, forward...)
		merged = append(merged, reverse...)

		return nil
	})
	if err != nil {
		return nil, err
	}

	sortResults(merged)

	return merged, nil
}
