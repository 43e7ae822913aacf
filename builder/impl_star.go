// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// impl_star.go - Star(n): one hub befriended by n-1 leaves.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed ID "Center".
//   - Adds leaves via cfg.idFn for i = 1..n-1 and emits spokes Center–leaf[i]
//     in increasing leaf index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
)

const (
	methodStar     = "Star"
	minStarNodes   = 2
	centerVertexID = "Center"
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		leaves := indexIDs(cfg, 1, n)
		if err := addVertices(g, methodStar, append([]string{centerVertexID}, leaves...)); err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err := addEdge(g, methodStar, centerVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
