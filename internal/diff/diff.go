// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package diff computes edit scripts between two snapshots of a collection.
//
// Items are aligned by identity: records by ExternalID, titles and
// descriptions by value. Aligned items whose contents differ become updates,
// everything else becomes removals and insertions. The alignment minimises
// the number of ops and, among minimal alignments, keeps the longest
// possible unchanged prefix so the display layer does not lose its scroll
// position.
//
// The package is stateless and safe for concurrent use.
package diff

import (
	"github.com/MKhiriev/go-feed-sync/models"
)

// Weights of an aligned pair. An unchanged pair saves a removal and an
// insertion; a changed pair saves the same two ops but costs an update.
const (
	weightUnchanged = 2
	weightChanged   = 1
)

// SameItem reports whether a and b are the same logical item.
func SameItem(a, b models.Item) bool {
	ra, okA := a.(models.Record)
	rb, okB := b.(models.Record)
	if okA || okB {
		return okA && okB && ra.ExternalID == rb.ExternalID
	}
	return a == b
}

// SameContents reports whether a and b carry identical fields.
func SameContents(a, b models.Item) bool {
	return a == b
}

func pairWeight(a, b models.Item) int {
	if !SameItem(a, b) {
		return 0
	}
	if SameContents(a, b) {
		return weightUnchanged
	}
	return weightChanged
}

// Compute returns the edit script turning prev into next. Applying the
// script to prev with [Apply] yields next exactly. Identical inputs produce
// an empty script.
func Compute(prev, next []models.Item) models.EditScript {
	// An unchanged leading pair is always part of some optimal alignment,
	// so the shared prefix is settled before the quadratic table is built.
	// This keeps appending a page linear in the size of the page.
	prefix := commonPrefix(prev, next)
	if prefix == len(prev) && prefix == len(next) {
		return models.EditScript{}
	}

	tailPrev, tailNext := prev[prefix:], next[prefix:]
	switch {
	case len(tailPrev) == 0:
		return insertAll(tailNext, prefix)
	case len(tailNext) == 0:
		return removeAll(len(tailPrev), prefix)
	}

	score := scoreTable(tailPrev, tailNext)
	return walk(tailPrev, tailNext, score, prefix)
}

// scoreTable fills score[i][j] with the best alignment weight of
// prev[i:] against next[j:].
func scoreTable(prev, next []models.Item) [][]int {
	n, m := len(prev), len(next)

	score := make([][]int, n+1)
	for i := range score {
		score[i] = make([]int, m+1)
	}

	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			best := score[i+1][j]
			if s := score[i][j+1]; s > best {
				best = s
			}
			if w := pairWeight(prev[i], next[j]); w > 0 {
				if s := w + score[i+1][j+1]; s > best {
					best = s
				}
			}
			score[i][j] = best
		}
	}

	return score
}

// walk emits ops front to back. At every step a match is taken whenever it
// is part of some optimal alignment, which keeps unchanged rows at the front.
// pos is the index in the partially edited collection: everything before it
// already equals the settled prefix plus next[:j], everything from it on is
// still prev[i:].
func walk(prev, next []models.Item, score [][]int, offset int) models.EditScript {
	n, m := len(prev), len(next)
	script := make(models.EditScript, 0)

	i, j, pos := 0, 0, offset
	for i < n && j < m {
		if w := pairWeight(prev[i], next[j]); w > 0 && score[i][j] == w+score[i+1][j+1] {
			if w == weightChanged {
				script = append(script, models.UpdateOp(pos, next[j]))
			}
			i++
			j++
			pos++
			continue
		}

		// On a tie the insertion goes first so prev[i] stays available for
		// a later match and old rows keep their relative order.
		if score[i][j+1] >= score[i+1][j] {
			script = append(script, models.InsertOp(pos, next[j]))
			j++
			pos++
			continue
		}

		script = append(script, models.RemoveOp(pos))
		i++
	}

	for ; i < n; i++ {
		script = append(script, models.RemoveOp(pos))
	}
	for ; j < m; j++ {
		script = append(script, models.InsertOp(pos, next[j]))
		pos++
	}

	return script
}

func insertAll(items []models.Item, offset int) models.EditScript {
	script := make(models.EditScript, 0, len(items))
	for i, it := range items {
		script = append(script, models.InsertOp(offset+i, it))
	}
	return script
}

func removeAll(n, offset int) models.EditScript {
	script := make(models.EditScript, 0, n)
	for range n {
		script = append(script, models.RemoveOp(offset))
	}
	return script
}

func commonPrefix(prev, next []models.Item) int {
	k := 0
	for k < len(prev) && k < len(next) && SameContents(prev[k], next[k]) {
		k++
	}
	return k
}
