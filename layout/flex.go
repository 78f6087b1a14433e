package layout

import "sort"

// DistributeFlex implements §4.4's flex distribution algorithm: given
// remaining space and a set of {flex, min, max} items, it returns the
// additional allocation per item. The sum never exceeds remaining, and
// equals remaining exactly when no item's max is binding (property 3).
func DistributeFlex(remaining int, items []FlexItem) []int {
	alloc := make([]int, len(items))
	if remaining <= 0 || len(items) == 0 {
		return alloc
	}

	active := make([]int, 0, len(items))
	for i, it := range items {
		if it.Flex > 0 {
			active = append(active, i)
		}
	}

	r := remaining
	for r > 0 && len(active) > 0 {
		sumFlex := 0
		for _, i := range active {
			sumFlex += items[i].Flex
		}
		if sumFlex == 0 {
			break
		}

		type share struct {
			idx  int
			base int
			frac float64
		}
		shares := make([]share, len(active))
		sumBase := 0
		for k, i := range active {
			ideal := float64(r) * float64(items[i].Flex) / float64(sumFlex)
			base := int(ideal)
			shares[k] = share{idx: i, base: base, frac: ideal - float64(base)}
			sumBase += base
		}

		bonusUnits := r - sumBase
		order := make([]int, len(shares))
		for k := range order {
			order[k] = k
		}
		sort.SliceStable(order, func(a, b int) bool {
			sa, sb := shares[order[a]], shares[order[b]]
			if sa.frac != sb.frac {
				return sa.frac > sb.frac
			}
			return sa.idx < sb.idx // ascending original index tiebreak
		})

		bonus := make(map[int]int, len(shares))
		for k := 0; k < bonusUnits && k < len(order); k++ {
			bonus[shares[order[k]].idx]++
		}

		usedThisPass := 0
		stillActive := active[:0:0]
		for _, s := range shares {
			want := s.base + bonus[s.idx]
			maxRoom := items[s.idx].Max - alloc[s.idx]
			got := want
			if got > maxRoom {
				got = maxRoom
			}
			if got < 0 {
				got = 0
			}
			alloc[s.idx] += got
			usedThisPass += got
			if alloc[s.idx] < items[s.idx].Max {
				stillActive = append(stillActive, s.idx)
			}
		}

		active = stillActive
		r -= usedThisPass
		if usedThisPass == 0 {
			break // no progress possible; avoid an infinite loop on degenerate input
		}
	}

	if r > 0 {
		for i, it := range items {
			if r <= 0 {
				break
			}
			need := it.Min - alloc[i]
			if need <= 0 {
				continue
			}
			room := it.Max - alloc[i]
			give := need
			if give > r {
				give = r
			}
			if give > room {
				give = room
			}
			if give > 0 {
				alloc[i] += give
				r -= give
			}
		}
	}

	return alloc
}

// UnitSize implements the integer-distribution helper used by the
// justification offsets: floor(extra/units) with the remainder applied
// to the first extra-mod-units positions.
func UnitSize(units, extra, position int) int {
	if units <= 0 {
		return 0
	}
	base := extra / units
	rem := extra % units
	if position < rem {
		return base + 1
	}
	return base
}
