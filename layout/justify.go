package layout

// JustifyOffsets computes, for itemCount items laid out with extra
// leftover main-axis space, the leading offset before the first item
// and the gap following each item (gaps[itemCount-1] is the trailing
// gap after the last item and is always 0).
func JustifyOffsets(j Justify, itemCount, extra int) (leading int, gaps []int) {
	gaps = make([]int, itemCount)
	if itemCount == 0 {
		return 0, gaps
	}

	switch j {
	case JustifyStart:
		return 0, gaps
	case JustifyEnd:
		return extra, gaps
	case JustifyCenter:
		return extra / 2, gaps
	case JustifyBetween:
		if itemCount == 1 {
			return 0, gaps
		}
		for b := 0; b < itemCount-1; b++ {
			gaps[b] = UnitSize(itemCount-1, extra, b)
		}
		return 0, gaps
	case JustifyEvenly:
		units := itemCount + 1
		leading = UnitSize(units, extra, 0)
		for b := 0; b < itemCount-1; b++ {
			gaps[b] = UnitSize(units, extra, b+1)
		}
		return leading, gaps
	case JustifyAround:
		units := itemCount * 2
		half0 := UnitSize(units, extra, 0)
		leading = half0
		for b := 0; b < itemCount-1; b++ {
			left := UnitSize(units, extra, 2*b+1)
			right := UnitSize(units, extra, 2*b+2)
			gaps[b] = left + right
		}
		return leading, gaps
	default:
		return 0, gaps
	}
}
