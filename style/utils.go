package style

// FitScale returns the largest scale at which a srcW x srcH image fits
// inside dstW x dstH, and the offsets that centre it.
func FitScale(srcW, srcH, dstW, dstH int) (scale, offsetX, offsetY float64) {
	if srcW <= 0 || srcH <= 0 {
		return 1, 0, 0
	}
	scaleX := float64(dstW) / float64(srcW)
	scaleY := float64(dstH) / float64(srcH)
	scale = scaleX
	if scaleY < scaleX {
		scale = scaleY
	}
	offsetX = (float64(dstW) - float64(srcW)*scale) / 2
	offsetY = (float64(dstH) - float64(srcH)*scale) / 2
	return scale, offsetX, offsetY
}

// ClampScale keeps a window scale within 1 and MaxScale. Zero means the
// default.
func ClampScale(scale int) int {
	switch {
	case scale == 0:
		return DefaultScale
	case scale < 1:
		return 1
	case scale > MaxScale:
		return MaxScale
	}
	return scale
}

// TruncateEnd truncates a string from the end, keeping the start portion.
// Returns the truncated string and whether truncation occurred.
func TruncateEnd(s string, maxLen int) (string, bool) {
	r := []rune(s)
	if len(r) <= maxLen {
		return s, false
	}
	if maxLen <= 3 {
		return string(r[:max(maxLen, 0)]), true
	}
	return string(r[:maxLen-3]) + "...", true
}
