/*
Package scale chooses the integer magnification used to display an image.
*/
package scale

// Target is the preferred length in pixels of the longest side of a
// magnified image.
const Target = 800

// ClosestMultiple returns k such that k*n is the multiple of n nearest to
// target. On a tie the larger multiple wins.
func ClosestMultiple(target, n int) int {
	if n <= 0 {
		return 1
	}
	if target%n == 0 {
		return target / n
	}

	lo := target / n * n
	hi := lo + n
	if target-lo < hi-target {
		return lo / n
	}
	return hi / n
}

// IdealPixelSize returns the factor by which each pixel of a width by height
// image is magnified. Images already spanning Target are not magnified.
func IdealPixelSize(width, height int) int {
	m := width
	if height > m {
		m = height
	}
	if m >= Target || m <= 0 {
		return 1
	}
	return ClosestMultiple(Target, m)
}
