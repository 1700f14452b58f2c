package theme

import "github.com/novafetch/novafetch/pkg/components"

// Channel levels of the xterm 6x6x6 cube (indices 16-231).
var thCubeLevels = [6]int{0, 95, 135, 175, 215, 255}

// thTo256 maps c to the nearest xterm-256 index, taking the closer of the
// colour cube and the 24-step gray ramp (232-255).
func thTo256(c components.RGB) uint8 {
	var idx [3]int
	var cube [3]int
	for i, v := range c {
		idx[i] = thNearestLevel(int(v))
		cube[i] = thCubeLevels[idx[i]]
	}
	cubeIdx := 16 + 36*idx[0] + 6*idx[1] + idx[2]

	avg := (int(c[0]) + int(c[1]) + int(c[2])) / 3
	step := min(max((avg-3)/10, 0), 23)
	gray := 8 + 10*step

	if thDist2(c, gray, gray, gray) < thDist2(c, cube[0], cube[1], cube[2]) {
		return uint8(232 + step)
	}
	return uint8(cubeIdx)
}

func thNearestLevel(v int) int {
	best := 0
	for i, lv := range thCubeLevels {
		if thAbs(v-lv) < thAbs(v-thCubeLevels[best]) {
			best = i
		}
	}
	return best
}

// thDist2 is the squared RGB distance.
func thDist2(c components.RGB, r, g, b int) int {
	dr, dg, db := int(c[0])-r, int(c[1])-g, int(c[2])-b
	return dr*dr + dg*dg + db*db
}

func thAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
