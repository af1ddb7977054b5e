package renderer

import "github.com/Faultbox/objview/pkg/math"

type axis struct {
	color [3]float32
	end   math.Vec3
}

func axes(length float32) [3]axis {
	return [3]axis{
		{color: [3]float32{1, 0, 0}, end: math.Vec3{X: length}},
		{color: [3]float32{0, 1, 0}, end: math.Vec3{Y: length}},
		{color: [3]float32{0, 0, 1}, end: math.Vec3{Z: length}},
	}
}
