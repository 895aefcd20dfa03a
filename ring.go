package orbis

import "math"

// NewRingMesh builds a flat annulus in the XZ plane between innerRadius and
// outerRadius. The texture coordinate follows the ring parameterization the
// shaders expect: u is the angular position around the ring in [0,1], v the
// radial position from the inner edge (0) to the outer edge (1).
func NewRingMesh(innerRadius, outerRadius float64, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 1 {
		rings = 1
	}
	up := V(0, 1, 0)
	vertex := func(i, j int) Vertex {
		u := float64(i) / float64(segments)
		v := float64(j) / float64(rings)
		angle := u * 2 * math.Pi
		radius := Lerp(innerRadius, outerRadius, v)
		return Vertex{
			Position: V(math.Cos(angle)*radius, 0, math.Sin(angle)*radius),
			Normal:   up,
			Texture:  V(u, v, 0),
			Color:    White,
		}
	}
	var triangles []*Triangle
	for i := 0; i < segments; i++ {
		for j := 0; j < rings; j++ {
			v00 := vertex(i, j)
			v10 := vertex(i+1, j)
			v01 := vertex(i, j+1)
			v11 := vertex(i+1, j+1)
			triangles = append(triangles, &Triangle{v00, v10, v11})
			triangles = append(triangles, &Triangle{v00, v11, v01})
		}
	}
	return NewTriangleMesh(triangles)
}

// NewSphereMesh builds a unit lat/long sphere with equirectangular texture
// coordinates.
func NewSphereMesh(slices, stacks int) *Mesh {
	if slices < 3 {
		slices = 3
	}
	if stacks < 2 {
		stacks = 2
	}
	vertex := func(i, j int) Vertex {
		u := float64(i) / float64(slices)
		v := float64(j) / float64(stacks)
		theta := u * 2 * math.Pi
		phi := v * math.Pi
		p := V(
			math.Sin(phi)*math.Cos(theta),
			math.Cos(phi),
			math.Sin(phi)*math.Sin(theta),
		)
		return Vertex{
			Position: p,
			Normal:   p,
			Texture:  V(u, 1-v, 0),
			Color:    White,
		}
	}
	var triangles []*Triangle
	for i := 0; i < slices; i++ {
		for j := 0; j < stacks; j++ {
			v00 := vertex(i, j)
			v10 := vertex(i+1, j)
			v01 := vertex(i, j+1)
			v11 := vertex(i+1, j+1)
			if j > 0 {
				triangles = append(triangles, &Triangle{v00, v10, v11})
			}
			if j < stacks-1 {
				triangles = append(triangles, &Triangle{v00, v11, v01})
			}
		}
	}
	return NewTriangleMesh(triangles)
}
