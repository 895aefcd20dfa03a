package orbis

var clipPlanes = []clipPlane{
	{VectorW{1, 0, 0, 1}, VectorW{-1, 0, 0, 1}},
	{VectorW{-1, 0, 0, 1}, VectorW{1, 0, 0, 1}},
	{VectorW{0, 1, 0, 1}, VectorW{0, -1, 0, 1}},
	{VectorW{0, -1, 0, 1}, VectorW{0, 1, 0, 1}},
	{VectorW{0, 0, 1, 1}, VectorW{0, 0, -1, 1}},
	{VectorW{0, 0, -1, 1}, VectorW{0, 0, 1, 1}},
}

type clipPlane struct {
	P, N VectorW
}

func (p clipPlane) pointInFront(v VectorW) bool {
	return v.Sub(p.P).Dot(p.N) > 0
}

func (p clipPlane) intersectSegment(v0, v1 VectorW) VectorW {
	u := v1.Sub(v0)
	w := v0.Sub(p.P)
	d := p.N.Dot(u)
	n := -p.N.Dot(w)
	return v0.Add(u.MulScalar(n / d))
}

func sutherlandHodgman(points []Vertex, planes []clipPlane) []Vertex {
	output := points
	for _, plane := range planes {
		input := output
		output = nil
		if len(input) == 0 {
			return nil
		}
		s := input[len(input)-1]
		for _, e := range input {
			if plane.pointInFront(e.Output) {
				if !plane.pointInFront(s.Output) {
					x := plane.intersectSegment(s.Output, e.Output)
					output = append(output, clipInterpolate(s, e, x))
				}
				output = append(output, e)
			} else if plane.pointInFront(s.Output) {
				x := plane.intersectSegment(s.Output, e.Output)
				output = append(output, clipInterpolate(s, e, x))
			}
			s = e
		}
	}
	return output
}

// clipInterpolate blends all vertex attributes at the clip intersection x
// between v0 and v1.
func clipInterpolate(v0, v1 Vertex, x VectorW) Vertex {
	d0 := v0.Output.Sub(x)
	d1 := v1.Output.Sub(v0.Output)
	n := d1.Dot(d1)
	var t float64
	if n != 0 {
		t = -d0.Dot(d1) / n
	}
	v := Vertex{}
	v.Position = v0.Position.Lerp(v1.Position, t)
	v.Normal = v0.Normal.Lerp(v1.Normal, t).Normalize()
	v.Texture = v0.Texture.Lerp(v1.Texture, t)
	v.Color = v0.Color.Lerp(v1.Color, t)
	v.World = v0.World.Lerp(v1.World, t)
	v.Output = x
	return v
}

// ClipTriangle clips a triangle against the clip volume, returning zero or
// more triangles fully inside it.
func ClipTriangle(t *Triangle) []*Triangle {
	w1 := t.V1
	w2 := t.V2
	w3 := t.V3
	points := sutherlandHodgman([]Vertex{w1, w2, w3}, clipPlanes)
	var result []*Triangle
	for i := 2; i < len(points); i++ {
		result = append(result, &Triangle{points[0], points[i-1], points[i]})
	}
	return result
}
