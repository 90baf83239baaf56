package vaporgrid

// Fog describes linear depth fog. Fragments closer than Near are untouched, fragments farther than Far are
// entirely Color, and the blend in between follows a smoothstep curve.
type Fog struct {
	On    bool
	Color Color
	Near  float64
	Far   float64
}

// Factor returns how much of the fog color applies at the given view-space depth, from 0 (none) to 1 (full).
func (fog Fog) Factor(depth float64) float64 {
	if !fog.On {
		return 0
	}
	return smoothstep(fog.Near, fog.Far, depth)
}

// World holds the environmental properties of a Scene.
type World struct {
	Name       string
	ClearColor Color
	Fog        Fog
}

// NewWorld creates a new World with a black clear color and fog disabled.
func NewWorld(name string) *World {
	return &World{
		Name:       name,
		ClearColor: NewColor(0, 0, 0, 1),
		Fog: Fog{
			Color: NewColor(0, 0, 0, 1),
			Near:  1,
			Far:   2.5,
		},
	}
}

func smoothstep(edge0, edge1, x float64) float64 {
	if edge1 <= edge0 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
