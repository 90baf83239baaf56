package vaporgrid

import (
	"github.com/chewxy/math32"
)

// Surface describes a point being lit.
type Surface struct {
	Position Vector // World position
	Normal   Vector // World-space unit normal
	ToCamera Vector // Unit vector from the point towards the camera
	Metalness,
	Roughness float32
}

// Light represents a light source that contributes to Materials using ShadingStandard.
type Light interface {
	Name() string
	IsOn() bool
	// Illuminate returns the light's RGB contribution to the given Surface.
	Illuminate(surface Surface) (r, g, b float32)
}

// AmbientLight represents an ambient light that lights everything evenly, regardless of position or normal.
type AmbientLight struct {
	name      string
	Color     Color
	Intensity float32
	On        bool
}

// NewAmbientLight returns a new AmbientLight.
func NewAmbientLight(name string, color Color, intensity float32) *AmbientLight {
	return &AmbientLight{
		name:      name,
		Color:     color,
		Intensity: intensity,
		On:        true,
	}
}

func (amb *AmbientLight) Name() string { return amb.name }

func (amb *AmbientLight) IsOn() bool { return amb.On && amb.Intensity > 0 }

func (amb *AmbientLight) Illuminate(surface Surface) (float32, float32, float32) {
	return amb.Color.R * amb.Intensity, amb.Color.G * amb.Intensity, amb.Color.B * amb.Intensity
}

// SpotLight is a cone of light shining from Position towards Target.
type SpotLight struct {
	name      string
	Color     Color
	Intensity float32
	On        bool

	Position Vector
	Target   Vector

	// Distance is the maximum range of the light; 0 means unlimited.
	Distance float32
	// Angle is the half-angle of the cone, in radians.
	Angle float32
	// Penumbra is the fraction of the cone (0 to 1) over which the light fades out towards its edge.
	Penumbra float32
	// Decay is the exponent used to attenuate the light over Distance.
	Decay float32
}

// NewSpotLight returns a new SpotLight at the given position, aimed at the target.
func NewSpotLight(name string, color Color, intensity float32, position, target Vector) *SpotLight {
	return &SpotLight{
		name:      name,
		Color:     color,
		Intensity: intensity,
		On:        true,
		Position:  position,
		Target:    target,
		Angle:     math32.Pi / 3,
		Decay:     2,
	}
}

func (spot *SpotLight) Name() string { return spot.name }

func (spot *SpotLight) IsOn() bool { return spot.On && spot.Intensity > 0 }

func (spot *SpotLight) Illuminate(surface Surface) (float32, float32, float32) {

	toLight := spot.Position.Sub(surface.Position)
	dist := float32(toLight.Magnitude())
	if dist == 0 || (spot.Distance > 0 && dist >= spot.Distance) {
		return 0, 0, 0
	}
	toLight = toLight.Unit()

	dir := spot.Target.Sub(spot.Position).Unit()
	cosAngle := float32(toLight.Invert().Dot(dir))
	coneCos := math32.Cos(spot.Angle)
	penumbraCos := math32.Cos(spot.Angle * (1 - spot.Penumbra))
	cone := smoothstep32(coneCos, penumbraCos, cosAngle)
	if cone <= 0 {
		return 0, 0, 0
	}

	attenuation := float32(1)
	if spot.Distance > 0 {
		attenuation = math32.Pow(clamp32(1-dist/spot.Distance, 0, 1), spot.Decay)
	}

	nDotL := float32(surface.Normal.Dot(toLight))
	if nDotL <= 0 {
		return 0, 0, 0
	}

	diffuse := nDotL * (1 - surface.Metalness)

	// Blinn-Phong highlight; rougher surfaces get a smaller exponent and broader highlight.
	half := toLight.Add(surface.ToCamera).Unit()
	roughness := math32.Max(surface.Roughness, 0.05)
	shininess := math32.Max(2/math32.Pow(roughness, 4)-2, 1)
	specular := math32.Pow(math32.Max(float32(surface.Normal.Dot(half)), 0), shininess) * surface.Metalness

	power := spot.Intensity * cone * attenuation * (diffuse + specular)

	return spot.Color.R * power, spot.Color.G * power, spot.Color.B * power

}

func smoothstep32(edge0, edge1, x float32) float32 {
	if edge1 <= edge0 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := clamp32((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

func clamp32(value, lo, hi float32) float32 {
	return math32.Min(math32.Max(value, lo), hi)
}
