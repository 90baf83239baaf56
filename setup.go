package vaporgrid

import (
	"fmt"
)

// Build assembles the effect described by the Config: the ground segments with their displaced mesh and material,
// fog, lights, the camera and its orbit controls, and the post-processing chain if it's enabled.
// The returned Animator is sized to the given viewport size and ticked to time 0.
func Build(cfg Config, assets Assets, size ViewportSize) (*Animator, error) {

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	scene := NewScene(cfg.Variant)

	fogColor, err := NewColorFromHex(cfg.Fog.Color)
	if err != nil {
		return nil, err
	}
	scene.World.ClearColor = fogColor
	scene.World.Fog = Fog{On: cfg.Fog.On, Color: fogColor, Near: cfg.Fog.Near, Far: cfg.Fog.Far}

	ground := cfg.Ground
	shading, err := ParseShading(ground.Shading)
	if err != nil {
		return nil, err
	}

	var mesh *Mesh
	if assets.Mesh != nil {
		mesh = assets.Mesh.Clone()
	} else {
		mesh = NewPlaneMesh(ground.Width, ground.Length, ground.Subdivisions, ground.Subdivisions)
	}

	if assets.Displacement != nil && ground.DisplacementScale != 0 {
		mesh.Displace(NewHeightMap(assets.Displacement), ground.DisplacementScale)
	}

	if assets.Metalness != nil && shading == ShadingStandard {
		mesh.ApplyMetalnessMap(NewHeightMap(assets.Metalness))
	}

	material := NewMaterial("ground")
	material.Shading = shading
	material.Metalness = float32(ground.Metalness)
	material.Roughness = float32(ground.Roughness)
	if assets.Grid != nil {
		material.SetImage(assets.Grid)
	}

	camera := NewCamera(max(size.Width, 1), max(size.Height, 1))
	camera.SetFieldOfView(cfg.Camera.FieldOfView)
	camera.SetNear(cfg.Camera.Near)
	camera.SetFar(cfg.Camera.Far)
	camera.SetLocalPositionVec(vectorFrom(cfg.Camera.Position))

	controls := NewOrbitControls(camera, vectorFrom(cfg.Camera.Target))
	controls.EnableDamping = cfg.Camera.Damping > 0
	if controls.EnableDamping {
		controls.DampingFactor = cfg.Camera.Damping
	}

	animator := NewAnimator(scene, camera, controls, NewScrollLoop(ground.Speed, ground.Length))

	for i := 0; i < ground.Segments; i++ {
		model := NewModel(fmt.Sprintf("ground.%d", i), mesh, material)
		model.SetLocalPosition(0, ground.Height, 0)
		scene.AddModels(model)
		animator.AddSegment(model)
	}

	if cfg.Ambient.Intensity > 0 {
		color, err := NewColorFromHex(cfg.Ambient.Color)
		if err != nil {
			return nil, err
		}
		scene.AddLights(NewAmbientLight("ambient", color, float32(cfg.Ambient.Intensity)))
	}

	for i, spotCfg := range cfg.Spotlights {
		color, err := NewColorFromHex(spotCfg.Color)
		if err != nil {
			return nil, err
		}
		spot := NewSpotLight(fmt.Sprintf("spot.%d", i), color, float32(spotCfg.Intensity), vectorFrom(spotCfg.Position), vectorFrom(spotCfg.Target))
		spot.Distance = float32(spotCfg.Distance)
		spot.Angle = float32(spotCfg.Angle)
		spot.Penumbra = float32(spotCfg.Penumbra)
		spot.Decay = float32(spotCfg.Decay)
		scene.AddLights(spot)
	}

	if post := cfg.PostProcessing; post.Enabled {
		composer := NewComposer(camera.Size())
		composer.AddPass(NewRenderPass(scene, camera))
		if post.RGBShift != 0 {
			composer.AddPass(NewRGBShiftPass(post.RGBShift))
		}
		if post.GammaCorrection {
			composer.AddPass(NewGammaCorrectionPass())
		}
		animator.Composer = composer
	}

	pixelRatio := size.PixelRatio
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	animator.Resize(max(size.Width, 1), max(size.Height, 1), cfg.PixelRatio(pixelRatio))
	animator.Tick(0)

	logger.Info("scene built",
		"variant", cfg.Variant,
		"segments", len(animator.Segments),
		"triangles", mesh.TriangleCount()*len(animator.Segments),
		"lights", len(scene.Lights),
		"postprocessing", animator.Composer != nil,
	)

	return animator, nil

}

func vectorFrom(v [3]float64) Vector {
	return NewVector(v[0], v[1], v[2])
}
