package vaporgrid

// Scene represents a world of sorts, and contains the Models and Lights that are rendered together.
type Scene struct {
	Name   string
	World  *World
	Models []*Model
	Lights []Light
}

// NewScene creates a new Scene by the name given, with a fresh World.
func NewScene(name string) *Scene {
	return &Scene{
		Name:  name,
		World: NewWorld(name),
	}
}

// AddModels adds the given Models to the Scene.
func (scene *Scene) AddModels(models ...*Model) {
	scene.Models = append(scene.Models, models...)
}

// AddLights adds the given Lights to the Scene.
func (scene *Scene) AddLights(lights ...Light) {
	scene.Lights = append(scene.Lights, lights...)
}

// FindModel returns the Model with the given name, or nil if none exists.
func (scene *Scene) FindModel(name string) *Model {
	for _, m := range scene.Models {
		if m.Name() == name {
			return m
		}
	}
	return nil
}
