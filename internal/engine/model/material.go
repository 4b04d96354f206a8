package model

import "github.com/Faultbox/tesseract/internal/pluginapi"

// Material stores the properties a plugin assigns to a material id.
type Material struct {
	ID              pluginapi.MaterialID
	Name            string
	DiffuseColor    [3]float32
	ReflectionIndex float32
	// Properties holds named property sets, e.g. "default".
	Properties map[string]pluginapi.PropertyMap
}

// SetProperties replaces the property set called name.
func (m *Material) SetProperties(name string, props pluginapi.PropertyMap) {
	cp := make(pluginapi.PropertyMap, len(props))
	for k, v := range props {
		cp[k] = v
	}
	m.Properties[name] = cp
}

// SetDiffuseColor sets the RGB diffuse colour.
func (m *Material) SetDiffuseColor(rgb [3]float32) {
	m.DiffuseColor = rgb
}

// SetReflectionIndex sets the reflection index. The renderer draws the
// material with opacity 1 - index.
func (m *Material) SetReflectionIndex(v float32) {
	m.ReflectionIndex = v
}

// Opacity returns the alpha the renderer uses for this material.
func (m *Material) Opacity() float32 {
	a := 1 - m.ReflectionIndex
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// ShadingMode reads "shading_mode" from the default property set.
func (m *Material) ShadingMode() pluginapi.ShadingMode {
	props, ok := m.Properties["default"]
	if !ok {
		return pluginapi.ShadingNone
	}
	switch v := props["shading_mode"].(type) {
	case int:
		return pluginapi.ShadingMode(v)
	case pluginapi.ShadingMode:
		return v
	default:
		return pluginapi.ShadingNone
	}
}
