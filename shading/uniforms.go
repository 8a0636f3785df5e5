package shading

import (
	"reflect"

	"github.com/go-gl/mathgl/mgl64"
)

var vec2Type = reflect.TypeOf(mgl64.Vec2{})

// Uniforms converts p into the uniform map ebiten expects, keyed by the
// uniform tag of each field. Kage floats are 32 bit so every value is
// narrowed to float32.
func Uniforms(p Params) map[string]any {
	v := reflect.ValueOf(p)
	t := v.Type()

	uniforms := make(map[string]any, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("uniform")
		if name == "" {
			continue
		}

		f := v.Field(i)

		switch f.Type() {
		case vec2Type:
			vec := f.Interface().(mgl64.Vec2)
			uniforms[name] = []float32{float32(vec[0]), float32(vec[1])}
		default:
			if f.Kind() == reflect.Float64 || f.Kind() == reflect.Float32 {
				uniforms[name] = float32(f.Float())
			} else {
				panic("shading: unsupported uniform type " + f.Type().String())
			}
		}
	}

	return uniforms
}
