package effect

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the effect knobs. It is fixed once a Controller is built.
type Config struct {
	EasingFactor         float64 `json:"easingFactor"`
	ParallaxStrength     float64 `json:"parallaxStrength"`
	DistortionMultiplier float64 `json:"distortionMultiplier"`
	StripeFrequency      float64 `json:"stripeFrequency"`
	EdgePadding          float64 `json:"edgePadding"`

	// forwarded to the shader but not used by it
	GlassStrength   float64 `json:"glassStrength"`
	GlassSmoothness float64 `json:"glassSmoothness"`
}

func DefaultConfig() Config {
	return Config{
		EasingFactor:         0.035,
		ParallaxStrength:     0.1,
		DistortionMultiplier: 10,
		StripeFrequency:      35,
		EdgePadding:          0.1,
		GlassStrength:        2.0,
		GlassSmoothness:      0.0001,
	}
}

// Validate reports every bad knob at once.
func (c Config) Validate() error {
	var errs []error

	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	knobs := []struct {
		name  string
		value float64
	}{
		{"easingFactor", c.EasingFactor},
		{"parallaxStrength", c.ParallaxStrength},
		{"distortionMultiplier", c.DistortionMultiplier},
		{"stripeFrequency", c.StripeFrequency},
		{"edgePadding", c.EdgePadding},
		{"glassStrength", c.GlassStrength},
		{"glassSmoothness", c.GlassSmoothness},
	}
	for _, k := range knobs {
		if math.IsNaN(k.value) || math.IsInf(k.value, 0) {
			invalid("%s must be finite, got %v", k.name, k.value)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	if c.EasingFactor < 0 || c.EasingFactor > 1 {
		invalid("easingFactor must be within [0, 1], got %v", c.EasingFactor)
	}
	if c.StripeFrequency <= 0 {
		invalid("stripeFrequency must be positive, got %v", c.StripeFrequency)
	}
	if c.EdgePadding <= 0 || c.EdgePadding > 0.5 {
		invalid("edgePadding must be within (0, 0.5], got %v", c.EdgePadding)
	}
	if c.GlassStrength < 0 {
		invalid("glassStrength must not be negative, got %v", c.GlassStrength)
	}
	if c.GlassSmoothness < 0 {
		invalid("glassSmoothness must not be negative, got %v", c.GlassSmoothness)
	}

	return errors.Join(errs...)
}

// RegisterFlags binds one flag per knob to c. Current values become the
// flag defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Float64Var(&c.EasingFactor, "easing", c.EasingFactor, "per frame pointer easing factor in [0, 1]")
	fs.Float64Var(&c.ParallaxStrength, "parallax", c.ParallaxStrength, "parallax strength")
	fs.Float64Var(&c.DistortionMultiplier, "distortion", c.DistortionMultiplier, "distortion multiplier")
	fs.Float64Var(&c.StripeFrequency, "stripes", c.StripeFrequency, "stripe frequency")
	fs.Float64Var(&c.EdgePadding, "edge-padding", c.EdgePadding, "width of the edge feathering in (0, 0.5]")
	fs.Float64Var(&c.GlassStrength, "glass-strength", c.GlassStrength, "glass strength (reserved)")
	fs.Float64Var(&c.GlassSmoothness, "glass-smoothness", c.GlassSmoothness, "glass smoothness (reserved)")
}

// DecodeConfig reads a JSON object over base. Keys missing from the
// object keep the value from base.
func DecodeConfig(r io.Reader, base Config) (Config, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	cfg := base
	if err := dec.Decode(&cfg); err != nil {
		return base, fmt.Errorf("decoding config: %w", err)
	}

	return cfg, nil
}

func LoadConfigFile(path string, base Config) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return base, err
	}
	defer file.Close()

	cfg, err := DecodeConfig(file, base)
	if err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}
