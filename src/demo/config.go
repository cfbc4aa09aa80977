package demo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog"

	"spatial/src/physics/geometry"
)

const envPrefix = "SPATIAL"

var ErrInvalidConfig = errors.New("invalid config")

// Config is the decoded form of the demonstration settings. Triples are
// x, y, z.
type Config struct {
	Origin []float64 `mapstructure:"origin"`
	Probe  []float64 `mapstructure:"probe"`
	V1     []float64 `mapstructure:"v1"`
	V2     []float64 `mapstructure:"v2"`
	Radius float64   `mapstructure:"radius"`
	Output string    `mapstructure:"output"`
}

// NewViper returns a viper instance carrying the default scene, the SPATIAL_
// environment prefix and, when non-nil, bindings for the output and radius
// flags.
func NewViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("origin", []float64{0, 0, 0})
	v.SetDefault("probe", []float64{1, 1, 1})
	v.SetDefault("v1", []float64{1, 2, 3})
	v.SetDefault("v2", []float64{2, 4, 6})
	v.SetDefault("radius", 2.5)
	v.SetDefault("output", "text")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, name := range []string{"output", "radius"} {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(name, f); err != nil {
				return nil, err
			}
		}
	}
	return v, nil
}

// LoadConfig reads path (if set) into v and decodes the result.
func LoadConfig(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidConfig, path, err)
		}
		klog.V(2).Infof("Loaded scene config from %s", v.ConfigFileUsed())
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	klog.V(4).Infof("Scene config: %#v", cfg)
	return cfg, nil
}

// Scene builds the scene described by c. A negative radius surfaces as the
// geometry package's error.
func (c *Config) Scene() (Scene, error) {
	origin, err := triple("origin", c.Origin)
	if err != nil {
		return Scene{}, err
	}
	probe, err := triple("probe", c.Probe)
	if err != nil {
		return Scene{}, err
	}
	v1, err := triple("v1", c.V1)
	if err != nil {
		return Scene{}, err
	}
	v2, err := triple("v2", c.V2)
	if err != nil {
		return Scene{}, err
	}

	center := geometry.NewPoint(origin[0], origin[1], origin[2])
	ball, err := geometry.NewBall(center, c.Radius)
	if err != nil {
		return Scene{}, err
	}

	return Scene{
		Origin: center,
		Probe:  geometry.NewPoint(probe[0], probe[1], probe[2]),
		V1:     geometry.NewVector(v1[0], v1[1], v1[2]),
		V2:     geometry.NewVector(v2[0], v2[1], v2[2]),
		Ball:   ball,
	}, nil
}

func triple(name string, values []float64) ([]float64, error) {
	if len(values) != 3 {
		return nil, fmt.Errorf("%w: %s needs 3 components, got %d", ErrInvalidConfig, name, len(values))
	}
	return values, nil
}
