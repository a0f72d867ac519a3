package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSigma         = 10.0
	DefaultRho           = 28.0
	DefaultBeta          = 8.0 / 3.0
	DefaultDt            = 0.01
	DefaultStepsPerFrame = 1
	DefaultMaxPoints     = 50000
	DefaultLineAlpha     = 1.0
	DefaultDistance      = 60.0
	DefaultYaw           = 45.0
	DefaultPitch         = 20.0
	DefaultWidth         = 1600
	DefaultHeight        = 900
)

type Config struct {
	Sim    SimConfig    `yaml:"sim"`
	Camera CameraConfig `yaml:"camera"`
	Window WindowConfig `yaml:"window"`
}

type SimConfig struct {
	Sigma         float64 `yaml:"sigma"`
	Rho           float64 `yaml:"rho"`
	Beta          float64 `yaml:"beta"`
	Dt            float64 `yaml:"dt"`
	StepsPerFrame int     `yaml:"steps_per_frame"`
	MaxPoints     int     `yaml:"max_points"`
	LineAlpha     float64 `yaml:"line_alpha"`
}

type CameraConfig struct {
	Distance float64 `yaml:"distance"`
	Yaw      float64 `yaml:"yaw"`
	Pitch    float64 `yaml:"pitch"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Sim: SimConfig{
			Sigma:         DefaultSigma,
			Rho:           DefaultRho,
			Beta:          DefaultBeta,
			Dt:            DefaultDt,
			StepsPerFrame: DefaultStepsPerFrame,
			MaxPoints:     DefaultMaxPoints,
			LineAlpha:     DefaultLineAlpha,
		},
		Camera: CameraConfig{
			Distance: DefaultDistance,
			Yaw:      DefaultYaw,
			Pitch:    DefaultPitch,
		},
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
