package busarrival

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0"`
}

type ArtifactsConfig struct {
	Path string `yaml:"path"`
}

type TrainingConfig struct {
	Records     int     `yaml:"records" validate:"gte=0"`
	Seed        uint64  `yaml:"seed"`
	RidgeAlpha  float64 `yaml:"ridgeAlpha" validate:"gte=0"`
	DatasetPath string  `yaml:"datasetPath"`
}

// ServiceInfo is the static descriptive metadata served by /api/info.
type ServiceInfo struct {
	System   string `yaml:"system"`
	Location string `yaml:"location"`
	Model    string `yaml:"model"`
	Version  string `yaml:"version"`
}

type AppConfig struct {
	Server    ServerConfig    `yaml:"server" validate:"required"`
	Artifacts ArtifactsConfig `yaml:"artifacts"`
	Training  TrainingConfig  `yaml:"training"`
	Service   ServiceInfo     `yaml:"service"`
}

var Config AppConfig

func LoadAppConfig() error {
	paths := []string{"config.yml", "./golang/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	Config = cfg
	applyConfigDefaults(&Config)
	return nil
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Artifacts.Path == "" {
		cfg.Artifacts.Path = "models/artifacts.gob"
	}
	if cfg.Training.Records == 0 {
		cfg.Training.Records = 250
	}
	if cfg.Training.Seed == 0 {
		cfg.Training.Seed = 42
	}
	if cfg.Training.RidgeAlpha == 0 {
		cfg.Training.RidgeAlpha = 1.0
	}
	if cfg.Service.System == "" {
		cfg.Service.System = "Smart Bus Arrival Time Prediction System"
	}
	if cfg.Service.Location == "" {
		cfg.Service.Location = "Kanyakumari District, Tamil Nadu"
	}
	if cfg.Service.Model == "" {
		cfg.Service.Model = "Ridge Regression"
	}
	if cfg.Service.Version == "" {
		cfg.Service.Version = "1.0.0"
	}
}
