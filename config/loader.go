package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration. An
// empty path falls back to config.yml in the working directory.
func LoadAppConfig(path string) error {
	paths := []string{"config.yml"}
	if path != "" {
		paths = []string{path}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return errors.Wrap(err, "read config")
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return errors.Wrap(err, "parse config")
	}
	v := validator.New()
	for _, s := range cfg.Scenarios {
		if err := v.Struct(s); err != nil {
			return errors.Wrapf(err, "scenario %q", s.Name)
		}
	}
	Config = cfg
	return nil
}

// SelectScenario chooses a scenario by name; fallback to first.
func SelectScenario(name string) (Scenario, bool) {
	if name != "" {
		for _, s := range Config.Scenarios {
			if s.Name == name {
				return s, true
			}
		}
		return Scenario{}, false
	}
	if len(Config.Scenarios) > 0 {
		return Config.Scenarios[0], true
	}
	return Scenario{}, false
}
