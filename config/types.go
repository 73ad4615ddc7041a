package config

// Scenario names one processing run: the paired AM/PM volume exports,
// the ATTOUT export and the directory the outputs go to.
type Scenario struct {
	Name       string `yaml:"name" validate:"required"`
	AMPath     string `yaml:"amPath" validate:"required"`
	PMPath     string `yaml:"pmPath" validate:"required"`
	ATTOUTPath string `yaml:"attoutPath" validate:"required"`
	OutputDir  string `yaml:"outputDir" validate:"required"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Scenarios []Scenario `yaml:"scenarios"`
}
