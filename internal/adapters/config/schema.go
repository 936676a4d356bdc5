package config

// SettingsFile is the on-disk layout of builder-ui.yaml.
type SettingsFile struct {
	Builder BuilderDTO `yaml:"builder"`
	Output  OutputDTO  `yaml:"output"`
	Log     LogDTO     `yaml:"log"`
}

// BuilderDTO configures the supervised executable.
type BuilderDTO struct {
	Path             string `yaml:"path"`
	CompletionMarker string `yaml:"completionMarker"`
}

// OutputDTO configures the output log.
type OutputDTO struct {
	Lines *int `yaml:"lines"`
}

// LogDTO configures diagnostics logging.
type LogDTO struct {
	JSON bool `yaml:"json"`
}
