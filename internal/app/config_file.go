package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the optional single-file configuration schema. Nested
// sections map naturally onto flags.
type FileConfig struct {
	Base string `yaml:"base" json:"base"`

	Collection struct {
		Manifest string `yaml:"manifest" json:"manifest"`
		Output   string `yaml:"output" json:"output"`
		Docs     string `yaml:"docs" json:"docs"`
	} `yaml:"collection" json:"collection"`

	Workers int `yaml:"workers" json:"workers"`

	Report struct {
		PDF string `yaml:"pdf" json:"pdf"`
	} `yaml:"report" json:"report"`

	Check   bool `yaml:"check" json:"check"`
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig, picking the codec by
// extension and trying both when the extension is unknown.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays file values onto cfg for fields the flags left at
// their defaults, so explicit flags always win over the config file.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.BaseDir == "" || cfg.BaseDir == ".") && fc.Base != "" {
		cfg.BaseDir = fc.Base
	}
	if (cfg.ManifestName == "" || cfg.ManifestName == DefaultManifestName) && fc.Collection.Manifest != "" {
		cfg.ManifestName = fc.Collection.Manifest
	}
	if (cfg.OutputName == "" || cfg.OutputName == DefaultOutputName) && fc.Collection.Output != "" {
		cfg.OutputName = fc.Collection.Output
	}
	if (cfg.DocsDir == "" || cfg.DocsDir == DefaultDocsDir) && fc.Collection.Docs != "" {
		cfg.DocsDir = fc.Collection.Docs
	}
	if (cfg.Workers == 0 || cfg.Workers == DefaultWorkers) && fc.Workers > 0 {
		cfg.Workers = fc.Workers
	}
	if cfg.PDFReport == "" && fc.Report.PDF != "" {
		cfg.PDFReport = fc.Report.PDF
	}
	if !cfg.CheckOutput && fc.Check {
		cfg.CheckOutput = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
