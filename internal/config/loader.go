package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".partial-extractor"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the YAML configuration file schema. Every field is optional;
// zero values leave the corresponding Config default untouched.
type File struct {
	// MinNodeCount overrides the candidate size threshold.
	MinNodeCount int `yaml:"min_node_count"`

	// SimilarityThreshold overrides the index-hit similarity threshold.
	SimilarityThreshold float64 `yaml:"similarity_threshold"`

	// MaxHammingDistance overrides the fingerprint distance bound.
	// Use -1 in the file to express an explicit zero bound.
	MaxHammingDistance int `yaml:"max_hamming_distance"`

	// MinSizeRatio overrides the size ratio bound.
	MinSizeRatio float64 `yaml:"min_size_ratio"`

	// MaxEditDistance enables the tree edit distance predicate.
	MaxEditDistance int `yaml:"max_edit_distance"`

	// Concurrency overrides the parallel stage worker limit.
	Concurrency int `yaml:"concurrency"`

	// PartialsDir overrides the partials subdirectory name.
	PartialsDir string `yaml:"partials_dir"`

	// ReportFile overrides the run summary file name. The literal
	// value "none" disables the report.
	ReportFile string `yaml:"report_file"`
}

// LoadFile loads overrides from a YAML file. If the file does not exist,
// it returns ErrConfigNotFound; callers decide whether that matters based
// on whether the path was explicitly requested.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &f, nil
}

// FindFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. Look for .partial-extractor in the current directory
//  3. Look for config.yaml in the XDG config directory
//
// Returns the path if found, or "" if not found.
func FindFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	xdgConfig := filepath.Join(XDGConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}

// Apply copies the file's non-zero overrides onto cfg.
func (f *File) Apply(cfg *Config) {
	if f.MinNodeCount > 0 {
		cfg.MinNodeCount = f.MinNodeCount
	}
	if f.SimilarityThreshold > 0 {
		cfg.SimilarityThreshold = f.SimilarityThreshold
	}
	if f.MaxHammingDistance > 0 {
		cfg.MaxHammingDistance = f.MaxHammingDistance
	} else if f.MaxHammingDistance == -1 {
		cfg.MaxHammingDistance = 0
	}
	if f.MinSizeRatio > 0 {
		cfg.MinSizeRatio = f.MinSizeRatio
	}
	if f.MaxEditDistance > 0 {
		cfg.MaxEditDistance = f.MaxEditDistance
	}
	if f.Concurrency > 0 {
		cfg.Concurrency = f.Concurrency
	}
	if f.PartialsDir != "" {
		cfg.PartialsDirName = f.PartialsDir
	}
	if f.ReportFile == "none" {
		cfg.ReportFileName = ""
	} else if f.ReportFile != "" {
		cfg.ReportFileName = f.ReportFile
	}
}
