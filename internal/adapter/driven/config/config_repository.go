package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/pergosolar/opticost-go/internal/domain/entity"
	"github.com/pergosolar/opticost-go/internal/domain/repository"
	"github.com/pergosolar/opticost-go/internal/shared/types"
	"gopkg.in/yaml.v3"
)

// ConfigRepositoryImpl implements the ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository creates a new implementation of the ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile loads a TOML, YAML or JSON configuration file holding report
// defaults, catalog sources and rate-table overrides.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	var config types.Config
	if err := unmarshalByExtension(filePath, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadJobFile loads a saved job configuration from a TOML, YAML or JSON file.
func (r *ConfigRepositoryImpl) LoadJobFile(filePath string) (*entity.JobConfig, error) {
	var job entity.JobConfig
	if err := unmarshalByExtension(filePath, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// unmarshalByExtension reads filePath and decodes it into v based on the file
// extension.
func unmarshalByExtension(filePath string, v interface{}) error {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("error accessing config file: %w", err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, v); err != nil {
			return fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, v); err != nil {
			return fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, v); err != nil {
			return fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return nil
}
