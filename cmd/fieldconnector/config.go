package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/goliatone/go-fieldconnector/pkg/fieldtype"
	"github.com/goliatone/go-fieldconnector/pkg/report"
	"github.com/goliatone/go-fieldconnector/pkg/transfer"
)

const (
	configFileName = "fieldconnector"
	configFileType = "yaml"
	envPrefix      = "FIELDCONNECTOR"

	cfgKeyOverrides       = "overrides"
	cfgKeyTransferType    = "transfer.type"
	cfgKeyStorageDuration = "transfer.storage_duration"
	cfgKeyFormat          = "format"
)

// overrideEntry is one class to label mapping. Overrides are stored as a
// list since viper lower-cases map keys and host classes are case-sensitive.
type overrideEntry struct {
	Class string `mapstructure:"class" yaml:"class"`
	Type  string `mapstructure:"type" yaml:"type"`
}

type config struct {
	Overrides []overrideEntry   `mapstructure:"overrides"`
	Transfer  transfer.Settings `mapstructure:"transfer"`
	Format    string            `mapstructure:"format"`
}

// loadConfig reads fieldconnector.yaml from path, or from the working
// directory and $HOME/.fieldconnector when path is empty. A missing file is
// not an error.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyTransferType, string(transfer.Contained))
	v.SetDefault(cfgKeyFormat, string(report.FormatText))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Unmarshal only sees keys viper knows about; storage_duration has no
	// default so it is bound explicitly.
	if err := v.BindEnv(cfgKeyStorageDuration); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, "."+configFileName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		if path != "" && errors.Is(err, os.ErrNotExist) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// decodeConfig unmarshals and validates the settings held by v.
func decodeConfig(v *viper.Viper) (config, error) {
	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Transfer.Validate(); err != nil {
		return config{}, fmt.Errorf("config transfer: %w", err)
	}
	if _, err := report.ParseFormat(cfg.Format); err != nil {
		return config{}, fmt.Errorf("config format: %w", err)
	}
	if _, err := cfg.overrides(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func (c config) overrides() (map[string]fieldtype.FieldType, error) {
	out := make(map[string]fieldtype.FieldType, len(c.Overrides))
	for i, entry := range c.Overrides {
		if strings.TrimSpace(entry.Class) == "" {
			return nil, fmt.Errorf("config overrides[%d]: class is required", i)
		}
		label, err := fieldtype.Parse(entry.Type)
		if err != nil {
			return nil, fmt.Errorf("config overrides[%d] %s: %w", i, entry.Class, err)
		}
		out[entry.Class] = label
	}
	return out, nil
}

// saveOverrides merges added into the overrides stored in the config file
// and writes it back. Only keys read from the file survive, so defaults and
// FIELDCONNECTOR_* values are never persisted. When no file was read it
// writes path, or fieldconnector.yaml in the working directory.
func saveOverrides(v *viper.Viper, path string, added map[string]fieldtype.FieldType) (string, error) {
	target := v.ConfigFileUsed()
	if target == "" {
		target = path
	}
	if target == "" {
		target = configFileName + "." + configFileType
	}

	file := viper.New()
	file.SetConfigFile(target)
	if err := file.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return "", fmt.Errorf("read config %s: %w", target, err)
		}
	}

	var stored config
	if err := file.Unmarshal(&stored); err != nil {
		return "", fmt.Errorf("decode config %s: %w", target, err)
	}
	merged, err := stored.overrides()
	if err != nil {
		return "", err
	}
	for class, label := range added {
		merged[class] = label
	}

	entries := make([]map[string]any, 0, len(merged))
	for _, class := range sortedKeys(merged) {
		entries = append(entries, map[string]any{"class": class, "type": merged[class].String()})
	}
	file.Set(cfgKeyOverrides, entries)

	if err := file.WriteConfigAs(target); err != nil {
		return "", fmt.Errorf("write config %s: %w", target, err)
	}
	return target, nil
}
