// Config loading for the cadastro CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/RodneySerpa/cadastro-pf-excel/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFullName = "config.yaml"

	cfgKeyDataDir    = "data_dir"
	cfgKeyStoreFile  = "store_file"
	cfgKeyListenAddr = "listen_addr"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Cadastro CLI configuration

# Directory holding the registry workbook (optional; overridable by --data-dir)
# data_dir:

# Registry workbook file name
store_file: cadastro_pessoas.xlsx

# Listen address for "cadastro serve"
listen_addr: ":8080"
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run; a missing config.yaml is not an error.
func loadConfig(configDir string) (types.Config, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return types.Config{}, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return types.Config{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyStoreFile, types.DefaultStoreFile)
	v.SetDefault(cfgKeyListenAddr, types.DefaultListenAddr)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	c := types.Config{
		DataDir:    v.GetString(cfgKeyDataDir),
		StoreFile:  v.GetString(cfgKeyStoreFile),
		ListenAddr: v.GetString(cfgKeyListenAddr),
	}
	if err := c.Validate(); err != nil {
		return types.Config{}, err
	}
	return c, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFullName)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
