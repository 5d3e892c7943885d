package types

import (
	"errors"
	"path/filepath"
)

// Config holds the registry store location and server parameters.
type Config struct {
	DataDir    string `json:"data_dir" yaml:"data_dir"`
	StoreFile  string `json:"store_file" yaml:"store_file"`
	ListenAddr string `json:"listen_addr" yaml:"listen_addr"`
}

// Defaults applied when the config file leaves a key unset.
const (
	DefaultStoreFile  = "cadastro_pessoas.xlsx"
	DefaultListenAddr = ":8080"
)

// Config validation errors.
var (
	ErrStoreFileEmpty = errors.New("store file must not be empty")
)

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.StoreFile == "" {
		return ErrStoreFileEmpty
	}
	return nil
}

// StorePath returns the workbook path under DataDir.
func (c Config) StorePath() string {
	return filepath.Join(c.DataDir, c.StoreFile)
}
