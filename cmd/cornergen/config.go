package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Config holds the optional overrides accepted by the generate subcommand.
// Everything here also has an equivalent command-line flag; a value set in
// the config file overrides the flag.
type Config struct {
	Out      string `json:"out"`
	Scramble string `json:"scramble"`
	Quiet    bool   `json:"quiet"`
	Checksum bool   `json:"checksum"`
	Progress int64  `json:"progress"`
}

func loadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open config %q", path)
	}
	defer file.Close()

	cfg := &Config{}
	if err := json.NewDecoder(file).Decode(cfg); err != nil {
		return nil, errors.Wrapf(err, "decode config %q", path)
	}
	return cfg, nil
}
