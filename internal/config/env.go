package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"
	"github.com/san-kum/chaosgen/internal/log"
)

// Env holds settings sourced from the process environment rather than
// the config file. A .env file loaded at startup feeds into these.
type Env struct {
	Log        log.Config `env:""`
	DataDir    string     `env:"CHAOSGEN_DATA_DIR,default=data"`
	ConfigFile string     `env:"CHAOSGEN_CONFIG"`
}

func LoadEnv() (*Env, error) {
	var env Env

	if err := envdecode.Decode(&env); err != nil {
		return nil, fmt.Errorf("decode environment: %w", err)
	}

	if err := ValidateStruct(&env); err != nil {
		return nil, fmt.Errorf("validate environment: %w", err)
	}

	return &env, nil
}
