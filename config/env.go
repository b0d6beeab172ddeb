package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys read by LoadEnvOverride.
const (
	EnvVerbose       = "RAMSHELL_VERBOSE"
	EnvTableCapacity = "RAMSHELL_TABLE_CAPACITY"
	EnvMaxNameLen    = "RAMSHELL_MAX_NAME_LEN"
	EnvMaxFileSize   = "RAMSHELL_MAX_FILE_SIZE"
	EnvMaxLineLen    = "RAMSHELL_MAX_LINE_LEN"
	EnvMaxCommandLen = "RAMSHELL_MAX_COMMAND_LEN"
	EnvHomeDir       = "RAMSHELL_HOME_DIR"
	EnvLayout        = "RAMSHELL_LAYOUT"
	EnvColumns       = "RAMSHELL_COLUMNS"
	EnvRows          = "RAMSHELL_ROWS"
)

var envKeys = []string{
	EnvVerbose, EnvTableCapacity, EnvMaxNameLen, EnvMaxFileSize, EnvMaxLineLen,
	EnvMaxCommandLen, EnvHomeDir, EnvLayout, EnvColumns, EnvRows,
}

// LoadEnvOverride reads RAMSHELL_* settings from the given .env files and
// then from the process environment, which wins on conflicts.
// No filenames means only the process environment is consulted.
func LoadEnvOverride(filenames ...string) (*ConfigOverride, error) {
	values := make(map[string]string)
	if len(filenames) > 0 {
		data, err := godotenv.Read(filenames...)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file: %w", err)
		}
		values = data
	}
	for _, key := range envKeys {
		if v, ok := os.LookupEnv(key); ok {
			values[key] = v
		}
	}
	return envOverride(values)
}

// envOverride converts RAMSHELL_* key/values into a ConfigOverride.
// Unknown keys are ignored.
func envOverride(values map[string]string) (*ConfigOverride, error) {
	var override ConfigOverride

	ints := []struct {
		key string
		dst **int
	}{
		{EnvVerbose, &override.LogLvl},
		{EnvTableCapacity, &override.TableCapacity},
		{EnvMaxNameLen, &override.MaxNameLen},
		{EnvMaxFileSize, &override.MaxFileSize},
		{EnvMaxLineLen, &override.MaxLineLen},
		{EnvMaxCommandLen, &override.MaxCommandLen},
		{EnvColumns, &override.Columns},
		{EnvRows, &override.Rows},
	}
	for _, in := range ints {
		raw, ok := values[in.key]
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", in.key, raw, err)
		}
		*in.dst = &v
	}

	if v, ok := values[EnvHomeDir]; ok {
		override.HomeDir = &v
	}
	if v, ok := values[EnvLayout]; ok && v != "" {
		override.Layout = &v
	}
	return &override, nil
}
