package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/planlayout/internal/config"
)

// EnvData represents the environment data.
type EnvData struct {
	BaseDirPath string
}

func loadEnvData() EnvData {
	var envData EnvData

	// set up dir per option
	planlayoutHome := os.Getenv("PLANLAYOUT_HOME")
	if planlayoutHome == "" {
		envData.BaseDirPath = filepath.Join(os.Getenv("HOME"), ".config", "planlayout")
	} else {
		envData.BaseDirPath = strings.TrimRight(planlayoutHome, "/")
	}

	return envData
}

// ConfigPath is the path of the config file.
func (e EnvData) ConfigPath() string {
	return filepath.Join(e.BaseDirPath, "config.yaml")
}

// DefaultEventsPath is the path of the events file read when none is given.
func (e EnvData) DefaultEventsPath() string {
	return filepath.Join(e.BaseDirPath, "events.yaml")
}

// loadConfig reads the config file, falling back to the defaults if there is
// none.
func loadConfig(envData EnvData) (config.Config, error) {
	yamlData, err := os.ReadFile(envData.ConfigPath())
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("path", envData.ConfigPath()).Msg("no config file, using defaults")
		return config.Default(), nil
	}
	if err != nil {
		return config.Config{}, fmt.Errorf("can't read config file (%w)", err)
	}

	configData, err := config.ParseConfigAugmentDefaults(yamlData)
	if err != nil {
		return config.Config{}, fmt.Errorf("can't parse config data (%w)", err)
	}
	return configData, nil
}
