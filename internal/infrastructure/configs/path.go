package configs

import (
	"flag"
	"os"

	"github.com/roomkit/roomkit/internal/infrastructure/env"
)

// DetermineConfigPath resolves the config file from the --config flag, the
// ROOMKIT_CONFIG env var, or a list of conventional locations. An empty
// return means no file was found and defaults apply.
func DetermineConfigPath() string {
	var configPath string

	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	if configPath == "" {
		configPath = env.GetString("ROOMKIT_CONFIG", "")
	}

	if configPath == "" {
		candidates := []string{
			"./config.yaml",
			"./config.yml",
			"/etc/roomkit/config.yaml",
			"/app/config.yaml", // common in Docker
		}

		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				configPath = p
				break
			}
		}
	}

	return configPath
}
