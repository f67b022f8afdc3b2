package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	yaml "gopkg.in/yaml.v2"
)

// reading config error is fatal, and exits main thread
func processError(err error) {
	fmt.Println(err)
	os.Exit(2)
}

func readFile(cfg *Configuration) {
	f, err := os.Open("config.yml")
	if err != nil {
		// the file is optional, env vars and defaults cover everything
		if os.IsNotExist(err) {
			return
		}
		processError(err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(cfg)
	if err != nil {
		processError(err)
	}
}

func readEnv(cfg *Configuration) {
	err := envconfig.Process("", cfg)
	if err != nil {
		processError(err)
	}
}

func applyDefaults(cfg *Configuration) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8001
	}
	if cfg.Server.RedisHost == "" {
		cfg.Server.RedisHost = "localhost"
	}
	if cfg.Server.RedisPort == 0 {
		cfg.Server.RedisPort = 6379
	}
}

func Init() {
	readFile(&Config)
	readEnv(&Config)
	applyDefaults(&Config)
}
