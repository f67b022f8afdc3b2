package config

type Configuration struct {
	// Server config
	Server struct {
		Port      int    `yaml:"port" envconfig:"PORT"`
		RedisHost string `yaml:"redis_host" envconfig:"REDIS_HOST"`
		RedisPort int    `yaml:"redis_port" envconfig:"REDIS_PORT"`
	} `yaml:"server"`
}

var Config Configuration

// directory the built frontend app is served from
const APP_DIR = "app"
