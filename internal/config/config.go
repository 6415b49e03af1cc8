package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type BillingConfig struct {
	Env        string `yaml:"env"`
	HTTPServer `yaml:"http_server"`
	BillingDB  `yaml:"billing_db"`
	LogConfig  `yaml:"log_config"`
	Kafka      `yaml:"kafka"`
	Migrations `yaml:"migrations"`
	Alerts     `yaml:"alerts"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type BillingDB struct {
	Dsn string `yaml:"dsn"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type Kafka struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"transaction-events"`
}

type Migrations struct {
	Path string `yaml:"path" env-default:"migrations"`
}

type Alerts struct {
	Webhook string `yaml:"webhook"`
}

func MustLoad() *BillingConfig {

	// Processing env config variable and file
	configPath := os.Getenv("BILLING_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("BILLING_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg BillingConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
