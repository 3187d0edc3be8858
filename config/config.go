package config

import (
	"github.com/jinzhu/configor"
)

type Config struct {
	AppConfig   AppConfig   `env:"APPCONFIG"`
	DBConfig    DBConfig    `env:"DBCONFIG"`
	RedisConfig RedisConfig `env:"REDISCONFIG"`
	AuthConfig  AuthConfig  `env:"AUTHCONFIG"`
}

type AppConfig struct {
	APPName string `default:"petengine"`
	Version string `default:"x.x.x" env:"VERSION"`
	Port    int    `default:"8080" env:"APP_PORT"`
}

type DBConfig struct {
	// Driver selects the storage backend: "postgres" for deployments,
	// "sqlite" for local development.
	Driver   string `default:"postgres" env:"DBDRIVER"`
	Host     string `default:"localhost" env:"DBHOST"`
	DataBase string `default:"petengine" env:"DBNAME"`
	User     string `default:"postgres" env:"DBUSERNAME"`
	Password string `required:"true" env:"DBPASSWORD" default:"mysecretpassword"`
	Port     uint   `default:"5432" env:"DBPORT"`
	SSLMode  string `default:"disable" env:"DBSSL"`
	File     string `default:"petengine.db" env:"DBFILE"`
}

type RedisConfig struct {
	// Empty Addr disables the redis-backed interaction cooldown.
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD" default:""`
	DB       int    `default:"0" env:"REDIS_DB"`
}

type AuthConfig struct {
	JWTSecret string `required:"true" env:"JWT_SECRET" default:"dev-secret"`
}

func LoadConfigOrPanic() Config {
	var config = Config{}
	configor.Load(&config, "config/config.dev.json")

	return config
}
