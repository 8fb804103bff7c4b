package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	RedisAddr     string
	RedisPassword string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	VideosBucket   string

	RenderConcurrency int
	RenderCLI         string
	RenderProjectDir  string
	RenderOutputDir   string

	JWTPublicKey string
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	viper.SetDefault("MARIADB_MAX_OPEN_CONN", 10)
	viper.SetDefault("MARIADB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("MARIADB_CONN_MAX_LIFETIME", 300)
	viper.SetDefault("VIDEOS_BUCKET", "videos")
	viper.SetDefault("RENDER_CONCURRENCY", 3)
	viper.SetDefault("RENDER_CLI", "npx")
	viper.SetDefault("RENDER_OUTPUT_DIR", "videos")

	if !viper.IsSet("MARIADB_DSN") {
		return nil, fmt.Errorf("MARIADB_DSN is required")
	}
	if !viper.IsSet("SERVER_PORT") {
		return nil, fmt.Errorf("SERVER_PORT is required")
	}
	if !viper.IsSet("MINIO_ENDPOINT") {
		return nil, fmt.Errorf("MINIO_ENDPOINT is required")
	}
	if !viper.IsSet("MINIO_ACCESS_KEY") {
		return nil, fmt.Errorf("MINIO_ACCESS_KEY is required")
	}
	if !viper.IsSet("MINIO_SECRET_KEY") {
		return nil, fmt.Errorf("MINIO_SECRET_KEY is required")
	}

	return &Settings{
		MariaDBDSN:      viper.GetString("MARIADB_DSN"),
		MaxOpenConns:    viper.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    viper.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(viper.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      viper.GetInt("SERVER_PORT"),

		RedisAddr:     viper.GetString("REDIS_ADDR"),
		RedisPassword: viper.GetString("REDIS_PASSWORD"),

		MinioEndpoint:  viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey: viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey: viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:    viper.GetBool("MINIO_USE_SSL"),
		VideosBucket:   viper.GetString("VIDEOS_BUCKET"),

		RenderConcurrency: viper.GetInt("RENDER_CONCURRENCY"),
		RenderCLI:         viper.GetString("RENDER_CLI"),
		RenderProjectDir:  viper.GetString("RENDER_PROJECT_DIR"),
		RenderOutputDir:   viper.GetString("RENDER_OUTPUT_DIR"),

		JWTPublicKey: viper.GetString("JWT_PUBLIC_KEY"),
	}, nil
}
