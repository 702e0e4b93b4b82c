package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	htygo "github.com/hupe1980/htygo"
	"github.com/hupe1980/htygo/blobstore"
	minioblob "github.com/hupe1980/htygo/blobstore/minio"
	s3blob "github.com/hupe1980/htygo/blobstore/s3"
)

// config is the optional YAML configuration. Every field has a usable zero
// value; a missing config file is not an error.
type config struct {
	Log struct {
		Level  string `yaml:"level"`  // debug|info|warn|error
		Format string `yaml:"format"` // text|json
	} `yaml:"log"`
	Remote struct {
		Backend   string `yaml:"backend"` // s3|minio
		Bucket    string `yaml:"bucket"`
		Prefix    string `yaml:"prefix"`
		Region    string `yaml:"region"`
		Endpoint  string `yaml:"endpoint"` // minio only
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
		UseSSL    bool   `yaml:"use_ssl"`
	} `yaml:"remote"`
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "hty", "config.yaml")
}

func loadConfig(path string) (*config, error) {
	cfg := &config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// setup loads the config and builds the logger, honoring the --log-level
// override.
func setup(cmd *cli.Command) (*config, *htygo.Logger, error) {
	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return nil, nil, err
	}

	levelName := cfg.Log.Level
	if override := cmd.String("log-level"); override != "" {
		levelName = override
	}

	var level slog.Level
	switch levelName {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, nil, fmt.Errorf("unknown log level %q", levelName)
	}

	var logger *htygo.Logger
	if cfg.Log.Format == "json" {
		logger = htygo.NewJSONLogger(level)
	} else {
		logger = htygo.NewTextLogger(level)
	}
	return cfg, logger, nil
}

// buildStore creates the remote blob store named in the config.
func (c *config) buildStore(ctx context.Context) (blobstore.Store, error) {
	switch c.Remote.Backend {
	case "s3":
		optFns := []func(*awsconfig.LoadOptions) error{}
		if c.Remote.Region != "" {
			optFns = append(optFns, awsconfig.WithRegion(c.Remote.Region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
		if err != nil {
			return nil, err
		}
		return s3blob.NewStore(awss3.NewFromConfig(awsCfg), c.Remote.Bucket, c.Remote.Prefix), nil
	case "minio":
		client, err := minio.New(c.Remote.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(c.Remote.AccessKey, c.Remote.SecretKey, ""),
			Secure: c.Remote.UseSSL,
		})
		if err != nil {
			return nil, err
		}
		return minioblob.NewStore(client, c.Remote.Bucket, c.Remote.Prefix), nil
	case "":
		return nil, fmt.Errorf("no remote backend configured (set remote.backend to s3 or minio)")
	default:
		return nil, fmt.Errorf("unknown remote backend %q", c.Remote.Backend)
	}
}
