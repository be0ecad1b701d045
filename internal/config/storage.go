package config

import "cycleroute/internal/utils"

type StorageConfig struct {
	UploadPath string `yaml:"upload_path"`
	BaseURL    string `yaml:"base_url"`
	MaxSize    int64  `yaml:"max_size"`
}

func loadStorageConfig() *StorageConfig {
	return &StorageConfig{
		UploadPath: getEnv("UPLOAD_PATH", "./uploads"),
		BaseURL:    getEnv("UPLOAD_BASE_URL", "http://localhost:5000/uploads"),
		MaxSize:    int64(getEnvAsInt("UPLOAD_MAX_SIZE", utils.MaxImageSize)),
	}
}
