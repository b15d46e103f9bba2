package app

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	CfgCartAPI     ConfigAPI     `yaml:"cart_api"`
	CfgCatalogAPI  ConfigAPI     `yaml:"catalog_api"`
	CfgWishlistAPI ConfigAPI     `yaml:"wishlist_api"`
	CfgRedis       ConfigRedis   `yaml:"redis"`
	StorageSlot    string        `yaml:"storage_slot"`
	HTTPTimeout    time.Duration `yaml:"http_timeout"`
}

type ConfigAPI struct {
	BaseURL string `yaml:"base_url"`
}

// ConfigRedis настройки слота долговременного хранения корзины
// Пустой Addr означает хранение в памяти процесса
type ConfigRedis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

func NewConfig(configPath string) (*Config, error) {
	cfg, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var c Config
	err = yaml.Unmarshal(cfg, &c)
	if err != nil {
		return nil, err
	}

	return &c, nil
}
