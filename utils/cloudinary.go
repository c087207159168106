package utils

import (
	"fmt"

	"pawhaven/services/storage"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/spf13/viper"
)

// Cloudinary initializes and returns a Cloudinary-based StorageService using Viper.
func Cloudinary() (storage.StorageService, error) {
	viper.SetDefault("cloudinary.cloudName", "")
	viper.SetDefault("cloudinary.apiKey", "")
	viper.SetDefault("cloudinary.apiSecret", "")

	cloudName := viper.GetString("cloudinary.cloudName")
	apiKey := viper.GetString("cloudinary.apiKey")
	apiSecret := viper.GetString("cloudinary.apiSecret")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("utils.Cloudinary: failed to initialize Cloudinary: %w", err)
	}

	return storage.NewStorageService(cld, cloudName), nil
}
