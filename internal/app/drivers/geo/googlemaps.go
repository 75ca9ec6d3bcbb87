package geo

import (
	"halo-service/internal/app/config"
	"log"

	"googlemaps.github.io/maps"
)

func NewGoogleMapsClient(internalConfig *config.InternalConfig) *maps.Client {
	if internalConfig.Maps.APIKey == "" {
		log.Println("GOOGLE_MAPS_API_KEY is not set, maps proxy disabled")
		return nil
	}

	options := []maps.ClientOption{maps.WithAPIKey(internalConfig.Maps.APIKey)}
	if internalConfig.Maps.BaseURL != "" {
		options = append(options, maps.WithBaseURL(internalConfig.Maps.BaseURL))
	}

	client, err := maps.NewClient(options...)
	if err != nil {
		log.Printf("Failed to initialize google maps client: %s", err.Error())
		return nil
	}

	log.Println("Successfully initialized google maps client")
	return client
}
