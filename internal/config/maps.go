package config

type MapsConfig struct {
	GoogleAPIKey string `yaml:"google_api_key"`
	POIRadius    int    `yaml:"poi_radius"`
}

func loadMapsConfig() *MapsConfig {
	return &MapsConfig{
		GoogleAPIKey: getEnv("GOOGLE_MAPS_API_KEY", ""),
		POIRadius:    getEnvAsInt("POI_SEARCH_RADIUS", 500),
	}
}
