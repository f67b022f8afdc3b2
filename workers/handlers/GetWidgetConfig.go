package handlers

import (
	"net/http"

	"gosyncswap/config"
)

type APIWidgetConfigResponse struct {
	WidgetVersion   string   `json:"widget_version"`
	SupportedChains []string `json:"supported_chains"`
	DefaultTheme    string   `json:"default_theme"`
	CDNURL          string   `json:"cdn_url"`
	Documentation   string   `json:"documentation"`
}

// GetWidgetConfig returns the embed configuration for the SYNC widget SDK.
func GetWidgetConfig(w http.ResponseWriter, r *http.Request) {
	responseJSON(w, &APIWidgetConfigResponse{
		WidgetVersion:   "1.0.0",
		SupportedChains: config.ChainIDs(),
		DefaultTheme:    "dark",
		CDNURL:          "https://cdn.sync.fm/widget/",
		Documentation:   "https://docs.sync.fm/widget",
	}, http.StatusOK)
}
