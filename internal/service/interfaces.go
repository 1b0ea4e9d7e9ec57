package service

import (
	"github.com/ohp/ohp-config/models"
)

// ConfigurationService assembles the configuration documents handed to the
// honeypot components. Every call returns a freshly allocated document;
// callers may modify it without affecting later calls.
type ConfigurationService interface {
	// APIConfiguration returns the API server settings. The access key is
	// regenerated on every call.
	APIConfiguration() models.APIConfig
	// NetworkConfiguration returns the packet-capture settings.
	NetworkConfiguration() models.NetworkConfig
	// DockerConfiguration returns the container lifecycle limits.
	DockerConfiguration() models.DockerConfig
	// UserConfiguration returns the user-facing defaults.
	UserConfiguration() models.UserConfig
	// Configuration returns all four documents at once.
	Configuration() models.Configuration
}
