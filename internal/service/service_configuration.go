// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"

	"github.com/ohp/ohp-config/internal/logger"
	"github.com/ohp/ohp-config/internal/utils"
	"github.com/ohp/ohp-config/models"
)

// Defaults of the API document.
const (
	defaultAPIHost                   = "0.0.0.0"
	defaultAPIPort                   = 5000
	defaultAPIAccessLogFilename      = "ohp_api_access.log"
	defaultDatabaseConnectionTimeout = 2000 // milliseconds
	defaultDatabaseName              = "ohp_events"

	dockerDatabaseURL   = "mongodb://mongodb:27017/"
	loopbackDatabaseURL = "mongodb://127.0.0.1:27017/"
)

// Defaults of the network document.
const (
	loopbackAddress                  = "127.0.0.1"
	defaultRealMachineIdentifierName = "stockholm_server_1"
	splitPcapFileTimeoutHours        = 1
)

// Defaults of the docker document.
const defaultVirtualMachineStorageLimit = 0.5 // gigabytes

// Defaults of the user document.
const (
	defaultLanguage      = "en"
	defaultEventsLogFile = "tmp/ohp.log"
)

// defaultAPIClientWhiteList is copied on every call.
var defaultAPIClientWhiteList = []string{"127.0.0.1", "10.0.0.1", "192.168.1.1"}

type configurationService struct {
	env         Environment
	hostAddress string
	tokens      utils.TokenGenerator

	logger *logger.Logger
}

// NewConfigurationService returns a [ConfigurationService] for a machine
// whose resolved address is hostAddress.
func NewConfigurationService(env Environment, hostAddress string, tokens utils.TokenGenerator, logger *logger.Logger) ConfigurationService {
	return &configurationService{
		env:         env,
		hostAddress: hostAddress,
		tokens:      tokens,
		logger:      logger,
	}
}

func (s *configurationService) APIConfiguration() models.APIConfig {
	databaseURL := loopbackDatabaseURL
	if s.env.DockerDatabase {
		databaseURL = dockerDatabaseURL
	}

	accessKey := s.tokens.Generate()

	s.logger.Debug().Str("api_database", databaseURL).Msg("assembled api configuration")

	return models.APIConfig{
		Host:             defaultAPIHost,
		Port:             defaultAPIPort,
		DebugMode:        false,
		AccessWithoutKey: true,
		AccessKey:        &accessKey,
		ClientWhiteList: models.ClientWhiteList{
			Enabled: false,
			IPs:     slices.Clone(defaultAPIClientWhiteList),
		},
		AccessLog: models.AccessLog{
			Enabled:  false,
			Filename: defaultAPIAccessLogFilename,
		},
		Database:                  databaseURL,
		DatabaseConnectionTimeout: defaultDatabaseConnectionTimeout,
		DatabaseName:              defaultDatabaseName,
	}
}

func (s *configurationService) NetworkConfiguration() models.NetworkConfig {
	return models.NetworkConfig{
		StoreNetworkCapturedFiles:       false,
		RealMachineIPAddress:            s.hostAddress,
		IgnoreRealMachineIPAddress:      true,
		IgnoreVirtualMachineIPAddresses: true,
		RealMachineIdentifierName:       defaultRealMachineIdentifierName,
		IgnoreRealMachineIPAddresses:    uniqueAddresses(s.hostAddress, loopbackAddress),
		IgnoreRealMachinePorts:          []int{},
		SplitPcapFileTimeout:            utils.Hours(splitPcapFileTimeoutHours),
	}
}

func (s *configurationService) DockerConfiguration() models.DockerConfig {
	return models.DockerConfig{
		VirtualMachineStorageLimit:                     defaultVirtualMachineStorageLimit,
		VirtualMachineContainerResetFactoryTimeSeconds: utils.Hours(-1), // never reset
	}
}

func (s *configurationService) UserConfiguration() models.UserConfig {
	return models.UserConfig{
		Language:               defaultLanguage,
		EventsLogFile:          defaultEventsLogFile,
		DefaultSelectedModules: models.AllModules,
		DefaultExcludedModules: nil,
	}
}

func (s *configurationService) Configuration() models.Configuration {
	return models.Configuration{
		API:     s.APIConfiguration(),
		Network: s.NetworkConfiguration(),
		Docker:  s.DockerConfiguration(),
		User:    s.UserConfiguration(),
	}
}

// uniqueAddresses returns the addresses with duplicates removed. The
// resulting order carries no meaning.
func uniqueAddresses(addresses ...string) []string {
	unique := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		if !slices.Contains(unique, addr) {
			unique = append(unique, addr)
		}
	}

	return unique
}
