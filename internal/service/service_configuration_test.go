// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"testing"

	"github.com/ohp/ohp-config/internal/encoding"
	"github.com/ohp/ohp-config/internal/logger"
	"github.com/ohp/ohp-config/internal/mock"
	"github.com/ohp/ohp-config/internal/utils"
	"github.com/ohp/ohp-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testHostAddress = "10.20.30.40"

// newTestConfigSvc creates a configurationService backed by a real random
// token generator.
func newTestConfigSvc(t *testing.T, env Environment, hostAddress string) ConfigurationService {
	t.Helper()
	return NewConfigurationService(env, hostAddress, utils.NewRandomTokenGenerator(utils.DefaultTokenLength), logger.Nop())
}

// ─────────────────────────────────────────────
// APIConfiguration
// ─────────────────────────────────────────────

func TestAPIConfiguration_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := mock.NewMockTokenGenerator(ctrl)
	tokens.EXPECT().Generate().Return("fixed-token")

	svc := NewConfigurationService(Environment{}, testHostAddress, tokens, logger.Nop())

	got := svc.APIConfiguration()

	token := "fixed-token"
	want := models.APIConfig{
		Host:             "0.0.0.0",
		Port:             5000,
		DebugMode:        false,
		AccessWithoutKey: true,
		AccessKey:        &token,
		ClientWhiteList: models.ClientWhiteList{
			Enabled: false,
			IPs:     []string{"127.0.0.1", "10.0.0.1", "192.168.1.1"},
		},
		AccessLog: models.AccessLog{
			Enabled:  false,
			Filename: "ohp_api_access.log",
		},
		Database:                  "mongodb://127.0.0.1:27017/",
		DatabaseConnectionTimeout: 2000,
		DatabaseName:              "ohp_events",
	}
	assert.Equal(t, want, got)
}

func TestAPIConfiguration_DockerDatabase(t *testing.T) {
	svc := newTestConfigSvc(t, Environment{DockerDatabase: true}, testHostAddress)

	got := svc.APIConfiguration()

	assert.Equal(t, "mongodb://mongodb:27017/", got.Database)
	assert.Contains(t, got.Database, "mongodb:27017")
}

func TestAPIConfiguration_LoopbackDatabase(t *testing.T) {
	svc := newTestConfigSvc(t, Environment{DockerDatabase: false}, testHostAddress)

	assert.Contains(t, svc.APIConfiguration().Database, "127.0.0.1")
}

// TestAPIConfiguration_FreshTokenPerCall verifies that the token generator
// is consulted on every call and never cached.
func TestAPIConfiguration_FreshTokenPerCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := mock.NewMockTokenGenerator(ctrl)
	gomock.InOrder(
		tokens.EXPECT().Generate().Return("first"),
		tokens.EXPECT().Generate().Return("second"),
	)

	svc := NewConfigurationService(Environment{}, testHostAddress, tokens, logger.Nop())

	first := svc.APIConfiguration()
	second := svc.APIConfiguration()

	require.NotNil(t, first.AccessKey)
	require.NotNil(t, second.AccessKey)
	assert.Equal(t, "first", *first.AccessKey)
	assert.Equal(t, "second", *second.AccessKey)
}

// TestAPIConfiguration_OnlyAccessKeyDiffers verifies that two calls agree on
// everything except the access key.
func TestAPIConfiguration_OnlyAccessKeyDiffers(t *testing.T) {
	svc := newTestConfigSvc(t, Environment{}, testHostAddress)

	first := svc.APIConfiguration()
	second := svc.APIConfiguration()

	require.NotNil(t, first.AccessKey)
	require.NotNil(t, second.AccessKey)
	assert.NotEqual(t, *first.AccessKey, *second.AccessKey)

	first.AccessKey, second.AccessKey = nil, nil
	assert.Equal(t, first, second)
}

func TestAPIConfiguration_NoAliasingBetweenCalls(t *testing.T) {
	svc := newTestConfigSvc(t, Environment{}, testHostAddress)

	first := svc.APIConfiguration()
	first.ClientWhiteList.IPs[0] = "6.6.6.6"

	second := svc.APIConfiguration()
	assert.Equal(t, "127.0.0.1", second.ClientWhiteList.IPs[0])
}

// ─────────────────────────────────────────────
// NetworkConfiguration
// ─────────────────────────────────────────────

func TestNetworkConfiguration_Defaults(t *testing.T) {
	svc := newTestConfigSvc(t, Environment{}, testHostAddress)

	got := svc.NetworkConfiguration()

	assert.False(t, got.StoreNetworkCapturedFiles)
	assert.Equal(t, testHostAddress, got.RealMachineIPAddress)
	assert.True(t, got.IgnoreRealMachineIPAddress)
	assert.True(t, got.IgnoreVirtualMachineIPAddresses)
	assert.Equal(t, "stockholm_server_1", got.RealMachineIdentifierName)
	assert.ElementsMatch(t, []string{testHostAddress, "127.0.0.1"}, got.IgnoreRealMachineIPAddresses)
	require.NotNil(t, got.IgnoreRealMachinePorts)
	assert.Empty(t, got.IgnoreRealMachinePorts)
	assert.Equal(t, 3600, got.SplitPcapFileTimeout)
}

// TestNetworkConfiguration_ExclusionSetAlwaysHasLoopbackAndHost checks the
// exclusion set for a range of host addresses.
func TestNetworkConfiguration_ExclusionSetAlwaysHasLoopbackAndHost(t *testing.T) {
	for _, host := range []string{"10.0.0.1", "127.0.1.1", "192.168.56.101", "127.0.0.1", ""} {
		t.Run("host="+host, func(t *testing.T) {
			got := newTestConfigSvc(t, Environment{}, host).NetworkConfiguration()

			assert.Contains(t, got.IgnoreRealMachineIPAddresses, "127.0.0.1")
			assert.Contains(t, got.IgnoreRealMachineIPAddresses, host)
			assert.True(t, got.IsIgnoredAddress(host))
		})
	}
}

// TestNetworkConfiguration_LoopbackHostDeduplicated verifies that a host
// resolving to loopback yields a single entry.
func TestNetworkConfiguration_LoopbackHostDeduplicated(t *testing.T) {
	got := newTestConfigSvc(t, Environment{}, "127.0.0.1").NetworkConfiguration()

	assert.Equal(t, []string{"127.0.0.1"}, got.IgnoreRealMachineIPAddresses)
}

func TestNetworkConfiguration_NoAliasingBetweenCalls(t *testing.T) {
	svc := newTestConfigSvc(t, Environment{}, testHostAddress)

	first := svc.NetworkConfiguration()
	first.IgnoreRealMachineIPAddresses[0] = "6.6.6.6"
	first.IgnoreRealMachinePorts = append(first.IgnoreRealMachinePorts, 22)

	second := svc.NetworkConfiguration()
	assert.ElementsMatch(t, []string{testHostAddress, "127.0.0.1"}, second.IgnoreRealMachineIPAddresses)
	assert.Empty(t, second.IgnoreRealMachinePorts)
}

// ─────────────────────────────────────────────
// DockerConfiguration
// ─────────────────────────────────────────────

func TestDockerConfiguration_Defaults(t *testing.T) {
	got := newTestConfigSvc(t, Environment{}, testHostAddress).DockerConfiguration()

	assert.Equal(t, 0.5, got.VirtualMachineStorageLimit)
	assert.Equal(t, utils.Hours(-1), got.VirtualMachineContainerResetFactoryTimeSeconds)
	assert.Negative(t, got.VirtualMachineContainerResetFactoryTimeSeconds)
	assert.True(t, got.ResetDisabled())
}

// ─────────────────────────────────────────────
// UserConfiguration
// ─────────────────────────────────────────────

func TestUserConfiguration_Defaults(t *testing.T) {
	got := newTestConfigSvc(t, Environment{}, testHostAddress).UserConfiguration()

	assert.Equal(t, models.UserConfig{
		Language:               "en",
		EventsLogFile:          "tmp/ohp.log",
		DefaultSelectedModules: "all",
		DefaultExcludedModules: nil,
	}, got)
	assert.True(t, got.SelectsAllModules())
}

func TestUserConfiguration_Idempotent(t *testing.T) {
	svc := newTestConfigSvc(t, Environment{}, testHostAddress)

	assert.Equal(t, svc.UserConfiguration(), svc.UserConfiguration())
}

// ─────────────────────────────────────────────
// Configuration
// ─────────────────────────────────────────────

// TestConfiguration_GeneratesOneToken verifies that the aggregate document
// asks for exactly one token.
func TestConfiguration_GeneratesOneToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := mock.NewMockTokenGenerator(ctrl)
	tokens.EXPECT().Generate().Return("aggregate-token").Times(1)

	svc := NewConfigurationService(Environment{DockerDatabase: true}, testHostAddress, tokens, logger.Nop())

	got := svc.Configuration()

	require.NotNil(t, got.API.AccessKey)
	assert.Equal(t, "aggregate-token", *got.API.AccessKey)
	assert.Equal(t, "mongodb://mongodb:27017/", got.API.Database)
	assert.Equal(t, testHostAddress, got.Network.RealMachineIPAddress)
	assert.True(t, got.Docker.ResetDisabled())
	assert.Equal(t, "en", got.User.Language)
}

// ─────────────────────────────────────────────
// Serialization round trip
// ─────────────────────────────────────────────

func TestConfiguration_RoundTrip(t *testing.T) {
	svc := newTestConfigSvc(t, Environment{}, testHostAddress)

	for _, format := range []string{encoding.JSON, encoding.YAML} {
		t.Run(format, func(t *testing.T) {
			documents := []struct {
				name string
				in   any
				out  any
			}{
				{"api", svc.APIConfiguration(), &models.APIConfig{}},
				{"network", svc.NetworkConfiguration(), &models.NetworkConfig{}},
				{"docker", svc.DockerConfiguration(), &models.DockerConfig{}},
				{"user", svc.UserConfiguration(), &models.UserConfig{}},
				{"all", svc.Configuration(), &models.Configuration{}},
			}

			for _, doc := range documents {
				var buf bytes.Buffer
				require.NoError(t, encoding.Encode(&buf, format, doc.in), doc.name)
				require.NoError(t, encoding.Decode(&buf, format, doc.out), doc.name)

				assert.Equal(t, doc.in, derefDocument(doc.out), doc.name)
			}
		})
	}
}

func derefDocument(v any) any {
	switch d := v.(type) {
	case *models.APIConfig:
		return *d
	case *models.NetworkConfig:
		return *d
	case *models.DockerConfig:
		return *d
	case *models.UserConfig:
		return *d
	case *models.Configuration:
		return *d
	default:
		return v
	}
}

// ─────────────────────────────────────────────
// NewServices
// ─────────────────────────────────────────────

func TestNewServices(t *testing.T) {
	services := NewServices(Environment{}, testHostAddress, utils.NewRandomTokenGenerator(0), logger.Nop())

	require.NotNil(t, services)
	require.NotNil(t, services.ConfigurationService)
	assert.Equal(t, testHostAddress, services.ConfigurationService.NetworkConfiguration().RealMachineIPAddress)
}
