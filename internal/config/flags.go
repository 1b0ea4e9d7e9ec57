package config

import (
	"errors"
	"net"
	"time"

	"github.com/spf13/pflag"
)

// IPv4Address holds an IPv4 address given on the command line.
// It implements the pflag.Value interface.
type IPv4Address struct {
	IP net.IP
}

// Flags holds the values of the command-line flags registered by
// [RegisterFlags]. The values are read after the flag set is parsed.
type Flags struct {
	format         string
	logLevel       string
	logFile        string
	resolveTimeout time.Duration
	hostAddress    IPv4Address
	dockerDatabase bool
	jsonConfigPath string
}

// RegisterFlags registers all configuration flags on fs.
//
// Flags:
//
//	-f/--format output format, json or yaml
//	--log-level log level (debug, info, warn, error)
//	--log-file rotated log file path
//	--resolve-timeout hostname lookup timeout (e.g., "5s")
//	--host-address IPv4 address used instead of resolving the hostname
//	--docker-database use the Docker-network MongoDB host
//	-c/--config json file path with configs
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := new(Flags)

	fs.StringVarP(&f.format, "format", "f", "", "Output format: json or yaml")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&f.logFile, "log-file", "", "Rotated log file path")
	fs.DurationVar(&f.resolveTimeout, "resolve-timeout", 0, "Hostname lookup timeout (e.g., 5s)")
	fs.Var(&f.hostAddress, "host-address", "IPv4 address of the real machine, skips hostname resolution")
	fs.BoolVar(&f.dockerDatabase, "docker-database", false, "Use the Docker-network MongoDB host (same as MONGODB_DOCKER_ENV=true)")
	fs.StringVarP(&f.jsonConfigPath, "config", "c", "", "JSON config file path")

	return f
}

// config converts the parsed flag values into a configuration layer.
// Unset flags stay zero so they do not override earlier layers.
func (f *Flags) config() *StructuredConfig {
	cfg := &StructuredConfig{
		Resolver: Resolver{
			Timeout:     f.resolveTimeout,
			HostAddress: f.hostAddress.String(),
		},
		Log: Log{
			Level: f.logLevel,
			File:  f.logFile,
		},
		Output: Output{
			Format: f.format,
		},
		JSONFilePath: f.jsonConfigPath,
	}

	if f.dockerDatabase {
		cfg.Database.DockerEnv = dockerEnvEnabled
	}

	return cfg
}

// String returns the dotted form of the address, or "" when unset.
func (a *IPv4Address) String() string {
	if a.IP == nil {
		return ""
	}

	return a.IP.String()
}

// Set parses the input string as an IPv4 address and returns an error if
// it is not one.
func (a *IPv4Address) Set(s string) error {
	ip := net.ParseIP(s)
	if ip == nil {
		return errors.New("incorrect IP-address provided")
	}

	v4 := ip.To4()
	if v4 == nil {
		return errors.New("need an IPv4 address")
	}

	a.IP = v4
	return nil
}

// Type names the flag value type in help output.
func (a *IPv4Address) Type() string {
	return "ipv4"
}
