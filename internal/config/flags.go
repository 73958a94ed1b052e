package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a bridge address in format [host]:[port]
//	-c/-config json file path with configs
//	-store device store DSN
//	-target chat that receives sent files ("me" by default)
//	-wa-log-level automation library log level
//	-max-file-size send-file payload bound in bytes (0 = unbounded)
//	-console-log console stream file of the windowed shape
//	-width / -height initial window size
//	-platform platform name for window lifecycle conventions
//	-request-timeout bridge request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var bridgeAddress NetAddress
	var jsonConfigPath string
	var storeDSN string
	var target string
	var waLogLevel string
	var maxFileSize int64
	var consoleLog string
	var width, height int
	var platform string
	var requestTimeout time.Duration

	flag.Var(&bridgeAddress, "a", "Bridge net address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&storeDSN, "store", "", "Device store DSN")
	flag.StringVar(&target, "target", "", "Chat receiving sent files")
	flag.StringVar(&waLogLevel, "wa-log-level", "", "Automation library log level")
	flag.Int64Var(&maxFileSize, "max-file-size", 0, "Max send-file payload in bytes")
	flag.StringVar(&consoleLog, "console-log", "", "Console stream file (windowed shape)")
	flag.IntVar(&width, "width", 0, "Initial window width")
	flag.IntVar(&height, "height", 0, "Initial window height")
	flag.StringVar(&platform, "platform", "", "Platform name for window conventions")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Bridge request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			ConsoleLogPath: consoleLog,
		},
		Automation: Automation{
			StoreDSN: storeDSN,
			Target:   target,
			LogLevel: waLogLevel,
		},
		Bridge: Bridge{
			HTTPAddress: bridgeAddress.String(),
			MaxFileSize: maxFileSize,
		},
		Window: Window{
			Width:    width,
			Height:   height,
			Platform: platform,
		},
		Adapter: Adapter{
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
