package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress is a host:port pair. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a config layer. Unset flags leave zero values
// so lower layers can fill them.
//
// Flags:
//
//	-a               HTTP listen address host:port
//	-grpc-address    gRPC health endpoint address host:port
//	-f               users file path
//	-c, -config      JSON config file path
//	-request-timeout server request timeout (e.g. "10s")
//	-tariff          price per unit of travel time
//	-hash-cost       bcrypt cost for new passwords
//	-server-url      base URL used by the terminal client
//	-client-timeout  terminal client request timeout
//	-health-interval terminal client health probe interval
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress, grpcAddress NetAddress
		usersFile, jsonConfigPath  string
		requestTimeout             time.Duration
		tariff                     float64
		hashCost                   int
		serverURL                  string
		clientTimeout              time.Duration
		healthInterval             time.Duration
	)

	fs := flag.NewFlagSet("movisimple", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "HTTP net address host:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC net address host:port")
	fs.StringVar(&usersFile, "f", "", "Users file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout (e.g., 10s)")
	fs.Float64Var(&tariff, "tariff", 0, "Price per unit of travel time")
	fs.IntVar(&hashCost, "hash-cost", 0, "bcrypt cost for new passwords")
	fs.StringVar(&serverURL, "server-url", "", "API base URL for the terminal client")
	fs.DurationVar(&clientTimeout, "client-timeout", 0, "Client request timeout (e.g., 10s)")
	fs.DurationVar(&healthInterval, "health-interval", 0, "Client health probe interval (e.g., 30s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TariffPerUnit:    tariff,
			PasswordHashCost: hashCost,
		},
		Storage: Storage{
			Files: Files{UsersFile: usersFile},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: clientTimeout,
		},
		Workers: Workers{
			HealthInterval: healthInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or "" when the address is unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be empty, "localhost" or an IP.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
