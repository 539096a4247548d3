package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

// ParseFlags parses all configuration flags of the process command line.
//
// Flags:
//
//	-a mock node HTTP listen address in format [host]:[port]
//	-grpc-address mock node gRPC listen address in format [host]:[port]
//	-demo-blocks number of blocks of the mock node demo chain
//	-node-address node HTTP address used by the client
//	-node-grpc-address node gRPC address used by the client
//	-transport client RPC transport (http or grpc)
//	-api-token bearer token sent to the node
//	-d database DSN
//	-db-driver store backend (sqlite3, pgx or memory)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-interval state sync period (e.g., "5m")
//	-metrics-address prometheus listen address
//	-log-file client log file path
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

// parseFlags registers the flags on fs and parses args.
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var demoBlocks uint
	var nodeAddress, nodeGRPCAddress string
	var transport, apiToken string
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout, syncInterval time.Duration
	var metricsAddress string
	var logFile string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.UintVar(&demoBlocks, "demo-blocks", 0, "Number of demo chain blocks")
	fs.StringVar(&nodeAddress, "node-address", "", "Node HTTP address")
	fs.StringVar(&nodeGRPCAddress, "node-grpc-address", "", "Node gRPC address")
	fs.StringVar(&transport, "transport", "", "RPC transport (http or grpc)")
	fs.StringVar(&apiToken, "api-token", "", "Node API token")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Store backend (sqlite3, pgx or memory)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "State sync interval (e.g., 5m)")
	fs.StringVar(&metricsAddress, "metrics-address", "", "Prometheus listen address")
	fs.StringVar(&logFile, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			DemoBlocks:     uint32(demoBlocks),
		},
		Auth: Auth{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Adapter: Adapter{
			HTTPAddress:    nodeAddress,
			GRPCAddress:    nodeGRPCAddress,
			Transport:      transport,
			RequestTimeout: requestTimeout,
			APIToken:       apiToken,
		},
		Workers: Workers{
			SyncInterval:   syncInterval,
			MetricsAddress: metricsAddress,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
