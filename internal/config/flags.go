package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"time"
)

// NetAddress is a host:port flag value. Host may be empty, "localhost" or an
// IP literal; IPv6 literals use brackets.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the command line into a partial config.
//
//	-a                server address, [host]:port
//	-d                directory holding the YAML collections
//	-dsn, -driver     database DSN and driver (sqlite3 or pgx)
//	-c, -config       JSON config file
//	-request-timeout  per-request timeout, e.g. 30s
//	-argon-time, -argon-memory, -argon-threads  Argon2id parameters
func ParseFlags() *StructuredConfig {
	var (
		serverAddress  NetAddress
		cfg            StructuredConfig
		argonTime      uint
		argonMemory    uint
		argonThreads   uint
		requestTimeout time.Duration
	)

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&cfg.Storage.Dir, "d", "", "Store directory")
	flag.StringVar(&cfg.Storage.DB.DSN, "dsn", "", "Database DSN")
	flag.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Database driver (sqlite3, pgx)")
	flag.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	flag.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.UintVar(&argonTime, "argon-time", 0, "Argon2id passes")
	flag.UintVar(&argonMemory, "argon-memory", 0, "Argon2id memory in KiB")
	flag.UintVar(&argonThreads, "argon-threads", 0, "Argon2id lanes")

	flag.Parse()

	cfg.Server = Server{HTTPAddress: serverAddress.String(), RequestTimeout: requestTimeout}
	cfg.Crypto = Crypto{
		ArgonTime:    uint32(argonTime),
		ArgonMemory:  uint32(argonMemory),
		ArgonThreads: uint8(argonThreads),
	}
	return &cfg
}

// String returns host:port, or "" when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
