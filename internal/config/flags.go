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

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-region DynamoDB region
//	-dynamo-endpoint DynamoDB base endpoint override
//	-clients-table / -passwords-table table names
//	-login-index / -client-id-index secondary index names
//	-master-key crypto master key
//	-key-salt crypto key derivation salt
//	-read-timeout / -write-timeout / -shutdown-timeout server timeouts
func ParseFlags() *StructuredConfig {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) *StructuredConfig {
	fs := flag.NewFlagSet("go-pass-vault", flag.ExitOnError)

	var serverAddress NetAddress
	var jsonConfigPath string
	var region string
	var dynamoEndpoint string
	var accessKeyID string
	var secretAccessKey string
	var clientsTable string
	var passwordsTable string
	var loginIndex string
	var clientIDIndex string
	var masterKey string
	var keySalt string
	var readTimeout time.Duration
	var writeTimeout time.Duration
	var shutdownTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&region, "region", "", "DynamoDB region")
	fs.StringVar(&dynamoEndpoint, "dynamo-endpoint", "", "DynamoDB base endpoint override")
	fs.StringVar(&accessKeyID, "access-key-id", "", "DynamoDB static access key id")
	fs.StringVar(&secretAccessKey, "secret-access-key", "", "DynamoDB static secret access key")
	fs.StringVar(&clientsTable, "clients-table", "", "Clients table name")
	fs.StringVar(&passwordsTable, "passwords-table", "", "Passwords table name")
	fs.StringVar(&loginIndex, "login-index", "", "Clients login secondary index name")
	fs.StringVar(&clientIDIndex, "client-id-index", "", "Passwords clientId secondary index name")
	fs.StringVar(&masterKey, "master-key", "", "Crypto master key")
	fs.StringVar(&keySalt, "key-salt", "", "Crypto key derivation salt")
	fs.DurationVar(&readTimeout, "read-timeout", 0, "Server read timeout (e.g., 30s)")
	fs.DurationVar(&writeTimeout, "write-timeout", 0, "Server write timeout (e.g., 30s)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")

	_ = fs.Parse(args) // ExitOnError: Parse never returns a usable error

	return &StructuredConfig{
		Server: Server{
			Address:         serverAddress.String(),
			ReadTimeout:     readTimeout,
			WriteTimeout:    writeTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Storage: Storage{
			Dynamo: Dynamo{
				Region:          region,
				BaseEndpoint:    dynamoEndpoint,
				AccessKeyID:     accessKeyID,
				SecretAccessKey: secretAccessKey,
				ClientsTable:    clientsTable,
				PasswordsTable:  passwordsTable,
				LoginIndex:      loginIndex,
				ClientIDIndex:   clientIDIndex,
			},
		},
		Crypto: Crypto{
			MasterKey: masterKey,
			KeySalt:   keySalt,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that the
// merge step treats the flag as unset.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("invalid host: must be an IP address or `localhost`")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
