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

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-a feed server address in format [host]:[port]
//	-u feed base URL used by the client
//	-resource paginated resource path (e.g. "character")
//	-request-timeout client request timeout (e.g., "10s")
//	-server-timeout feed server request timeout (e.g., "30s")
//	-page-size records per page served by the feed server
//	-dataset JSON dataset file served by the feed server
//	-d journal database DSN
//	-c/-config json file path with configs
//	-title header text
//	-description description text
//	-decorate-every decorate appended pages divisible by N
//	-switch-action action id bound to the description switch
//	-infinite-scroll load more when the last row is selected
//	-metrics-address client metrics endpoint in format [host]:[port]
func ParseFlags() *StructuredConfig {
	cfg, _ := parseFlagSet(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:])
	return cfg
}

func parseFlags(args []string) (*StructuredConfig, error) {
	return parseFlagSet(flag.NewFlagSet("config", flag.ContinueOnError), args)
}

func parseFlagSet(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress, metricsAddress NetAddress
	var feedURL, resource string
	var requestTimeout, serverTimeout time.Duration
	var pageSize int
	var datasetPath string
	var databaseDSN string
	var jsonConfigPath string
	var title, description string
	var decorateEvery int
	var switchAction string
	var infiniteScroll bool

	fs.Var(&serverAddress, "a", "Feed server net address host:port")
	fs.StringVar(&feedURL, "u", "", "Feed base URL")
	fs.StringVar(&resource, "resource", "", "Paginated resource path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Client request timeout (e.g., 10s)")
	fs.DurationVar(&serverTimeout, "server-timeout", 0, "Feed server request timeout (e.g., 30s)")
	fs.IntVar(&pageSize, "page-size", 0, "Records per page")
	fs.StringVar(&datasetPath, "dataset", "", "JSON dataset file")
	fs.StringVar(&databaseDSN, "d", "", "Journal database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&title, "title", "", "Header text")
	fs.StringVar(&description, "description", "", "Description text")
	fs.IntVar(&decorateEvery, "decorate-every", 0, "Decorate appended pages divisible by N, negative disables")
	fs.StringVar(&switchAction, "switch-action", "", "Action id of the description switch")
	fs.BoolVar(&infiniteScroll, "infinite-scroll", false, "Load more when the last row is selected")
	fs.Var(&metricsAddress, "metrics-address", "Metrics endpoint host:port")

	if err := fs.Parse(args); err != nil {
		return &StructuredConfig{}, err
	}

	return &StructuredConfig{
		App: App{
			Title:          title,
			Description:    description,
			DecorateEvery:  decorateEvery,
			SwitchAction:   switchAction,
			InfiniteScroll: infiniteScroll,
			MetricsAddress: metricsAddress.String(),
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
			PageSize:       pageSize,
			DatasetPath:    datasetPath,
		},
		Adapter: Adapter{
			HTTPAddress:    feedURL,
			Resource:       resource,
			RequestTimeout: requestTimeout,
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
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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
		return errors.New("port number must be in range 1..65535")
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
