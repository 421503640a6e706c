package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-account-id dbt Cloud account id
//	-access-url dbt Cloud base URL
//	-token dbt Cloud service token (or the ${DBT_CLOUD_TOKEN} sentinel)
//	-project-id dbt Cloud project id
//	-environment-id dbt Cloud environment id
//	-component component kind: observability or orchestration
//	-a introspection server address in format [host]:[port]
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-poll-interval sensor poll interval (e.g., "30s", "2m")
//	-c/-config yaml component file path
func ParseFlags() *Config {
	var accountID int
	var accessURL string
	var token string
	var projectID int
	var environmentID int
	var component string
	var serverAddress string
	var requestTimeout time.Duration
	var pollInterval time.Duration
	var yamlConfigPath string

	flag.IntVar(&accountID, "account-id", 0, "dbt Cloud account id")
	flag.StringVar(&accessURL, "access-url", "", "dbt Cloud base URL")
	flag.StringVar(&token, "token", "", "dbt Cloud service token")
	flag.IntVar(&projectID, "project-id", 0, "dbt Cloud project id")
	flag.IntVar(&environmentID, "environment-id", 0, "dbt Cloud environment id")
	flag.StringVar(&component, "component", "", "Component kind: observability or orchestration")
	flag.StringVar(&serverAddress, "a", "", "Introspection server address host:port")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "Sensor poll interval (e.g., 30s, 2m)")
	flag.StringVar(&yamlConfigPath, "c", "", "YAML component file path")
	flag.StringVar(&yamlConfigPath, "config", "", "YAML component file path (alias)")

	flag.Parse()

	return &Config{
		DBTCloud: DBTCloud{
			AccountID:     accountID,
			AccessURL:     accessURL,
			Token:         token,
			ProjectID:     projectID,
			EnvironmentID: environmentID,
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			PollInterval: pollInterval,
		},
		Component:    component,
		YAMLFilePath: yamlConfigPath,
	}
}
