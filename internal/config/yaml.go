package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// YAMLConfig is the on-disk shape of the declarative component file. It
// mirrors [Config] with yaml tags so a component can be described the way
// the orchestration host declares it:
//
//	component: observability
//	dbt_cloud:
//	  account_id: 1
//	  project_id: 2
//	  environment_id: 3
//	  token: ${DBT_CLOUD_TOKEN}
type YAMLConfig struct {
	DBTCloud struct {
		AccountID     int    `yaml:"account_id"`
		AccessURL     string `yaml:"access_url"`
		Token         string `yaml:"token"`
		ProjectID     int    `yaml:"project_id"`
		EnvironmentID int    `yaml:"environment_id"`
	} `yaml:"dbt_cloud"`

	Server struct {
		HTTPAddress    string   `yaml:"http_address"`
		RequestTimeout Duration `yaml:"request_timeout"`
	} `yaml:"server"`

	Workers struct {
		PollInterval Duration `yaml:"poll_interval"`
	} `yaml:"workers"`

	Component string `yaml:"component"`
}

func parseYAML(yamlFilePath string) (*Config, error) {
	raw, err := os.ReadFile(yamlFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a yaml file: %w", err)
	}

	var yamlCfg YAMLConfig
	if err := yaml.Unmarshal(raw, &yamlCfg); err != nil {
		return nil, fmt.Errorf("error decoding yaml configs: %w", err)
	}

	cfg := &Config{
		DBTCloud: DBTCloud{
			AccountID:     yamlCfg.DBTCloud.AccountID,
			AccessURL:     yamlCfg.DBTCloud.AccessURL,
			Token:         yamlCfg.DBTCloud.Token,
			ProjectID:     yamlCfg.DBTCloud.ProjectID,
			EnvironmentID: yamlCfg.DBTCloud.EnvironmentID,
		},
		Server: Server{
			HTTPAddress:    yamlCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(yamlCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			PollInterval: time.Duration(yamlCfg.Workers.PollInterval),
		},
		Component:    yamlCfg.Component,
		YAMLFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports YAML unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond integers.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var n int64
	if err := value.Decode(&n); err == nil {
		*d = Duration(n)
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
