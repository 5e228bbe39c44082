// Package config loads ServiceConfig from YAML files, .env files and the
// process environment using Viper.
//
// # Usage
//
//	var cfg config.ServiceConfig
//	if err := config.LoadConfig("httpkit", &cfg); err != nil {
//	    return err
//	}
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
// Without an explicit file, ./<name>.yml is tried first, then
// <user config dir>/<name>/config.yml. Only variables carrying the name's
// prefix override file values: HTTPKIT_HTTP_TIMEOUT sets http.timeout,
// HTTPKIT_LOGGING_LEVEL sets logging.level. A .env.<name> or .env file in
// the working directory is loaded first and never replaces variables that
// are already set.
package config
