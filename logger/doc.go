// Package logger provides structured logging for httpkit using zerolog.
//
// It supports JSON and console output, level configuration, component-scoped
// loggers, and the Sink interface through which the errors package reports
// catalog-driven service errors.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("httpclient")
//	log.Info("request sent", logger.Fields("url", u, "status", 200))
package logger
