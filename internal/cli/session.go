package cli

import (
	"context"
	"fmt"

	"github.com/kbukum/httpkit/config"
	"github.com/kbukum/httpkit/httpclient"
	"github.com/kbukum/httpkit/httpclient/rest"
	"github.com/kbukum/httpkit/logger"
	"github.com/kbukum/httpkit/observability"
)

const defaultLogLevel = "warn"

// session is the per-invocation state: loaded config, logger, adapter and
// telemetry.
type session struct {
	cfg      config.ServiceConfig
	log      *logger.Logger
	adapter  *httpclient.Adapter
	reqOpts  []httpclient.RequestOption
	shutdown observability.ShutdownFunc
}

func (a *App) openSession(ctx context.Context) (*session, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, withExitCode(ExitConfigError, err)
	}

	log := logger.NewWithWriter(&cfg.Logging, cfg.Name, a.errOut)

	shutdown, err := observability.Setup(ctx, cfg.Observability)
	if err != nil {
		return nil, withExitCode(ExitConfigError, fmt.Errorf("observability: %w", err))
	}

	adapterOpts := []httpclient.Option{httpclient.WithLogger(log.WithComponent("httpclient"))}
	if cfg.Observability.Enabled {
		metrics, err := observability.NewHTTPMetrics(observability.Meter(observability.InstrumentationName))
		if err != nil {
			_ = shutdown(ctx)
			return nil, fmt.Errorf("observability: %w", err)
		}
		adapterOpts = append(adapterOpts, httpclient.WithMetrics(metrics))
	}

	adapter, err := httpclient.New(cfg.HTTP, adapterOpts...)
	if err != nil {
		_ = shutdown(ctx)
		return nil, withExitCode(ExitConfigError, err)
	}

	s := &session{
		cfg:      cfg,
		log:      log,
		adapter:  adapter,
		shutdown: shutdown,
	}
	if a.opts.referer != "" {
		s.reqOpts = append(s.reqOpts, httpclient.WithReferer(a.opts.referer))
	}
	if a.opts.cookieJar {
		s.reqOpts = append(s.reqOpts, httpclient.WithCookies(httpclient.NewCookieJar()))
	}
	return s, nil
}

// loadConfig reads the config file and environment, then applies the
// command-line overrides.
func (a *App) loadConfig() (config.ServiceConfig, error) {
	var cfg config.ServiceConfig
	var loadOpts []config.LoaderOption
	if a.opts.configFile != "" {
		loadOpts = append(loadOpts, config.WithConfigFile(a.opts.configFile))
	}
	if err := config.LoadConfig(serviceName, &cfg, loadOpts...); err != nil {
		return cfg, err
	}

	if cfg.Name == "" {
		cfg.Name = serviceName
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
	if a.opts.logLevel != "" {
		cfg.Logging.Level = a.opts.logLevel
	}
	if a.opts.timeout > 0 {
		cfg.HTTP.Timeout = a.opts.timeout
	}
	if a.opts.encoding != "" {
		cfg.HTTP.Encoding = a.opts.encoding
	}
	cfg.Logging.NoColor = cfg.Logging.NoColor || a.opts.noColor

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (s *session) client(url string) *rest.Client {
	return rest.NewFromAdapter(url, s.adapter)
}

func (s *session) close(ctx context.Context) {
	if err := s.shutdown(ctx); err != nil {
		s.log.WithError(err).Warn("telemetry shutdown failed")
	}
	_ = s.adapter.Close(ctx)
}
