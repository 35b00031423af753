package nlskit

// Config provides environment-based configuration for the resolver.
// Request fields are defaults for processes that resolve once at startup;
// callers serving multiple users build Requests directly instead.
type Config struct {
	UserLocale      string `env:"NLS_USER_LOCALE" envDefault:"en"`
	OSLocale        string `env:"NLS_OS_LOCALE" envDefault:"en"`
	UserDataPath    string `env:"NLS_USER_DATA_PATH" envDefault:""`
	NLSMetadataPath string `env:"NLS_METADATA_PATH" envDefault:""`
	CommitID        string `env:"NLS_COMMIT" envDefault:""`
	Product         string `env:"NLS_PRODUCT" envDefault:"vscode"`
	DevMode         bool   `env:"NLS_DEV_MODE" envDefault:"false"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		UserLocale: "en",
		OSLocale:   "en",
		Product:    DefaultProduct,
	}
}

// Request builds the resolution request described by the configuration.
func (c Config) Request() Request {
	return Request{
		UserLocale:      c.UserLocale,
		OSLocale:        c.OSLocale,
		UserDataPath:    c.UserDataPath,
		NLSMetadataPath: c.NLSMetadataPath,
		CommitID:        c.CommitID,
	}
}

// NewFromConfig creates a Resolver from configuration.
// User-provided options override config values.
func NewFromConfig(cfg Config, opts ...Option) *Resolver {
	configOpts := make([]Option, 0, len(opts)+2)

	if cfg.Product != "" {
		configOpts = append(configOpts, WithProduct(cfg.Product))
	}
	if cfg.DevMode {
		configOpts = append(configOpts, WithDevMode(true))
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
