package config

const (
	defaultPackDir    = "~/.local/share/prism/packs"
	defaultCatalogDir = "~/.local/share/prism/catalog"
	defaultLogDir     = "~/.local/share/prism/logs"
	defaultLogFormat  = "auto"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			// PackDir is left empty so normalize can prefer PRISM_PACK_DIR
			// before falling back to defaultPackDir.
			CatalogDir: defaultCatalogDir,
			LogDir:     defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
