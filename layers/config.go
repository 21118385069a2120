package layers

import (
	"github.com/buildpacks/libbuildpack/metadata"
)

// Config is the content of a layer's <name>.toml sidecar. The flags tell the lifecycle
// whether the layer is visible during build, restored from cache, and present at launch.
type Config struct {
	Build    bool
	Cache    bool
	Launch   bool
	Metadata *metadata.Metadata
}

func NewConfig() *Config {
	return &Config{Metadata: metadata.New()}
}

type configFile struct {
	Build    bool                   `toml:"build"`
	Cache    bool                   `toml:"cache"`
	Launch   bool                   `toml:"launch"`
	Metadata map[string]interface{} `toml:"metadata,omitempty"`
}

func (c *Config) file() configFile {
	return configFile{
		Build:    c.Build,
		Cache:    c.Cache,
		Launch:   c.Launch,
		Metadata: c.Metadata.Map(),
	}
}

func (f configFile) config() *Config {
	return &Config{
		Build:    f.Build,
		Cache:    f.Cache,
		Launch:   f.Launch,
		Metadata: metadata.FromMap(f.Metadata),
	}
}
