package domain

// Options control a single install run after flags, config file and defaults are merged.
type Options struct {
	URL          string
	ModifyPath   bool
	RunInstaller bool
}

// DefaultOptions mirrors the behavior of the plain bootstrap script.
func DefaultOptions() Options {
	return Options{
		URL:          DefaultBinaryURL,
		ModifyPath:   true,
		RunInstaller: true,
	}
}

// Config is the optional YAML file. Unset fields keep their defaults.
type Config struct {
	URL          string `yaml:"url,omitempty"`
	ModifyPath   *bool  `yaml:"modify_path,omitempty"`
	RunInstaller *bool  `yaml:"run_installer,omitempty"`
}

// Apply overlays the non-empty config fields on opts.
func (c Config) Apply(opts Options) Options {
	if c.URL != "" {
		opts.URL = c.URL
	}
	if c.ModifyPath != nil {
		opts.ModifyPath = *c.ModifyPath
	}
	if c.RunInstaller != nil {
		opts.RunInstaller = *c.RunInstaller
	}
	return opts
}

// FetchResult describes the downloaded installer on disk.
type FetchResult struct {
	URL   string
	Path  string
	Bytes int64
}

// InstallResult aggregates the outcome of a completed run.
type InstallResult struct {
	Paths    InstallPaths
	Fetch    FetchResult
	Profile  ProfileUpdate
	Invoked  bool
	Warnings []string
}
