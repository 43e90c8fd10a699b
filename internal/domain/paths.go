package domain

// InstallPaths are the directories derived from the environment for one run.
type InstallPaths struct {
	Root       string
	BinDir     string
	ManDir     string
	BinaryPath string
}
