package domain

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// ProfileFilePermissions is used when a shell profile has to be created (rw-r--r--)
	ProfileFilePermissions = 0o644
	// BinaryFilePermissions is the initial mode of the downloaded binary before
	// the owner-execute bit is added (rw-r--r--)
	BinaryFilePermissions = 0o644
	// OwnerExecute is the owner-execute permission bit
	OwnerExecute = 0o100
)

// Installer constants
const (
	// BinaryName is the file name of the fetched installer
	BinaryName = "foundryup"
	// DefaultBinaryURL is where the installer is fetched from
	DefaultBinaryURL = "https://raw.githubusercontent.com/foundry-rs/foundry/master/foundryup/foundryup"
	// FoundryDirName is the install root created under the config home
	FoundryDirName = ".foundry"
)

// Environment variable names
const (
	EnvXDGConfigHome = "XDG_CONFIG_HOME"
	EnvHome          = "HOME"
	EnvFoundryDir    = "FOUNDRY_DIR"
	EnvShell         = "SHELL"
	EnvZDotDir       = "ZDOTDIR"
	EnvPath          = "PATH"
	EnvOSType        = "OSTYPE"

	// EnvDebug enables debug logging when set to 1 or true
	EnvDebug = "FOUNDRYUP_INIT_DEBUG"
	// EnvConfig points at an optional YAML config file
	EnvConfig = "FOUNDRYUP_INIT_CONFIG"
)

// LibUSBPaths are the Homebrew locations checked on macOS (Intel, then Apple Silicon).
var LibUSBPaths = []string{
	"/usr/local/opt/libusb/lib/libusb-1.0.0.dylib",
	"/opt/homebrew/opt/libusb/lib/libusb-1.0.0.dylib",
}
