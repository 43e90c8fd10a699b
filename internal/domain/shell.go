package domain

// ShellName enumerates supported shells.
type ShellName string

const (
	ShellUnsupported ShellName = "unsupported"
	ShellZsh         ShellName = "zsh"
	ShellBash        ShellName = "bash"
	ShellFish        ShellName = "fish"
	ShellAsh         ShellName = "ash"
)

// ShellProfile is the shell startup file selected for a PATH change.
// The zero value, like UnsupportedProfile, carries no path.
type ShellProfile struct {
	shell ShellName
	path  string
}

// NewShellProfile pairs a supported shell with its profile file.
func NewShellProfile(shell ShellName, path string) ShellProfile {
	return ShellProfile{shell: shell, path: path}
}

// UnsupportedProfile is returned when the shell could not be classified.
func UnsupportedProfile() ShellProfile {
	return ShellProfile{shell: ShellUnsupported}
}

// Shell returns the detected shell.
func (p ShellProfile) Shell() ShellName {
	if p.shell == "" {
		return ShellUnsupported
	}
	return p.shell
}

// Path returns the profile file and whether the shell is supported.
func (p ShellProfile) Path() (string, bool) {
	if !p.Supported() {
		return "", false
	}
	return p.path, true
}

// Supported reports whether a profile file was selected.
func (p ShellProfile) Supported() bool {
	return p.shell != "" && p.shell != ShellUnsupported && p.path != ""
}

// ProfileUpdate describes what the PATH installer did to a profile.
type ProfileUpdate struct {
	Profile       ShellProfile
	Line          string
	AlreadyOnPath bool
	Appended      bool
	Skipped       bool
}
