package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// ErrUnsupportedOS is returned when no reveal strategy exists for runtime.GOOS
var ErrUnsupportedOS = errors.New("unsupported operating system")

// commandRunner runs an external command; replaced in tests
var commandRunner = func(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// lookPath resolves an executable; replaced in tests
var lookPath = exec.LookPath

// OpenFileInManager reveals path in the system file manager. Files are
// highlighted where the OS supports it; directories are opened directly.
func OpenFileInManager(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	return revealPath(runtime.GOOS, absPath, info.IsDir())
}

func revealPath(goos, absPath string, isDir bool) error {
	switch goos {
	case OSDarwin:
		if isDir {
			return commandRunner(OpenCommand, absPath)
		}
		return commandRunner(OpenCommand, MacOSSelectFlag, absPath)
	case OSWindows:
		if isDir {
			return commandRunner(ExplorerCommand, absPath)
		}
		return commandRunner(ExplorerCommand, WindowsSelectParam+absPath)
	case OSLinux:
		dir := absPath
		if !isDir {
			dir = filepath.Dir(absPath)
		}
		return openDirectoryLinux(dir)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedOS, goos)
	}
}

// openDirectoryLinux opens dir on Linux.
// File selection is not standardized on Linux, so only the directory is shown.
func openDirectoryLinux(dir string) error {
	if err := commandRunner(XDGOpenCommand, dir); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := lookPath(fm); err == nil {
			return commandRunner(fm, dir)
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// ResolveAsset joins name onto the asset base directory and reports whether
// a regular file exists there
func ResolveAsset(baseDir, name string) (string, bool) {
	path := filepath.Join(baseDir, filepath.FromSlash(name))
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return path, false
	}
	return path, true
}
