//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Runs the tests of every package.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Installs the datekit command.
func Install() error {
	mg.Deps(Test)
	return sh.Run("go", "install", "-ldflags", ldflags())
}

// Creates an executable for the given platform. Possible platforms are "rpi32", "osxintel", "osxarm" and "windows".
func Build(platform string) error {
	envMap, err := env(platform)
	if err != nil {
		return err
	}
	return sh.RunWith(envMap, "go", "build", "-ldflags", ldflags(), "-o", "datekit"+envMap["EXT"])
}

func ldflags() string {
	version, err := sh.Output("git", "describe", "--always", "--long", "--dirty")
	if err != nil {
		version = "unknown"
	}
	return "-X main.version=" + version
}

func env(platform string) (map[string]string, error) {
	switch platform {
	case "rpi32":
		return map[string]string{
			"GOOS":   "linux",
			"GOARCH": "arm",
			"GOARM":  "7",
		}, nil
	case "osxintel":
		return map[string]string{
			"GOOS":   "darwin",
			"GOARCH": "amd64",
		}, nil
	case "osxarm":
		return map[string]string{
			"GOOS":   "darwin",
			"GOARCH": "arm64",
		}, nil
	case "windows":
		return map[string]string{
			"GOOS":   "windows",
			"GOARCH": "amd64",
			"EXT":    ".exe",
		}, nil
	}

	return nil, fmt.Errorf("Platform '%s' not supported", platform)
}
