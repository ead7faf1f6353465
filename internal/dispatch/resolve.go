package dispatch

import (
	"os"
	"path/filepath"
	"strings"

	rnerrors "git.home.luguber.info/inful/rn/internal/errors"
)

const (
	sourceFlag   = "flag"
	sourceConfig = "config"
)

// resolved is a field value together with where it came from.
type resolved struct {
	value  string
	source string
}

// resolve picks the flag value when one was supplied and the stored default otherwise.
func resolve(flag *string, stored string) resolved {
	if flag != nil {
		return resolved{value: *flag, source: sourceFlag}
	}
	return resolved{value: stored, source: sourceConfig}
}

func resolveDirectory(flag *string, stored string) (resolved, error) {
	r := resolve(flag, stored)
	if r.value == "" {
		return r, rnerrors.DirectoryMissing()
	}
	return r, nil
}

func resolveBinary(flag *string, stored string) (resolved, error) {
	r := resolve(flag, stored)
	if r.value == "" {
		return r, rnerrors.BinaryMissing()
	}
	return r, nil
}

// resolveArguments never fails: with nothing supplied or stored the binary runs without an argument.
func resolveArguments(flag *string, stored string) resolved {
	return resolve(flag, stored)
}

// executablePath turns a configured binary into a path exec resolves against
// the child's working directory. A bare name would otherwise be looked up in PATH.
func executablePath(binary string) string {
	if filepath.IsAbs(binary) || strings.ContainsRune(binary, '/') || strings.ContainsRune(binary, os.PathSeparator) {
		return binary
	}
	return "." + string(os.PathSeparator) + binary
}

// underRoot places a relative directory under the configuration root.
func underRoot(root, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}
