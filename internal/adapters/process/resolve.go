package process

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// resolveExecutable maps the configured executable to a path that exec can
// start. Absolute paths and paths containing a separator are used as is, a
// file in the working directory wins over PATH, and anything else falls
// through unchanged so that Start reports a spawn error.
func resolveExecutable(name, dir string, env []string) string {
	if filepath.IsAbs(name) || strings.ContainsRune(name, os.PathSeparator) || strings.ContainsRune(name, '/') {
		return name
	}

	local := filepath.Join(dir, name)
	if dir == "" {
		local = "." + string(os.PathSeparator) + name
	}
	if err := findExecutable(local); err == nil {
		return local
	}

	if lp, err := lookPath(name, env); err == nil {
		return lp
	}
	return name
}

// lookPath searches for an executable named file in the PATH of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
