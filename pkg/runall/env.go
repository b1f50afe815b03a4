package runall

import (
	"os"
	"strings"
)

// Env is a flat snapshot of environment variables. Parsing takes an
// explicit Env so tests can substitute a fixed mapping for the real
// process environment.
type Env map[string]string

// Snapshot reads the current process environment once.
func Snapshot() Env {
	environ := os.Environ()
	env := make(Env, len(environ))
	for _, kv := range environ {
		if key, value, ok := strings.Cut(kv, "="); ok {
			env[key] = value
		}
	}
	return env
}

// Get returns the value for key, or "" when unset.
func (e Env) Get(key string) string {
	return e[key]
}

// Environment variables npm exposes to lifecycle scripts.
const (
	envPackageName  = "npm_package_name"
	envLogLevel     = "npm_config_loglevel"
	configVarPrefix = "npm_package_config_"
)

// seedPackageConfig builds the initial package-config mapping from the
// npm_package_config_* variables of the enclosing package. Without an
// enclosing package name there is nothing to scope the variables to,
// so the scan is skipped entirely.
func seedPackageConfig(env Env) map[string]map[string]string {
	config := make(map[string]map[string]string)

	packageName := env.Get(envPackageName)
	if packageName == "" {
		return config
	}

	for key, value := range env {
		variable := strings.TrimPrefix(key, configVarPrefix)
		if variable == key || variable == "" {
			continue
		}
		overwriteConfig(config, packageName, variable, value)
	}
	return config
}

// overwriteConfig writes config[packageName][variable] = value,
// creating the package record on first write. Repeated writes to the
// same pair are last-write-wins.
func overwriteConfig(config map[string]map[string]string, packageName, variable, value string) {
	vars, ok := config[packageName]
	if !ok {
		vars = make(map[string]string)
		config[packageName] = vars
	}
	vars[variable] = value
}
