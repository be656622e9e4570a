package config

import "os"

// VaultPath returns the vault root from the VAULT_PATH env var,
// falling back to the current working directory.
func VaultPath() string {
	if env := os.Getenv("VAULT_PATH"); env != "" {
		return env
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
