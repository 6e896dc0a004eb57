// Package file loads and saves the Trolly configuration as a TOML
// file in the config directory (~/.trolly by default).
package file
