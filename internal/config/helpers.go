package config

import (
	"fleetwatch/pkg/backend"
)

// MustLoadBackend loads etc/backend.yaml from the project root and panics on
// error. It isolates the engine client config so tests and one-shot commands
// do not need the full server config.
func MustLoadBackend() *backend.Config {
	return backend.MustLoad()
}

// MustBuildBackendClient loads the default backend config and constructs a
// ready engine client from it.
func MustBuildBackendClient() *backend.Client {
	return MustLoadBackend().BuildClient()
}
