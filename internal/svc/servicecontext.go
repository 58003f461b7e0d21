package svc

import (
	"fleetwatch/internal/config"
	"fleetwatch/pkg/backend"
	"fleetwatch/pkg/fleet"
	"fleetwatch/pkg/journal"
)

type ServiceContext struct {
	Config config.Config

	// Backend is the engine API client; Session is this console instance's
	// monitoring state built on top of it. The session lives exactly as long
	// as the process: nothing is persisted across restarts.
	Backend *backend.Client
	Session *fleet.Session

	// Journal records operator refreshes when JournalDir is configured.
	Journal *journal.Writer
}

func NewServiceContext(c config.Config) *ServiceContext {
	var client *backend.Client
	if c.Backend.Value != nil {
		client = c.Backend.Value.BuildClient()
	} else {
		// No backend section: fall back to the client defaults, which point
		// at a local engine.
		client = backend.NewClient()
	}

	svc := &ServiceContext{
		Config:  c,
		Backend: client,
		Session: fleet.NewSession(client),
	}
	if c.JournalDir != "" {
		svc.Journal = journal.NewWriter(c.JournalDir)
	}
	return svc
}
