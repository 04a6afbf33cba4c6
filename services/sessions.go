package services

import (
	"fmt"
	"log"

	"legalscholer_app_go/config"
	"legalscholer_app_go/services/i18n"
	"legalscholer_app_go/services/simulator"
)

// Sessions holds the interaction sessions of open landing pages
var Sessions *simulator.Registry

// InitSessions creates the session registry using the simulator settings of
// cfg. The simulator config of every language is validated up front, so a bad
// SIMULATOR_TIME_UNIT stops the server at startup instead of failing each page.
func InitSessions(cfg *config.Config) (*simulator.Registry, error) {
	for _, lang := range i18n.Languages {
		if err := SimulatorConfig(lang, cfg.SimulatorTimeUnit).Validate(); err != nil {
			return nil, fmt.Errorf("simulator config for %q (time unit %s): %w", lang, cfg.SimulatorTimeUnit, err)
		}
	}

	Sessions = simulator.NewRegistry(simulator.RegistryConfig{
		TTL: cfg.SessionTTL,
		Factory: func(lang string) (*simulator.Session, error) {
			return simulator.New(SimulatorConfig(lang, cfg.SimulatorTimeUnit))
		},
	})
	log.Printf("[INFO] Session registry initialized (ttl %s, time unit %s)", cfg.SessionTTL, cfg.SimulatorTimeUnit)
	return Sessions, nil
}

// CleanupIdleSessions drops landing page sessions nobody polled within the TTL
func CleanupIdleSessions() {
	if Sessions == nil {
		return
	}
	if n := Sessions.CleanupIdle(); n > 0 {
		log.Printf("[INFO] Cleaned up %d idle sessions (%d live)", n, Sessions.Len())
	}
}

// LogTransitions writes flow transitions to the log
func LogTransitions(sessionID string, transitions []simulator.Transition) {
	for _, tr := range transitions {
		cause := "timer"
		if tr.Manual {
			cause = "user"
		}
		log.Printf("[DEBUG] session %s | %s: %s -> %s at %s (%s)", sessionID, tr.Flow, tr.From, tr.To, tr.At, cause)
	}
}
