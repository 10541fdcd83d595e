package configs

import (
	"fmt"
	"strings"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Store selects where campaign metrics live. The memory driver keeps
// everything in process and is meant for demos and local development.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
	// Seed fills the selected store with demo campaigns and metrics on
	// startup, whichever driver is in use.
	Seed bool `env:"SEED" envDefault:"false"`
}

// Validate rejects unknown drivers.
func (c Store) Validate() error {
	switch strings.ToLower(c.Driver) {
	case StoreDriverPostgres, StoreDriverMemory:
		return nil
	default:
		return fmt.Errorf("unknown store driver %q", c.Driver)
	}
}

// IsMemory reports whether the in-process store is selected.
func (c Store) IsMemory() bool {
	return strings.EqualFold(c.Driver, StoreDriverMemory)
}
