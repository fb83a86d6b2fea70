// Package prefs supplies the initial values of campaign-wide flags.
package prefs

import "github.com/louisbranch/tabletop/internal/platform/config"

// Store provides initial flag values for new registries.
type Store interface {
	InitOwnerPermissions() bool
	InitLockMovement() bool
}

// Static is a fixed set of preferences.
type Static struct {
	OwnerPermissions bool `env:"INIT_OWNER_PERMISSIONS" envDefault:"false"`
	LockMovement     bool `env:"INIT_LOCK_MOVEMENT" envDefault:"false"`
}

func (s Static) InitOwnerPermissions() bool { return s.OwnerPermissions }
func (s Static) InitLockMovement() bool { return s.LockMovement }

// FromEnv reads TABLETOP_INIT_OWNER_PERMISSIONS and TABLETOP_INIT_LOCK_MOVEMENT.
func FromEnv() (Static, error) {
	var s Static
	if err := config.ParseEnvPrefixed(&s); err != nil {
		return Static{}, err
	}
	return s, nil
}
