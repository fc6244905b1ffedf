package store

import (
	"context"
	"fmt"

	"github.com/jonathan/jobfit/internal/schemas"
	"github.com/jonathan/jobfit/internal/types"
	"go.uber.org/zap"
)

// Preferences stores the single preference profile.
type Preferences struct {
	kv  KV
	log *zap.Logger
}

// Load returns the saved profile, or the default profile when none is saved
// or the saved one is corrupt.
func (p *Preferences) Load(ctx context.Context) (types.PreferenceProfile, error) {
	prefs := types.DefaultPreferences()
	if err := getJSON(ctx, p.kv, KeyPreferences, &prefs); err != nil {
		if fallback(p.log, KeyPreferences, err) {
			return types.DefaultPreferences(), nil
		}
		return types.PreferenceProfile{}, fmt.Errorf("failed to load preferences: %w", err)
	}
	return prefs, nil
}

// Save overwrites the stored profile.
func (p *Preferences) Save(ctx context.Context, prefs types.PreferenceProfile) error {
	if err := prefs.Validate(); err != nil {
		return fmt.Errorf("invalid preferences: %w", err)
	}
	if prefs.PreferredLocations == nil {
		prefs.PreferredLocations = []string{}
	}
	if prefs.PreferredMode == nil {
		prefs.PreferredMode = []types.WorkMode{}
	}
	return putJSON(ctx, p.kv, KeyPreferences, schemas.Preferences, prefs)
}
