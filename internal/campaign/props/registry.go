// Package props holds the per-campaign registry of game-rule assets: token
// property schemas, sight types, light sources, lookup tables, token state
// and bar overlays, remote repositories and character sheets.
//
// Every collection is independently safe for concurrent use and fills itself
// with built-in defaults on first use. Operations spanning several
// collections, such as Clone and MergeInto, are atomic per collection only.
package props

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/louisbranch/tabletop/internal/campaign/asset"
	"github.com/louisbranch/tabletop/internal/campaign/light"
	"github.com/louisbranch/tabletop/internal/campaign/lookup"
	"github.com/louisbranch/tabletop/internal/campaign/overlay"
	"github.com/louisbranch/tabletop/internal/campaign/prefs"
	"github.com/louisbranch/tabletop/internal/campaign/sight"
	"github.com/louisbranch/tabletop/internal/campaign/tokenprop"
	"github.com/louisbranch/tabletop/internal/platform/alert"
	apperrors "github.com/louisbranch/tabletop/internal/platform/errors"
)

var tracer = otel.Tracer("github.com/louisbranch/tabletop/internal/campaign/props")

// DefaultCharacterSheet is the form used by the Basic token type.
const DefaultCharacterSheet = "forms/basicCharacterSheet.xml"

// Initiative holds the two initiative flags.
type Initiative struct {
	OwnerPermissions bool
	MovementLock     bool
}

// Registry is the configuration of one campaign. It is created per open
// session and shared by reference with whatever needs it.
type Registry struct {
	tokenTypes *Collection[tokenprop.Schema]
	sights     *Collection[sight.Definition]
	// defaultSight is guarded by the sights collection lock.
	defaultSight string
	lights       *Collection[*light.Group]
	tables       *Collection[*lookup.Table]
	states       *Collection[*overlay.Boolean]
	bars         *Collection[*overlay.Bar]
	sheets       *Collection[string]
	repos        *RepositoryList

	initiativeMu sync.Mutex
	initiative   Initiative

	lightProvider light.Provider
	prefs         prefs.Store
	reporter      alert.Reporter
	logger        *slog.Logger

	// Failures found while seeding wait here until no collection lock is held.
	pendingMu sync.Mutex
	pending   []error
}

// New returns a registry with every collection populated.
func New(ctx context.Context, opts ...Option) *Registry {
	r := NewEmpty(opts...)
	r.Populate(ctx)
	return r
}

// NewEmpty returns a registry whose collections populate lazily on first use.
func NewEmpty(opts ...Option) *Registry {
	r := &Registry{repos: NewRepositoryList()}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.reporter == nil {
		r.reporter = alert.NewLogReporter(r.logger, "")
	}
	if r.prefs != nil {
		r.initiative = Initiative{
			OwnerPermissions: r.prefs.InitOwnerPermissions(),
			MovementLock:     r.prefs.InitLockMovement(),
		}
	}

	r.tokenTypes = NewCollection(func(context.Context) map[string]tokenprop.Schema {
		return tokenprop.Defaults()
	})
	r.lights = NewCollection(r.seedLights)
	r.lights.afterSeed = r.flushReports
	r.sights = NewCollection(r.seedSights)
	r.sights.afterWrite = r.keepDefaultSight
	r.sights.beforeSeed = func(ctx context.Context) { r.lights.Seed(ctx) }
	r.sights.afterSeed = r.flushReports
	r.tables = NewCollection(func(context.Context) map[string]*lookup.Table {
		return lookup.Defaults()
	})
	r.states = NewCollection(func(context.Context) map[string]*overlay.Boolean {
		return overlay.DefaultStates()
	})
	r.bars = NewCollection(func(context.Context) map[string]*overlay.Bar {
		return overlay.DefaultBars()
	})
	r.sheets = NewCollection(func(context.Context) map[string]string {
		return map[string]string{tokenprop.DefaultType: DefaultCharacterSheet}
	})
	return r
}

// Populate seeds every collection that has not been seeded or replaced yet.
// Calling it again does nothing.
func (r *Registry) Populate(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := tracer.Start(ctx, "props.Populate")
	defer span.End()

	seeded := 0
	// Lights go before sights so Darkvision can find its light.
	for _, seed := range []func(context.Context) bool{
		r.tokenTypes.Seed,
		r.lights.Seed,
		r.sights.Seed,
		r.tables.Seed,
		r.states.Seed,
		r.bars.Seed,
		r.sheets.Seed,
	} {
		if seed(ctx) {
			seeded++
		}
	}
	span.SetAttributes(attribute.Int("props.collections_seeded", seeded))
	if seeded > 0 {
		r.logger.DebugContext(ctx, "campaign properties populated", "collections", seeded)
	}
}

func (r *Registry) seedLights(ctx context.Context) map[string]*light.Group {
	groups, err := light.Load(ctx, r.lightProvider)
	if err != nil {
		r.deferReport(err)
		return nil
	}
	return groups
}

// seedSights runs under the sights write lock. Lights are already seeded by
// then, so reading them takes no other write lock.
func (r *Registry) seedSights(ctx context.Context) map[string]sight.Definition {
	generic, _ := r.lights.Get(sight.GenericCategory)
	cat := sight.DefaultCatalog(generic)
	if cat.Warning != nil {
		r.deferReport(cat.Warning)
	}
	r.defaultSight = cat.DefaultName
	return cat.Definitions
}

func (r *Registry) deferReport(err error) {
	r.pendingMu.Lock()
	defer r.pendingMu.Unlock()
	r.pending = append(r.pending, err)
}

// flushReports hands queued failures to the reporter. The reporter may call
// back into the registry.
func (r *Registry) flushReports(ctx context.Context) {
	r.pendingMu.Lock()
	pending := r.pending
	r.pending = nil
	r.pendingMu.Unlock()
	for _, err := range pending {
		r.reporter.Report(ctx, err)
	}
}

// keepDefaultSight runs under the sights write lock and repoints the default
// when its entry disappeared.
func (r *Registry) keepDefaultSight(items map[string]sight.Definition) {
	if _, ok := items[r.defaultSight]; ok {
		return
	}
	r.defaultSight = fallbackSight(items)
}

func fallbackSight(items map[string]sight.Definition) string {
	if _, ok := items[sight.DefaultName]; ok {
		return sight.DefaultName
	}
	if len(items) == 0 {
		return ""
	}
	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names[0]
}

// TokenTypes returns the live token type schemas.
func (r *Registry) TokenTypes() *Collection[tokenprop.Schema] { return r.tokenTypes }

// SightTypes returns the live sight types.
func (r *Registry) SightTypes() *Collection[sight.Definition] { return r.sights }

// LightSources returns the live light sources by category.
func (r *Registry) LightSources() *Collection[*light.Group] { return r.lights }

// LookupTables returns the live lookup tables.
func (r *Registry) LookupTables() *Collection[*lookup.Table] { return r.tables }

// TokenStates returns the live token state overlays.
func (r *Registry) TokenStates() *Collection[*overlay.Boolean] { return r.states }

// TokenBars returns the live token bar overlays.
func (r *Registry) TokenBars() *Collection[*overlay.Bar] { return r.bars }

// CharacterSheets returns the live token type to form mapping.
func (r *Registry) CharacterSheets() *Collection[string] { return r.sheets }

// RemoteRepositories returns the live repository list.
func (r *Registry) RemoteRepositories() *RepositoryList { return r.repos }

// TokenPropertyList returns the schema of tokenType. An unknown type is not an
// error; it reports false.
func (r *Registry) TokenPropertyList(tokenType string) (tokenprop.Schema, bool) {
	return r.tokenTypes.Get(tokenType)
}

// DefaultSightType returns the sight type new tokens get.
func (r *Registry) DefaultSightType() string {
	var name string
	r.sights.view(func(map[string]sight.Definition) { name = r.defaultSight })
	return name
}

// SetDefaultSightType changes the default. It refuses names that are not
// sight types.
func (r *Registry) SetDefaultSightType(name string) bool {
	ok := false
	r.sights.update(func(items map[string]sight.Definition) map[string]sight.Definition {
		if _, ok = items[name]; ok {
			r.defaultSight = name
		}
		return nil
	})
	return ok
}

// ReplaceTokenTypes swaps the token types. A nil map leaves them as they are.
func (r *Registry) ReplaceTokenTypes(m map[string]tokenprop.Schema) bool {
	return r.tokenTypes.Replace(m)
}

// ReplaceSightTypes swaps the sight types. The default is kept if it survives,
// otherwise it moves to Normal, or to the first name in order.
func (r *Registry) ReplaceSightTypes(m map[string]sight.Definition) bool {
	return r.sights.Replace(m)
}

// ReplaceLightSources swaps the light source groups. Sight types keep the
// personal lights they were built with.
func (r *Registry) ReplaceLightSources(m map[string]*light.Group) bool {
	return r.lights.Replace(m)
}

// ReplaceLookupTables swaps the lookup tables.
func (r *Registry) ReplaceLookupTables(m map[string]*lookup.Table) bool {
	return r.tables.Replace(m)
}

// ReplaceTokenStates swaps the state overlays. The registry keeps the
// overlays it is given, not copies.
func (r *Registry) ReplaceTokenStates(m map[string]*overlay.Boolean) bool {
	return r.states.Replace(m)
}

// ReplaceTokenBars swaps the bar overlays.
func (r *Registry) ReplaceTokenBars(m map[string]*overlay.Bar) bool {
	return r.bars.Replace(m)
}

// ReplaceCharacterSheets swaps the token type to sheet mapping.
func (r *Registry) ReplaceCharacterSheets(m map[string]string) bool {
	return r.sheets.Replace(m)
}

// ReplaceRemoteRepositories swaps the repository list. A nil slice leaves it
// as it is.
func (r *Registry) ReplaceRemoteRepositories(uris []string) bool {
	return r.repos.Replace(uris)
}

// AllImageAssets returns every asset referenced by lookup tables, token states
// and token bars. It does not modify the registry.
func (r *Registry) AllImageAssets() asset.Set {
	set := asset.NewSet()
	r.tables.Range(func(_ string, t *lookup.Table) bool {
		set.AddAll(t.AllAssetIDs()...)
		return true
	})
	r.states.Range(func(_ string, o *overlay.Boolean) bool {
		set.AddAll(o.AssetIDs()...)
		return true
	})
	r.bars.Range(func(_ string, o *overlay.Bar) bool {
		set.AddAll(o.AssetIDs()...)
		return true
	})
	return set
}

// ResolvePersonalLight returns the current catalog entry for def's personal
// light. A light that is no longer in the catalog yields false and a warning.
func (r *Registry) ResolvePersonalLight(ctx context.Context, def sight.Definition) (*light.Source, bool) {
	if !def.HasPersonalLight() {
		return nil, false
	}
	want := def.PersonalLight()
	if src, ok := light.Find(r.lights.Snapshot(), want.ID()); ok {
		return src, true
	}
	r.reporter.Report(ctx, apperrors.WithMetadata(apperrors.CodeLightSourceNotFound,
		"personal light not in catalog",
		map[string]string{"sight": def.Name(), "light": want.Name()}))
	return nil, false
}

// Initiative returns both initiative flags as one consistent pair.
func (r *Registry) Initiative() Initiative {
	r.initiativeMu.Lock()
	defer r.initiativeMu.Unlock()
	return r.initiative
}

// SetInitiative sets both initiative flags together.
func (r *Registry) SetInitiative(in Initiative) {
	r.initiativeMu.Lock()
	defer r.initiativeMu.Unlock()
	r.initiative = in
}

// InitiativeOwnerPermissions reports whether token owners may act on
// initiative.
func (r *Registry) InitiativeOwnerPermissions() bool {
	return r.Initiative().OwnerPermissions
}

// SetInitiativeOwnerPermissions sets the owner permissions flag.
func (r *Registry) SetInitiativeOwnerPermissions(v bool) {
	r.initiativeMu.Lock()
	defer r.initiativeMu.Unlock()
	r.initiative.OwnerPermissions = v
}

// InitiativeMovementLock reports whether movement is locked to the token
// whose turn it is.
func (r *Registry) InitiativeMovementLock() bool {
	return r.Initiative().MovementLock
}

// SetInitiativeMovementLock sets the movement lock flag.
func (r *Registry) SetInitiativeMovementLock(v bool) {
	r.initiativeMu.Lock()
	defer r.initiativeMu.Unlock()
	r.initiative.MovementLock = v
}
