// Package app owns the tool's in-memory state: the merged catalog, the
// recipe store and station index built from the last refresh, and the
// user's ledger. Consumers read through the App; only App methods
// mutate, between discrete commands.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/appengine-ltd/raidkit/internal/catalog"
	"github.com/appengine-ltd/raidkit/internal/ledger"
	"github.com/appengine-ltd/raidkit/internal/recipe"
	"github.com/appengine-ltd/raidkit/internal/storage"
)

// Fetcher supplies rendered wiki page HTML. *wiki.Client satisfies it;
// tests stub it.
type Fetcher interface {
	PageHTML(ctx context.Context, page string) (string, error)
}

// Storage keys, one per persisted value.
const (
	keyInventory    = "raidkit_inventory"
	keyShoppingList = "raidkit_shoppingList"
	keyPinned       = "raidkit_pinnedRecipes"
	keyCompleted    = "raidkit_completedRequirements"
	keyPreferences  = "raidkit_preferences"
)

// Preferences are the small display settings that persist between runs.
type Preferences struct {
	ViewMode string `json:"viewMode,omitempty"`
	Sort     string `json:"sort,omitempty"`
}

// App is the controller owning all mutable state.
type App struct {
	fetcher Fetcher
	store   *storage.KV

	Items    []catalog.Item
	Recipes  recipe.Store
	Stations []recipe.Station
	Ledger   *ledger.Ledger
	Prefs    Preferences
}

// New builds an App. store may be nil, in which case nothing persists
// and every ledger starts empty.
func New(fetcher Fetcher, store *storage.KV) *App {
	return &App{
		fetcher: fetcher,
		store:   store,
		Recipes: recipe.Store{},
		Ledger:  ledger.NewLedger(),
	}
}

// LoadState reads the persisted ledger and preferences. Failures are
// logged and leave defaults in place; persistence is never fatal.
func (a *App) LoadState(ctx context.Context) {
	if a.store == nil {
		return
	}
	loadJSON(ctx, a.store, keyInventory, &a.Ledger.Inventory)
	loadJSON(ctx, a.store, keyShoppingList, &a.Ledger.ShoppingList)
	loadJSON(ctx, a.store, keyPinned, &a.Ledger.Pinned)
	loadJSON(ctx, a.store, keyCompleted, &a.Ledger.Completed)
	loadJSON(ctx, a.store, keyPreferences, &a.Prefs)

	if a.Ledger.Inventory == nil {
		a.Ledger.Inventory = make(ledger.Quantities)
	}
	if a.Ledger.ShoppingList == nil {
		a.Ledger.ShoppingList = make(ledger.Quantities)
	}
	if a.Ledger.Completed == nil {
		a.Ledger.Completed = make(map[string]bool)
	}
}

// SaveState writes the ledger and preferences back to storage. Called
// after every mutating command; failures are logged, in-memory state
// stays authoritative for the session.
func (a *App) SaveState(ctx context.Context) {
	if a.store == nil {
		return
	}
	saveJSON(ctx, a.store, keyInventory, a.Ledger.Inventory)
	saveJSON(ctx, a.store, keyShoppingList, a.Ledger.ShoppingList)
	saveJSON(ctx, a.store, keyPinned, a.Ledger.Pinned)
	saveJSON(ctx, a.store, keyCompleted, a.Ledger.Completed)
	saveJSON(ctx, a.store, keyPreferences, a.Prefs)
}

// ClearAllData wipes storage and resets the ledger.
func (a *App) ClearAllData(ctx context.Context) error {
	a.Ledger = ledger.NewLedger()
	if a.store == nil {
		return nil
	}
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear data: %w", err)
	}
	return nil
}

// StorageInfo reports the total persisted size in KB.
func (a *App) StorageInfo(ctx context.Context) (string, error) {
	if a.store == nil {
		return "0.0 KB", nil
	}
	keys, err := a.store.Keys(ctx)
	if err != nil {
		return "", err
	}
	var total int
	for _, key := range keys {
		value, err := a.store.Get(ctx, key)
		if err != nil {
			return "", err
		}
		total += len(value)
	}
	return fmt.Sprintf("%.1f KB", float64(total)/1024), nil
}

func loadJSON(ctx context.Context, kv *storage.KV, key string, target any) {
	data, err := kv.Get(ctx, key)
	if err != nil {
		log.Printf("load %s: %v", key, err)
		return
	}
	if data == nil {
		return
	}
	if err := json.Unmarshal(data, target); err != nil {
		log.Printf("decode %s: %v", key, err)
	}
}

func saveJSON(ctx context.Context, kv *storage.KV, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("encode %s: %v", key, err)
		return
	}
	if err := kv.Set(ctx, key, data); err != nil {
		log.Printf("save %s: %v", key, err)
	}
}
