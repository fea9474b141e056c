// Package view holds the per-session display state: derived tiers, the
// platform filter and the free-forever section toggle.
package view

import (
	"context"
	"errors"
	"sync"

	"free-game-tracker/internal/common/logger"
	"free-game-tracker/internal/features/giveaway/consumer"
	"free-game-tracker/internal/features/giveaway/models"
	"free-game-tracker/internal/features/giveaway/pipeline"
)

// Status is the session lifecycle state.
type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// ErrSessionSettled is returned by Load once a fetch has been attempted.
var ErrSessionSettled = errors.New("session already loaded")

// Fetcher supplies the raw listing.
type Fetcher interface {
	FetchGiveaways(ctx context.Context) ([]models.Giveaway, error)
}

// View is the filtered, display-ready state.
type View struct {
	Featured        []models.NormalizedGiveaway `json:"featured"`
	Regular         []models.NormalizedGiveaway `json:"regular"`
	FreeForever     []models.NormalizedGiveaway `json:"free_forever"`
	ShowFreeForever bool                        `json:"show_free_forever"`
}

// Derive applies selection to every tier. It is pure; the controller calls it
// after each write.
func Derive(c models.Collections, selection models.Selection, showFreeForever bool) View {
	filtered := pipeline.Filter(c, selection)
	return View{
		Featured:        filtered.Featured,
		Regular:         filtered.Regular,
		FreeForever:     filtered.FreeForever,
		ShowFreeForever: showFreeForever,
	}
}

// Snapshot is a copy of the controller state for rendering.
type Snapshot struct {
	Status    Status   `json:"status"`
	Error     string   `json:"error,omitempty"`
	Platforms []string `json:"platforms"`
	Selected  []string `json:"selected"`
	View
}

// IsSelected reports whether platform is part of the active filter.
func (s Snapshot) IsSelected(platform string) bool {
	for _, p := range s.Selected {
		if p == platform {
			return true
		}
	}
	return false
}

// Controller owns the session state. Writers are serialised; readers get
// copies through Snapshot.
type Controller struct {
	fetcher Fetcher

	mu          sync.RWMutex
	started     bool
	status      Status
	errMsg      string
	collections models.Collections
	platforms   []string
	selection   models.Selection
	showFree    bool
	view        View
}

func NewController(fetcher Fetcher) *Controller {
	return &Controller{
		fetcher:   fetcher,
		status:    StatusLoading,
		selection: models.Selection{},
		platforms: []string{},
	}
}

// Load fetches the listing once per session. On success every tier is
// re-derived; on failure the previous tiers stay as they were and the
// session moves to StatusError. Filter and visibility state survive both.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return ErrSessionSettled
	}
	c.started = true
	c.mu.Unlock()

	records, err := c.fetcher.FetchGiveaways(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		logger.Error().Err(err).Msg("Error fetching games")
		c.status = StatusError
		c.errMsg = consumer.LoadFailedMessage
		return err
	}

	c.collections = pipeline.Process(records)
	c.platforms = pipeline.DerivePlatforms(records)
	c.status = StatusReady
	c.errMsg = ""
	c.rederive()

	logger.Debug().
		Int("featured", len(c.collections.Featured)).
		Int("regular", len(c.collections.Regular)).
		Int("free_forever", len(c.collections.FreeForever)).
		Int("platforms", len(c.platforms)).
		Msg("Giveaways loaded")
	return nil
}

// TogglePlatform adds platform to the filter or removes it.
func (c *Controller) TogglePlatform(platform string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selection = c.selection.Toggle(platform)
	c.rederive()
}

// ToggleFreeForever expands or collapses the free-forever section.
func (c *Controller) ToggleFreeForever() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.showFree = !c.showFree
	c.rederive()
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Snapshot{
		Status:    c.status,
		Error:     c.errMsg,
		Platforms: append([]string(nil), c.platforms...),
		Selected:  c.selection.Sorted(),
		View: View{
			Featured:        append([]models.NormalizedGiveaway(nil), c.view.Featured...),
			Regular:         append([]models.NormalizedGiveaway(nil), c.view.Regular...),
			FreeForever:     append([]models.NormalizedGiveaway(nil), c.view.FreeForever...),
			ShowFreeForever: c.view.ShowFreeForever,
		},
	}
}

// rederive must be called with mu held for writing.
func (c *Controller) rederive() {
	c.view = Derive(c.collections, c.selection, c.showFree)
}
