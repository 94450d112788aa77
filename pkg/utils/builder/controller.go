package builder

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/vit0-9/utm_builder/pkg/utils"
	"github.com/vit0-9/utm_builder/pkg/utils/settings"
)

// Store persists the settings record.
type Store interface {
	Load(ctx context.Context) (settings.Settings, error)
	Save(ctx context.Context, s settings.Settings) error
}

// Snapshot is the current state together with what it renders to.
type Snapshot struct {
	Settings settings.Settings `json:"settings"`
	View     View              `json:"view"`
	Status   string            `json:"status,omitempty"`
}

// ActionResult describes a copy or open action that passed its readiness gate.
type ActionResult struct {
	Text   string `json:"text"`
	OK     bool   `json:"ok"`
	Status string `json:"status,omitempty"`
}

// Controller owns the builder state and turns UI events into transitions.
// Every mutation is persisted best-effort; store failures are only logged.
type Controller struct {
	mu       sync.Mutex
	state    settings.Settings
	required utils.RequiredTags

	store     Store
	clipboard Clipboard
	browser   Browser
	status    *StatusBoard
	logger    *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

func WithClipboard(c Clipboard) Option { return func(ctl *Controller) { ctl.clipboard = c } }

func WithBrowser(b Browser) Option { return func(ctl *Controller) { ctl.browser = b } }

func WithRequiredTags(r utils.RequiredTags) Option {
	return func(ctl *Controller) { ctl.required = r }
}

func WithStatusTTL(ttl time.Duration) Option {
	return func(ctl *Controller) { ctl.status = NewStatusBoard(ttl) }
}

func WithLogger(l *slog.Logger) Option { return func(ctl *Controller) { ctl.logger = l } }

// NewController restores the stored settings, falling back to the defaults
// when nothing usable is stored.
func NewController(ctx context.Context, store Store, opts ...Option) *Controller {
	c := &Controller{
		required:  utils.RequiredTagsDefault,
		store:     store,
		clipboard: SystemClipboard{},
		browser:   SystemBrowser{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.status == nil {
		c.status = NewStatusBoard(DefaultStatusTTL)
	}
	c.state = c.load(ctx)
	return c
}

func (c *Controller) load(ctx context.Context) settings.Settings {
	if c.store == nil {
		return settings.Defaults()
	}
	s, err := c.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, settings.ErrNotFound) {
			c.logger.Debug("stored settings unusable, using defaults", "error", err)
		}
		return settings.Defaults()
	}
	return s
}

func (c *Controller) persist(ctx context.Context) {
	if c.store == nil {
		return
	}
	if err := c.store.Save(ctx, c.state); err != nil {
		c.logger.Debug("failed to persist settings", "error", err)
	}
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Settings: c.state,
		View:     Render(c.state, c.required),
		Status:   c.status.Get(SlotAction),
	}
}

// Snapshot returns the current state and view.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Settings returns the current field values.
func (c *Controller) Settings() settings.Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Edit applies a partial field update.
func (c *Controller) Edit(ctx context.Context, e Edit) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = ApplyEdit(c.state, e)
	c.persist(ctx)
	return c.snapshotLocked()
}

// ApplyPreset activates a catalog preset.
func (c *Controller) ApplyPreset(ctx context.Context, key string) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := ApplyPreset(c.state, key)
	if err != nil {
		return c.snapshotLocked(), err
	}
	c.state = next
	c.persist(ctx)
	return c.snapshotLocked(), nil
}

// Reset restores the defaults and persists them immediately.
func (c *Controller) Reset(ctx context.Context) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reset()
	c.persist(ctx)
	return c.snapshotLocked()
}

// Status returns the visible action status message.
func (c *Controller) Status() string {
	return c.status.Get(SlotAction)
}

// CopyURL writes the formatted full URL to the clipboard.
func (c *Controller) CopyURL(ctx context.Context) (ActionResult, error) {
	text, err := c.gate(CopyURLText)
	if err != nil {
		return ActionResult{}, err
	}
	return c.copy(ctx, text, "URL"), nil
}

// CopyTags writes "?" plus the formatted tag-only query to the clipboard.
func (c *Controller) CopyTags(ctx context.Context) (ActionResult, error) {
	text, err := c.gate(CopyTagsText)
	if err != nil {
		return ActionResult{}, err
	}
	return c.copy(ctx, text, "UTM tags"), nil
}

// Open hands the encoded URL to the browser.
func (c *Controller) Open(ctx context.Context) (ActionResult, error) {
	text, err := c.gate(OpenURLText)
	if err != nil {
		return ActionResult{}, err
	}
	if err := c.run(ctx, func() error { return c.browser.OpenURL(text) }); err != nil {
		c.logger.Warn("failed to open browser", "error", err)
		c.status.Set(SlotAction, MsgOpenFailed)
		return ActionResult{Text: text, Status: MsgOpenFailed}, nil
	}
	return ActionResult{Text: text, OK: true}, nil
}

func (c *Controller) gate(text func(settings.Settings, utils.RequiredTags) (string, error)) (string, error) {
	c.mu.Lock()
	s, required := c.state, c.required
	c.mu.Unlock()

	out, err := text(s, required)
	if err != nil {
		c.status.Set(SlotAction, statusMessage(err))
		return "", err
	}
	return out, nil
}

func (c *Controller) copy(ctx context.Context, text, label string) ActionResult {
	if text == "" {
		return ActionResult{}
	}
	if err := c.run(ctx, func() error { return c.clipboard.WriteAll(text) }); err != nil {
		c.logger.Warn("clipboard write failed", "error", err)
		c.status.Set(SlotAction, MsgCopyFailed)
		return ActionResult{Text: text, Status: MsgCopyFailed}
	}
	msg := label + " copied."
	c.status.Set(SlotAction, msg)
	return ActionResult{Text: text, OK: true, Status: msg}
}

// run executes a system call without letting it outlive ctx.
func (c *Controller) run(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)
	go func() { done <- fn() }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops pending status timers.
func (c *Controller) Close() {
	c.status.Stop()
}
