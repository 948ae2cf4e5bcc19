package scanner

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"auctionscan/pkg/auction"
	"auctionscan/pkg/errors"
	"auctionscan/pkg/history"
	"auctionscan/pkg/logger"
	"auctionscan/pkg/store"
)

// DefaultItemsPerPage is the page size the venue serves listings in.
const DefaultItemsPerPage = 50

// Events are optional callbacks the controller fires as the scan moves.
// Nil fields are skipped. Callbacks run on the goroutine that drove the
// transition, with no controller lock held, so they may call back into
// the controller.
type Events struct {
	Started   func(Progress)
	Progress  func(Progress)
	Completed func(history.Entry)
	Cancelled func(Progress)
}

func (e Events) fireStarted(p Progress) {
	if e.Started != nil {
		e.Started(p)
	}
}

func (e Events) fireProgress(p Progress) {
	if e.Progress != nil {
		e.Progress(p)
	}
}

func (e Events) fireCompleted(entry history.Entry) {
	if e.Completed != nil {
		e.Completed(entry)
	}
}

func (e Events) fireCancelled(p Progress) {
	if e.Cancelled != nil {
		e.Cancelled(p)
	}
}

// Options configures a Controller. Zero values select defaults.
type Options struct {
	// ItemsPerPage is the venue's page size. Defaults to
	// DefaultItemsPerPage.
	ItemsPerPage int

	// HistoryCapacity bounds the retained completed scans. Defaults to
	// history.DefaultCapacity.
	HistoryCapacity int

	// Clock substitutes the time source. Defaults to the wall clock.
	Clock Clock

	// Logger receives the controller's structured logs. Defaults to
	// the global logger.
	Logger logger.Logger

	// Events receive scan lifecycle callbacks.
	Events Events
}

// Controller owns the scan lifecycle: it gates query submission behind
// the readiness check, advances pagination, aggregates listings, and
// finalizes completed scans into the history store.
//
// The host drives it through event callbacks (OnVenueUpdated, explicit
// commands) and consults ReadinessCheck in place of the venue's native
// predicate. All methods are safe for concurrent use, but the design
// assumes the host delivers events sequentially; readiness is polled by
// re-invocation, never by blocking.
type Controller struct {
	mu    sync.Mutex
	venue Venue
	kv    store.KV
	clock Clock
	log   logger.Logger

	itemsPerPage int
	hist         *history.Store
	events       Events

	state State
	sess  session

	// savedPredicate holds the venue's native readiness predicate
	// while a scan is active. Non-nil means the gate override is
	// installed; only one may be installed at a time.
	savedPredicate func() bool
}

// New builds a Controller over the given venue. The KV carries the
// scan history and saved UI state; a nil kv keeps state in memory only.
func New(venue Venue, kv store.KV, opts Options) (*Controller, error) {
	if venue == nil {
		return nil, fmt.Errorf("venue is required")
	}
	if kv == nil {
		kv = store.NewMemKV()
	}
	if opts.ItemsPerPage <= 0 {
		opts.ItemsPerPage = DefaultItemsPerPage
	}
	if opts.Clock == nil {
		opts.Clock = realClock{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.GetLogger()
	}

	hist, err := history.New(kv, opts.HistoryCapacity)
	if err != nil {
		return nil, fmt.Errorf("failed to open scan history: %w", err)
	}

	return &Controller{
		venue:        venue,
		kv:           kv,
		clock:        opts.Clock,
		log:          opts.Logger,
		itemsPerPage: opts.ItemsPerPage,
		hist:         hist,
		events:       opts.Events,
		state:        StateIdle,
	}, nil
}

// History exposes the controller's scan history store.
func (c *Controller) History() *history.Store {
	return c.hist
}

// IsScanning reports whether a scan is in progress.
func (c *Controller) IsScanning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess.active
}

// OnLoad is the host lifecycle hook for startup. It initializes
// persisted state that should exist from the first session on, and
// announces readiness.
func (c *Controller) OnLoad() error {
	var pos auction.IconPosition
	found, err := c.kv.Get(auction.IconPositionKey, &pos)
	if err != nil {
		return fmt.Errorf("failed to load icon position: %w", err)
	}
	if !found {
		if err := c.kv.Put(auction.IconPositionKey, auction.DefaultIconPosition()); err != nil {
			return fmt.Errorf("failed to save default icon position: %w", err)
		}
	}

	scans, items := c.hist.Stats()
	c.log.InfoWithFields("auction scanner ready", map[string]interface{}{
		"scans_recorded": scans,
		"items_recorded": items,
	})
	return nil
}

// OnVenueClosed is the host lifecycle hook for the venue window
// closing. A scan in progress is cancelled; otherwise it is ignored.
func (c *Controller) OnVenueClosed() {
	c.mu.Lock()
	if !c.sess.active {
		c.mu.Unlock()
		return
	}
	snap := c.snapshotLocked()
	snap.State = StateCancelled
	itemsScanned := c.sess.itemsScanned
	c.finishLocked(StateCancelled)
	c.mu.Unlock()

	c.log.InfoWithFields("scan cancelled, venue closed", map[string]interface{}{
		"items_scanned": itemsScanned,
	})
	c.events.fireCancelled(snap)
}

// OnVenueUpdated is the host lifecycle hook for "the page buffer
// changed". It consults the readiness check so event-driven hosts
// advance the scan without running their own poll loop.
func (c *Controller) OnVenueUpdated() {
	c.ReadinessCheck()
}

// Activate toggles the scan: cancel when scanning, start otherwise.
func (c *Controller) Activate() error {
	if c.IsScanning() {
		return c.Cancel()
	}
	return c.Start()
}

// Start begins a new scan.
//
// Preconditions: the venue window must be open and its native readiness
// predicate must currently permit a query; otherwise a
// PreconditionFailed error is returned and nothing changes. A Start
// while already scanning returns an AlreadyScanning error; hosts that
// want toggle behavior call Activate instead.
func (c *Controller) Start() error {
	c.mu.Lock()
	if c.sess.active {
		c.mu.Unlock()
		return errors.New(errors.KindAlreadyScanning, "a scan is already in progress")
	}
	if !c.venue.IsOpen() {
		c.mu.Unlock()
		return errors.New(errors.KindPreconditionFailed, "the auction house window is not open")
	}
	if !c.venue.CanSendQuery() {
		c.mu.Unlock()
		return errors.New(errors.KindPreconditionFailed, "the auction house is not ready for a query, try again shortly")
	}

	c.installGateLocked()
	c.sess = session{
		active:    true,
		id:        uuid.New().String(),
		startedAt: c.clock.Now(),
	}
	c.state = StateScanning
	snap := c.snapshotLocked()
	scanID := c.sess.id
	c.mu.Unlock()

	c.venue.SendQuery(0)
	c.log.InfoWithFields("scan started", map[string]interface{}{
		"scan_id":        scanID,
		"items_per_page": c.itemsPerPage,
	})
	c.events.fireStarted(snap)
	return nil
}

// Cancel stops the scan in progress. The session resets and the saved
// readiness predicate is restored before Cancel returns; nothing is
// appended to the history. Cancelling while idle reports
// NoScanInProgress and changes nothing.
func (c *Controller) Cancel() error {
	c.mu.Lock()
	if !c.sess.active {
		c.mu.Unlock()
		return errors.New(errors.KindNoScanInProgress, "no scan in progress")
	}
	snap := c.snapshotLocked()
	snap.State = StateCancelled
	itemsScanned := c.sess.itemsScanned
	c.finishLocked(StateCancelled)
	c.mu.Unlock()

	c.log.InfoWithFields("scan cancelled", map[string]interface{}{
		"items_scanned": itemsScanned,
	})
	c.events.fireCancelled(snap)
	return nil
}

// finishLocked ends the active session: the gate override comes off,
// the session resets, and the controller records the outcome.
func (c *Controller) finishLocked(outcome State) func() bool {
	saved := c.restoreGateLocked()
	c.sess.reset()
	c.state = outcome
	return saved
}

// installGateLocked saves the venue's native predicate so the gate can
// delegate to it on completion. Installing over an existing override is
// a programming defect, not a runtime condition, so it panics.
func (c *Controller) installGateLocked() {
	if c.savedPredicate != nil {
		panic(errors.New(errors.KindOverrideInstalled, "readiness override already installed"))
	}
	c.savedPredicate = c.venue.CanSendQuery
}

func (c *Controller) restoreGateLocked() func() bool {
	saved := c.savedPredicate
	c.savedPredicate = nil
	return saved
}
