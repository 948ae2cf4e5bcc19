// Package command implements the textual command surface for driving
// the scanner from a chat box or interactive console. It is pure text
// in, text out; the host owns the actual I/O.
package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	apperrors "auctionscan/pkg/errors"
	"auctionscan/pkg/history"
	"auctionscan/pkg/logger"
	"auctionscan/pkg/scanner"
)

// Handler dispatches command lines against a controller and its
// history store.
type Handler struct {
	ctrl *scanner.Controller
	hist *history.Store
}

// NewHandler creates a handler bound to the controller's history.
func NewHandler(ctrl *scanner.Controller) *Handler {
	return &Handler{
		ctrl: ctrl,
		hist: ctrl.History(),
	}
}

// Execute runs one command line and returns the reply text. The verb
// is the first whitespace-separated token, matched case-insensitively;
// anything unrecognized falls through to the help listing.
func (h *Handler) Execute(input string) string {
	fields := strings.Fields(strings.ToLower(input))
	verb := ""
	if len(fields) > 0 {
		verb = fields[0]
	}

	switch verb {
	case "scan":
		logger.LogCommand(verb, true)
		return h.scan()
	case "cancel", "stop":
		logger.LogCommand(verb, true)
		return h.cancel()
	case "clear":
		logger.LogCommand(verb, true)
		return h.clear()
	case "stats":
		logger.LogCommand(verb, true)
		return h.stats()
	default:
		logger.LogCommand(verb, false)
		return helpText()
	}
}

// scan toggles: it cancels a running scan, otherwise starts one.
func (h *Handler) scan() string {
	if h.ctrl.IsScanning() {
		if err := h.ctrl.Cancel(); err != nil {
			return friendly(err)
		}
		return "Scan cancelled."
	}

	if err := h.ctrl.Start(); err != nil {
		return friendly(err)
	}
	return "Scan started."
}

func (h *Handler) cancel() string {
	if err := h.ctrl.Cancel(); err != nil {
		return friendly(err)
	}
	return "Scan cancelled."
}

func (h *Handler) clear() string {
	if err := h.hist.Clear(); err != nil {
		return "Failed to clear scan history: " + err.Error()
	}
	return "Scan history cleared."
}

func (h *Handler) stats() string {
	scans, items := h.hist.Stats()
	if scans == 0 {
		return "No scans recorded yet."
	}

	scanNoun := "scans"
	if scans == 1 {
		scanNoun = "scan"
	}
	reply := fmt.Sprintf("%d %s recorded, %s items total.", scans, scanNoun, humanize.Comma(int64(items)))

	if latest, ok := h.hist.Latest(); ok {
		reply += fmt.Sprintf(" Last scan finished %s.", humanize.RelTime(latest.CompletedAt, time.Now(), "ago", "from now"))
	}
	return reply
}

// friendly turns controller errors into chat-sized replies.
func friendly(err error) string {
	switch apperrors.KindOf(err) {
	case apperrors.KindNoScanInProgress:
		return "No scan in progress."
	case apperrors.KindPreconditionFailed:
		if e, ok := err.(*apperrors.Error); ok {
			return "Cannot start: " + e.Message + "."
		}
	case apperrors.KindAlreadyScanning:
		return "A scan is already in progress."
	}
	return err.Error()
}

func helpText() string {
	return strings.Join([]string{
		"Auction scan commands:",
		"  scan          start a scan, or cancel the one running",
		"  cancel, stop  cancel the scan in progress",
		"  clear         clear the scan history",
		"  stats         show recorded scan totals",
	}, "\n")
}
