// Package watch runs a live observation session: the three responsive
// observers bound to one host, with every published change written out as
// a line of text or JSON.
package watch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/vpwatch/internal/host"
	"github.com/alexisbeaulieu97/vpwatch/internal/logger"
	"github.com/alexisbeaulieu97/vpwatch/internal/responsive"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Runner is a long-lived task tied to a session, such as a host's resize
// loop or a config watcher. It returns when ctx is done.
type Runner func(ctx context.Context) error

// Options configures a Session.
type Options struct {
	Env        host.Environment
	Breakpoint responsive.Breakpoint
	Debounce   time.Duration
	Output     string
	Writer     io.Writer
	Logger     *logger.Logger
}

// Event is one line of session output.
type Event struct {
	Session    string                         `json:"session"`
	Kind       string                         `json:"event"`
	Viewport   *responsive.ResponsiveState    `json:"viewport,omitempty"`
	Breakpoint *responsive.Breakpoint         `json:"breakpoint,omitempty"`
	Matches    *bool                          `json:"matches,omitempty"`
	Mobile     *responsive.MobileFeatureState `json:"mobile,omitempty"`
}

// Session owns one instance of each observer.
type Session struct {
	id       string
	output   string
	viewport *responsive.ViewportObserver
	matcher  *responsive.BreakpointMatcher
	mobile   *responsive.MobileFeatures
	log      *logger.Logger

	mu      sync.Mutex
	writer  io.Writer
	cancels []func()
}

// NewSession builds the observers for opts.Env without activating them.
func NewSession(opts Options) (*Session, error) {
	output := opts.Output
	if output == "" {
		output = OutputText
	}
	if output != OutputText && output != OutputJSON {
		return nil, fmt.Errorf("unsupported output format %q", output)
	}
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}

	id := uuid.NewString()
	log := opts.Logger.With("session", id)
	observerOpts := []responsive.Option{responsive.WithLogger(log)}
	viewportOpts := append([]responsive.Option{responsive.WithDebounce(opts.Debounce)}, observerOpts...)

	return &Session{
		id:       id,
		output:   output,
		viewport: responsive.NewViewportObserver(opts.Env, viewportOpts...),
		matcher:  responsive.NewBreakpointMatcher(opts.Env, opts.Breakpoint, observerOpts...),
		mobile:   responsive.NewMobileFeatures(opts.Env, observerOpts...),
		log:      log,
		writer:   writer,
	}, nil
}

// ID returns the session identifier included in every event.
func (s *Session) ID() string {
	return s.id
}

// Start activates the observers and prints their initial states.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.cancels) > 0 {
		return
	}

	s.cancels = append(s.cancels,
		s.viewport.Activate(),
		s.matcher.Activate(),
		s.mobile.Activate(),
		s.viewport.Subscribe(s.emitViewport),
		s.matcher.Subscribe(s.emitMatch),
		s.mobile.Subscribe(s.emitMobile),
	)

	s.writeLocked(s.viewportEvent(s.viewport.State()))
	s.writeLocked(s.matchEvent(s.matcher.Matches()))
	s.writeLocked(s.mobileEvent(s.mobile.State()))
	s.log.Info("watch session started")
}

// Stop deactivates every observer. It is idempotent.
func (s *Session) Stop() {
	s.mu.Lock()
	cancels := s.cancels
	s.cancels = nil
	s.mu.Unlock()

	for i := len(cancels) - 1; i >= 0; i-- {
		cancels[i]()
	}
	if len(cancels) > 0 {
		s.log.Info("watch session stopped")
	}
}

// Retarget points the breakpoint matcher at bp and prints the resulting
// match when it changed.
func (s *Session) Retarget(bp responsive.Breakpoint) {
	if s.matcher.Breakpoint() == bp {
		return
	}
	before := s.matcher.Matches()
	s.matcher.SetBreakpoint(bp)
	s.log.With("breakpoint", bp.String()).Info("matcher retargeted")
	if s.matcher.Matches() == before {
		// No flip, so no subscription fired; report the new target anyway.
		s.emitMatch(before)
	}
}

// Snapshot returns the current states of all three observers.
func (s *Session) Snapshot() (responsive.ResponsiveState, bool, responsive.MobileFeatureState) {
	return s.viewport.State(), s.matcher.Matches(), s.mobile.State()
}

// Run starts the session, runs every runner until ctx is done or one of
// them fails, then stops the session. With no runners it returns right
// after printing the initial states.
func (s *Session) Run(ctx context.Context, runners ...Runner) error {
	s.Start()
	defer s.Stop()

	g, gctx := errgroup.WithContext(ctx)
	for _, run := range runners {
		run := run
		g.Go(func() error { return run(gctx) })
	}
	return g.Wait()
}

func (s *Session) emitViewport(state responsive.ResponsiveState) {
	s.write(s.viewportEvent(state))
}

func (s *Session) emitMatch(matches bool) {
	s.write(s.matchEvent(matches))
}

func (s *Session) emitMobile(state responsive.MobileFeatureState) {
	s.write(s.mobileEvent(state))
}

func (s *Session) viewportEvent(state responsive.ResponsiveState) Event {
	return Event{Session: s.id, Kind: "viewport", Viewport: &state}
}

func (s *Session) matchEvent(matches bool) Event {
	bp := s.matcher.Breakpoint()
	return Event{Session: s.id, Kind: "matcher", Breakpoint: &bp, Matches: &matches}
}

func (s *Session) mobileEvent(state responsive.MobileFeatureState) Event {
	return Event{Session: s.id, Kind: "mobile", Mobile: &state}
}

func (s *Session) write(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeLocked(ev)
}

func (s *Session) writeLocked(ev Event) {
	var err error
	if s.output == OutputJSON {
		err = json.NewEncoder(s.writer).Encode(ev)
	} else {
		_, err = fmt.Fprintln(s.writer, FormatText(ev))
	}
	if err != nil {
		s.log.Error(err, "failed to write event")
	}
}

// FormatText renders ev as a single human-readable line.
func FormatText(ev Event) string {
	switch {
	case ev.Viewport != nil:
		v := ev.Viewport
		return fmt.Sprintf("%-8s breakpoint=%s class=%s size=%dx%d",
			ev.Kind, v.Breakpoint, v.DeviceClass(), v.Width, v.Height)
	case ev.Matches != nil && ev.Breakpoint != nil:
		return fmt.Sprintf("%-8s min-width=%s(%d) matches=%t",
			ev.Kind, *ev.Breakpoint, ev.Breakpoint.MinWidth(), *ev.Matches)
	case ev.Mobile != nil:
		m := ev.Mobile
		return fmt.Sprintf("%-8s mobile=%t orientation=%s standalone=%t",
			ev.Kind, m.IsMobile, m.Orientation, m.IsStandalone)
	default:
		return ev.Kind
	}
}
