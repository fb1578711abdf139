// Package cricket wires the setup wizard, the match session and the renderer to a line
// based terminal.
package cricket

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bloops-games/quizcricket/internal/cricket/builder"
	"github.com/bloops-games/quizcricket/internal/cricket/catalog"
	"github.com/bloops-games/quizcricket/internal/cricket/match"
	"github.com/bloops-games/quizcricket/internal/cricket/render"
	"github.com/bloops-games/quizcricket/internal/cricket/resource"
	"github.com/bloops-games/quizcricket/internal/logging"
	"github.com/bloops-games/quizcricket/internal/rng"
	"github.com/bloops-games/quizcricket/internal/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	commandBack    = "back"
	commandRestart = "restart"
	commandReload  = "reload"
	commandQuit    = "quit"
	commandExit    = "exit"
	commandHelp    = "help"
)

// errStop ends the dispatch loop; Run reports it as a clean exit.
var errStop = errors.New("stop")

func NewManager(config *Config, loader *catalog.Loader, src rng.Source) *Manager {
	return &Manager{
		config: config,
		loader: loader,
		src:    src,
	}
}

type Manager struct {
	config *Config
	loader *catalog.Loader
	src    rng.Source

	catalog *catalog.Catalog
	builder *builder.Session
	session *match.Session
	logger  *zap.SugaredLogger
	out     io.Writer
}

// Run plays matches until the input ends, the player quits or ctx is cancelled. The
// reader goroutine is not waited on: a read blocked on a terminal cannot be interrupted,
// so it is left to finish on its own. A closable input is closed on the way out.
func (m *Manager) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	m.logger = logging.FromContext(ctx).Named("manager")
	m.out = out

	if err := m.resolve(ctx); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	lines, readErr := readLines(ctx, in)

	g.Go(func() error {
		m.println(resource.TextWelcome)
		m.println(resource.TextHelp)
		m.promptSetup()

		for {
			select {
			case <-ctx.Done():
				return nil
			case err := <-readErr:
				return fmt.Errorf("read input: %w", err)
			case line, ok := <-lines:
				if !ok {
					select {
					case err := <-readErr:
						return fmt.Errorf("read input: %w", err)
					default:
						return errStop
					}
				}
				if !m.dispatch(ctx, line) {
					m.println(resource.TextBye)
					return errStop
				}
			}
		}
	})

	g.Go(func() error {
		<-ctx.Done()
		if c, ok := in.(io.Closer); ok {
			_ = c.Close()
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errStop) {
		return err
	}

	return nil
}

// readLines scans in on its own goroutine. lines is closed at end of input; a scan
// error is delivered on the buffered error channel first.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errs := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil && ctx.Err() == nil {
			errs <- err
		}
	}()

	return lines, errs
}

// resolve fetches the catalog through the loader and replaces the session when the
// catalog changed. Otherwise the live session is only reset.
func (m *Manager) resolve(ctx context.Context) error {
	cat, err := m.loader.Load(ctx, m.config.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	if cat != m.catalog || m.session == nil {
		session, err := match.NewSession(ctx, cat, m.src)
		if err != nil {
			return fmt.Errorf("new match session: %w", err)
		}
		m.catalog = cat
		m.session = session
	} else {
		m.session.Restart()
	}

	m.builder = builder.NewSession(m.catalog)
	return nil
}

// dispatch routes one input line and reports whether to keep going.
func (m *Manager) dispatch(ctx context.Context, line string) bool {
	input := strings.ToLower(strings.TrimSpace(line))

	switch input {
	case commandQuit, commandExit:
		return false
	case commandHelp:
		m.println(resource.TextHelp)
		return true
	case commandRestart, commandReload:
		if input == commandReload {
			m.loader.Invalidate(m.config.CatalogPath)
		}
		if err := m.resolve(ctx); err != nil {
			m.logger.Errorf("%s: %v", input, err)
			m.println(fmt.Sprintf(resource.TextBadInput, err))
			return true
		}
		m.promptSetup()
		return true
	}

	snap := m.session.Snapshot()
	var err error

	switch snap.Phase {
	case match.PhaseSetup:
		err = m.handleSetup(input)
	case match.PhaseQuestion:
		err = m.handleAnswer(input)
	case match.PhaseDelivery:
		err = m.handleNumber(ctx, input)
	case match.PhaseResult, match.PhaseInningsBreak:
		err = m.handleAdvance(input)
	case match.PhaseSummary:
		m.println(resource.TextPlayAgain)
	}

	if err != nil {
		m.logger.Debugf("input %q rejected in %s: %v", input, snap.Phase, err)
		m.println(fmt.Sprintf(resource.TextBadInput, err))
	}

	return true
}

func (m *Manager) handleSetup(input string) error {
	if input == commandBack {
		m.builder.Back()
		m.promptSetup()
		return nil
	}

	if !m.builder.Done() {
		err := m.builder.Choose(input)
		m.promptSetup()
		return err
	}

	setup, err := m.builder.Setup()
	if err != nil {
		return err
	}

	snap, err := m.session.Start(setup)
	if err != nil {
		return err
	}

	m.println(fmt.Sprintf("%s vs %s", render.TeamName(m.catalog, setup.PlayerTeam), render.TeamName(m.catalog, setup.OpponentTeam)))
	m.printQuestion(snap)
	return nil
}

func (m *Manager) handleAnswer(input string) error {
	n, err := strconv.Atoi(input)
	if err != nil {
		m.println(resource.TextAnswer)
		return nil
	}

	snap, err := m.session.SubmitAnswer(n - 1)
	if err != nil {
		return err
	}

	m.println(render.DeliveryStatus(snap))
	return nil
}

func (m *Manager) handleNumber(ctx context.Context, input string) error {
	n, err := strconv.Atoi(input)
	if err != nil {
		m.println(render.DeliveryStatus(m.session.Snapshot()))
		return nil
	}

	snap, err := m.session.SubmitNumber(n)
	if err != nil {
		return err
	}

	if !util.Sleep(ctx, m.config.RevealDelay) {
		return nil
	}
	m.println(render.BallResult(snap))
	m.println(render.Scoreboard(snap, m.catalog, m.config.HistorySize))
	m.println(resource.TextContinue)
	return nil
}

func (m *Manager) handleAdvance(input string) error {
	if input != "" {
		m.println(resource.TextContinue)
		return nil
	}

	prev := m.session.Snapshot()
	snap, err := m.session.Advance()
	if err != nil {
		return err
	}

	switch snap.Phase {
	case match.PhaseQuestion:
		if snap.Innings != prev.Innings {
			m.println(resource.TextInningsTwo)
		}
		m.printQuestion(snap)
	case match.PhaseInningsBreak:
		m.println(render.InningsBreak(snap, m.catalog))
		if !snap.MatchComplete {
			m.println(render.Worm(snap, m.catalog))
		}
	case match.PhaseSummary:
		m.println(render.Summary(snap, m.catalog))
		m.println(resource.TextPlayAgain)
	}

	return nil
}

func (m *Manager) promptSetup() {
	m.println(m.builder.Prompt())
	for i, o := range m.builder.Options() {
		m.println(fmt.Sprintf("  %d) %s", i+1, o.Label))
	}
}

func (m *Manager) printQuestion(snap match.Snapshot) {
	m.println(render.Scoreboard(snap, m.catalog, m.config.HistorySize))
	m.println(render.Question(snap))
}

func (m *Manager) println(s string) {
	if s == "" {
		return
	}
	if _, err := fmt.Fprintln(m.out, s); err != nil {
		m.logger.Errorf("write output: %v", err)
	}
}
