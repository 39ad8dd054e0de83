// Package panel implements the plant care display using BubbleTea: a
// humidity poller that never overlaps its own requests and a watering
// control that stays disabled while a cycle is running.
package panel

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/luki/plantcare/internal/history"
	"github.com/luki/plantcare/internal/humidity"
	"github.com/luki/plantcare/internal/logger"
	"github.com/luki/plantcare/internal/remote"
)

// Remote is the device service the panel polls and commands.
type Remote interface {
	ReadHumidity(ctx context.Context) (float64, error)
	StartMotor(ctx context.Context) (remote.MotorResponse, error)
}

// Options tunes the panel timers and history.
type Options struct {
	PollInterval time.Duration
	Cooldown     time.Duration // busy window after the motor started
	HistorySize  int
	Source       string // shown in the title bar
}

// ── Messages ─────────────────────────────────────────────────────────

type pollTickMsg time.Time

type humidityMsg struct {
	raw  float64
	time time.Time
}

type humidityErrMsg struct{ err error }

type motorStartedMsg struct {
	run  uint64
	resp remote.MotorResponse
}

type motorErrMsg struct {
	run uint64
	err error
}

type wateringDoneMsg struct{ run uint64 }

// ── Model ────────────────────────────────────────────────────────────

// Model is the BubbleTea model for the panel. The humidity value and the
// watering flag are written only here, in Update.
type Model struct {
	ctx    context.Context
	remote Remote
	log    *logger.Logger
	opts   Options

	reading  humidity.Reading
	known    bool // false until the first successful read
	fetching bool // a /gethumidity request is outstanding
	watering bool
	run      uint64 // generation of the current watering cycle

	history   *history.Buffer
	spinner   spinner.Model
	width     int
	height    int
	startTime time.Time
}

// New creates the initial panel model. ctx scopes every request issued by
// the panel.
func New(ctx context.Context, r Remote, log *logger.Logger, opts Options) Model {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(colorAccent)),
	)
	return Model{
		ctx:       ctx,
		remote:    r,
		log:       log,
		opts:      opts,
		history:   history.NewBuffer(opts.HistorySize),
		spinner:   sp,
		startTime: time.Now(),
	}
}

// ── Commands ─────────────────────────────────────────────────────────

func (m Model) pollTick() tea.Cmd {
	return tea.Tick(m.opts.PollInterval, func(t time.Time) tea.Msg {
		return pollTickMsg(t)
	})
}

func (m Model) fetchHumidity() tea.Cmd {
	ctx, r := m.ctx, m.remote
	return func() tea.Msg {
		raw, err := r.ReadHumidity(ctx)
		if err != nil {
			return humidityErrMsg{err}
		}
		return humidityMsg{raw: raw, time: time.Now()}
	}
}

func (m Model) startMotor(run uint64) tea.Cmd {
	ctx, r := m.ctx, m.remote
	return func() tea.Msg {
		resp, err := r.StartMotor(ctx)
		if err != nil {
			return motorErrMsg{run: run, err: err}
		}
		return motorStartedMsg{run: run, resp: resp}
	}
}

func (m Model) clearAfterCooldown(run uint64) tea.Cmd {
	return tea.Tick(m.opts.Cooldown, func(time.Time) tea.Msg {
		return wateringDoneMsg{run: run}
	})
}

// ── Init / Update ────────────────────────────────────────────────────

// Init fires the first poll immediately; every poll re-arms the next one.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return pollTickMsg(time.Now())
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "w", "enter", " ":
			return m.water()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case pollTickMsg:
		if m.fetching {
			return m, m.pollTick()
		}
		m.fetching = true
		return m, tea.Batch(m.fetchHumidity(), m.pollTick())

	case humidityMsg:
		m.fetching = false
		m.reading = humidity.NewReading(msg.raw, msg.time)
		m.known = true
		m.history.Push(m.reading.Percent, msg.time)
		m.log.Debugw("humidity", "raw", msg.raw, "percent", m.reading.Percent)

	case humidityErrMsg:
		m.fetching = false
		m.log.Errorw("fetch humidity failed", "err", msg.err)

	case motorStartedMsg:
		if msg.run != m.run {
			return m, nil
		}
		m.log.Infow("motor started", "run", msg.run, "body", msg.resp)
		return m, m.clearAfterCooldown(msg.run)

	case motorErrMsg:
		m.log.Errorw("start motor failed", "run", msg.run, "err", msg.err)
		if msg.run == m.run {
			m.watering = false
		}

	case wateringDoneMsg:
		if msg.run == m.run {
			m.watering = false
		}

	case spinner.TickMsg:
		if !m.watering {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// water starts one watering cycle unless one is already running.
func (m Model) water() (tea.Model, tea.Cmd) {
	if m.watering {
		return m, nil
	}
	m.watering = true
	m.run++
	return m, tea.Batch(m.startMotor(m.run), m.spinner.Tick)
}
