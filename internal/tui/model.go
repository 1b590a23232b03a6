package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/homescout/internal/form"
	"github.com/csheth/homescout/internal/history"
	"github.com/csheth/homescout/internal/predictor"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Client      *predictor.Client
	HistoryPath string
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	inputs := make([]textinput.Model, len(form.Fields))
	for i, field := range form.Fields {
		spec := form.SpecFor(field)
		input := textinput.New()
		input.Placeholder = spec.Placeholder
		input.CharLimit = 12
		input.Width = inputWidth
		if i == 0 {
			input.Focus()
		}
		inputs[i] = input
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	historyView := viewport.New(64, historyPanelHeight)

	m := &model{
		config:      config,
		inputs:      inputs,
		spinner:     spin,
		historyView: historyView,
		fieldErrors: map[form.Field]string{},
		health:      healthUnknown,
		jobs:        &jobBus{},
		infoMessage: "Fill in the property details and press Enter to estimate.",
	}
	if config.HistoryPath != "" {
		// Missing file just means an empty history.
		if entries, err := history.Load(config.HistoryPath); err == nil {
			m.entries = entries
		}
	}
	return m
}

type model struct {
	config Config

	inputs      []textinput.Model
	focusIdx    int
	spinner     spinner.Model
	historyView viewport.Model

	fieldErrors map[form.Field]string
	loading     bool
	inflightID  string
	inflight    predictor.Features
	result      *predictor.Prediction
	apiError    string
	health      healthState

	entries        []history.Entry
	historyVisible bool
	historyDirty   bool

	jobs   *jobBus
	jobLog []jobRecord

	infoMessage string
	width       int
}

type healthResultMsg struct {
	healthy bool
}

type predictResultMsg struct {
	requestID  string
	prediction predictor.Prediction
	err        error
}

type historySavedMsg struct {
	entry history.Entry
	err   error
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.jobs.Start(jobKindHealth, healthProbeJob(m.config.Client)),
	)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.historyView.Width = m.panelWidth()
		m.historyDirty = true
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case jobSignalMsg:
		m.recordJob(msg.Record)
		return m, nil
	case jobResultEnvelope:
		m.recordJob(msg.Record)
		if msg.Payload == nil {
			return m, nil
		}
		return m.Update(msg.Payload)
	case healthResultMsg:
		if msg.healthy {
			m.health = healthHealthy
		} else {
			m.health = healthUnhealthy
		}
		return m, nil
	case predictResultMsg:
		return m.handlePredictResult(msg)
	case historySavedMsg:
		// Failures already land in the job log; the displayed result stays.
		return m, nil
	}
	return m, nil
}

func (m *model) handlePredictResult(msg predictResultMsg) (tea.Model, tea.Cmd) {
	if msg.requestID != m.inflightID {
		// Completion for a request the form has moved past.
		return m, nil
	}
	m.loading = false
	m.inflightID = ""

	if msg.err != nil {
		m.result = nil
		m.apiError = describeError(msg.err)
		m.infoMessage = "Adjust the details or press Enter to retry."
		return m, nil
	}

	prediction := msg.prediction
	m.result = &prediction
	m.apiError = ""
	m.infoMessage = "Estimate ready. Edit any field to start over."

	entry := history.Entry{
		RequestID: msg.requestID,
		Features:  m.inflight,
		Price:     prediction.Price,
		Currency:  prediction.Currency,
		CreatedAt: time.Now(),
	}
	m.entries = append(m.entries, entry)
	m.historyDirty = true
	if m.config.HistoryPath == "" {
		return m, nil
	}
	return m, m.jobs.Start(jobKindHistory, appendHistoryJob(m.config.HistoryPath, entry))
}

func (m *model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab, tea.KeyDown:
		m.moveFocus(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.moveFocus(-1)
		return m, nil
	case tea.KeyEnter:
		return m, m.submit()
	case tea.KeyPgUp, tea.KeyPgDown:
		if m.historyVisible {
			var cmd tea.Cmd
			m.historyView, cmd = m.historyView.Update(key)
			return m, cmd
		}
		return m, nil
	}

	switch key.String() {
	case "ctrl+s":
		m.loadSample()
		return m, nil
	case "ctrl+r":
		m.historyVisible = !m.historyVisible
		m.historyDirty = true
		return m, nil
	}

	// Everything else edits the focused field.
	idx := m.focusIdx
	before := m.inputs[idx].Value()
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(key)
	if m.inputs[idx].Value() != before {
		m.fieldTouched(idx)
	}
	return m, cmd
}

// fieldTouched revalidates the edited field and clears any stale outcome,
// so a prior estimate or API error never lingers next to new input.
func (m *model) fieldTouched(idx int) {
	field := form.Fields[idx]
	if msg := form.Validate(field, m.inputs[idx].Value()); msg != "" {
		m.fieldErrors[field] = msg
	} else {
		delete(m.fieldErrors, field)
	}
	m.result = nil
	m.apiError = ""
}

func (m *model) moveFocus(delta int) {
	m.inputs[m.focusIdx].Blur()
	m.focusIdx = (m.focusIdx + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focusIdx].Focus()
}

func (m *model) submit() tea.Cmd {
	if m.loading {
		m.infoMessage = "A prediction is already in flight."
		return nil
	}

	values := m.values()
	m.fieldErrors = form.ValidateAll(values)
	if len(m.fieldErrors) > 0 {
		m.result = nil
		m.apiError = ""
		m.infoMessage = "Fix the highlighted fields before submitting."
		return nil
	}

	features, err := form.ParseFeatures(values)
	if err != nil {
		m.result = nil
		m.apiError = err.Error()
		return nil
	}

	requestID := predictor.NewRequestID()
	m.loading = true
	m.inflightID = requestID
	m.inflight = features
	m.result = nil
	m.apiError = ""
	m.infoMessage = "Requesting an estimate…"
	return tea.Batch(
		m.spinner.Tick,
		m.jobs.Start(jobKindPredict, predictJob(m.config.Client, requestID, features)),
	)
}

func (m *model) loadSample() {
	for i, field := range form.Fields {
		m.inputs[i].SetValue(form.Sample[field])
	}
	m.fieldErrors = map[form.Field]string{}
	m.result = nil
	m.apiError = ""
	m.infoMessage = "Sample property loaded. Press Enter to estimate."
}

func (m *model) values() map[form.Field]string {
	values := map[form.Field]string{}
	for i, field := range form.Fields {
		values[field] = m.inputs[i].Value()
	}
	return values
}

func (m *model) recordJob(record jobRecord) {
	for i := range m.jobLog {
		if m.jobLog[i].ID == record.ID {
			m.jobLog[i] = record
			return
		}
	}
	m.jobLog = append(m.jobLog, record)
	if len(m.jobLog) > maxJobLogEntries {
		m.jobLog = m.jobLog[len(m.jobLog)-maxJobLogEntries:]
	}
}

func (m *model) panelWidth() int {
	width := m.width - panelPadding
	if width < minPanelWidth {
		width = minPanelWidth
	}
	return width
}
