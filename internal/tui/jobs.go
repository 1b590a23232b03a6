package tui

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type jobKind string

const (
	jobKindHealth  jobKind = "health"
	jobKindPredict jobKind = "predict"
	jobKindHistory jobKind = "history"
)

type jobStatus string

const (
	jobStatusRunning   jobStatus = "running"
	jobStatusSucceeded jobStatus = "succeeded"
	jobStatusFailed    jobStatus = "failed"
)

type jobRecord struct {
	ID          string
	Kind        jobKind
	Status      jobStatus
	StartedAt   time.Time
	CompletedAt time.Time
	Err         string
}

type jobSignalMsg struct {
	Record jobRecord
}

type jobResultEnvelope struct {
	Record  jobRecord
	Payload tea.Msg
}

type jobRunner func(context.Context) (tea.Msg, error)

// jobBus hands out ids and wraps runners so every async task reports a
// start signal and a completion envelope back into the update loop.
type jobBus struct {
	counter int64
}

func (b *jobBus) nextID(kind jobKind) string {
	return fmt.Sprintf("%s-%d", kind, atomic.AddInt64(&b.counter, 1))
}

func (b *jobBus) Start(kind jobKind, runner jobRunner) tea.Cmd {
	id := b.nextID(kind)
	started := time.Now()
	startCmd := func() tea.Msg {
		return jobSignalMsg{Record: jobRecord{ID: id, Kind: kind, Status: jobStatusRunning, StartedAt: started}}
	}

	runCmd := func() tea.Msg {
		payload, err := runner(context.Background())
		record := jobRecord{
			ID:          id,
			Kind:        kind,
			Status:      jobStatusSucceeded,
			StartedAt:   started,
			CompletedAt: time.Now(),
		}
		if err != nil {
			record.Status = jobStatusFailed
			record.Err = err.Error()
		}
		log.Printf("[jobs] %s %s (duration=%s, err=%v)", kind, record.Status, record.CompletedAt.Sub(started), err)
		return jobResultEnvelope{Record: record, Payload: payload}
	}

	return tea.Sequence(startCmd, runCmd)
}
