package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/homescout/internal/history"
	"github.com/csheth/homescout/internal/predictor"
)

func healthProbeJob(client *predictor.Client) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		return healthResultMsg{healthy: client.CheckHealth(parent)}, nil
	}
}

func predictJob(client *predictor.Client, requestID string, features predictor.Features) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		prediction, err := client.Predict(parent, requestID, features)
		if err != nil {
			return predictResultMsg{requestID: requestID, err: err}, err
		}
		return predictResultMsg{requestID: requestID, prediction: prediction}, nil
	}
}

func appendHistoryJob(path string, entry history.Entry) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		if err := history.Append(path, []history.Entry{entry}); err != nil {
			return historySavedMsg{err: err}, err
		}
		return historySavedMsg{entry: entry}, nil
	}
}

// describeError maps client failures onto the single user-visible message
// shown under the form.
func describeError(err error) string {
	switch {
	case errors.Is(err, predictor.ErrTimeout):
		return "The prediction service took too long to answer. Try again in a moment."
	case errors.Is(err, predictor.ErrBadPayload):
		return "The prediction service answered with an unexpected payload."
	default:
		var statusErr *predictor.StatusError
		if errors.As(err, &statusErr) {
			return statusErr.Error()
		}
		return err.Error()
	}
}
