package tui

type healthState int

const (
	healthUnknown healthState = iota
	healthHealthy
	healthUnhealthy
)

const heroTagline = "Estimate a sale price from five property attributes."

const (
	inputWidth         = 24
	minPanelWidth      = 40
	panelPadding       = 4
	historyPanelHeight = 8
	recentHistoryLimit = 20
	maxJobLogEntries   = 6
)
