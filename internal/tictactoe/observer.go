package tictactoe

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-tutorial/internal/entity"
)

// DiagnosticMessage - what every cell reports when clicked, whatever its position.
const DiagnosticMessage = "clicked a square"

// Observer - receives cell activations. It is the only side effect a click has.
type Observer interface {
	CellActivated(event entity.ActivationEvent)
}

// ObserverFunc - adapts a plain function to Observer.
type ObserverFunc func(event entity.ActivationEvent)

func (that ObserverFunc) CellActivated(event entity.ActivationEvent) {
	that(event)
}

// Observers - fans an activation out to several observers in order.
type Observers []Observer

func (that Observers) CellActivated(event entity.ActivationEvent) {
	for _, observer := range that {
		observer.CellActivated(event)
	}
}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver - writes DiagnosticMessage to the logger on each activation.
func NewLogObserver(logger *slog.Logger) Observer {
	return &logObserver{
		logger: logger.With("component", "grid"),
	}
}

func (that *logObserver) CellActivated(event entity.ActivationEvent) {
	that.logger.Info(DiagnosticMessage, "mount_id", event.MountID)
	that.logger.Debug("cell activated", "mount_id", event.MountID, "position", event.Position)
}
