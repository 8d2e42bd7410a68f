package domain

import (
	"io"
	"log/slog"
)

// QualityIssue classifies a data-quality repair performed on an item.
type QualityIssue string

const (
	IssueReversedRange QualityIssue = "reversed_range"
)

// QualityEvent records one data-quality repair.
type QualityEvent struct {
	ItemID string
	Kind   ItemKind
	Issue  QualityIssue
}

// QualityObserver receives data-quality events from normalization.
type QualityObserver interface {
	ObserveQuality(event QualityEvent)
}

// NoopQualityObserver ignores all events.
type NoopQualityObserver struct{}

func (NoopQualityObserver) ObserveQuality(QualityEvent) {}

type logQualityObserver struct {
	logger *slog.Logger
}

// NewLogQualityObserver writes data-quality events to the provided writer.
func NewLogQualityObserver(w io.Writer) QualityObserver {
	if w == nil {
		return NoopQualityObserver{}
	}
	return &logQualityObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn})),
	}
}

func (o *logQualityObserver) ObserveQuality(event QualityEvent) {
	o.logger.Warn("item_quality",
		"item_id", event.ItemID,
		"kind", string(event.Kind),
		"issue", string(event.Issue),
	)
}
