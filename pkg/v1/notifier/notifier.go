package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MichalMitros/catalog-importer/internal/platform/models"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// ReportNotifier sends import reports.
type ReportNotifier struct {
	sender Sender
}

// NewReportNotifier returns new ReportNotifier using provided sender for sending messages.
func NewReportNotifier(sender Sender) ReportNotifier {
	return ReportNotifier{
		sender: sender,
	}
}

// NotifyImportFinished sends ImportFinished event built from report.
func (n ReportNotifier) NotifyImportFinished(ctx context.Context, report *models.ImportReport) error {
	event := ImportFinished{
		RunID:                 report.RunID.String(),
		StartedAt:             report.StartedAt,
		FinishedAt:            report.FinishedAt,
		DryRun:                report.DryRun,
		Committed:             report.Committed,
		Inserted:              report.Inserted(),
		SkippedDuplicates:     report.SkippedDuplicates(),
		SkippedNoManufacturer: report.SkippedNoManufacturer(),
	}

	msg, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("can't marshal import finished event: %w", err)
	}

	return n.sender.Send(ctx, msg)
}
