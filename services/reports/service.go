package reports

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Report is an exported CSV ready to be served as a download.
type Report struct {
	Name       string
	Content    []byte
	ArchiveURL string
}

// Publisher builds reports and, when an archiver is configured, stores a copy.
type Publisher struct {
	Archiver Archiver
	Logger   *zap.Logger
}

// Publish renders the report. Archive failures are logged and never fail
// the download.
func (p *Publisher) Publish(ctx context.Context, report string, now time.Time, header []string, rows [][]string) (*Report, error) {
	content, err := BuildCSV(header, rows)
	if err != nil {
		return nil, err
	}
	out := &Report{Name: ReportName(report, now), Content: content}

	if p == nil || p.Archiver == nil {
		return out, nil
	}
	url, err := p.Archiver.Archive(ctx, out.Name, content)
	if err != nil {
		if p.Logger != nil {
			p.Logger.Warn("Report archive failed", zap.String("report", out.Name), zap.Error(err))
		}
		return out, nil
	}
	out.ArchiveURL = url
	if p.Logger != nil {
		p.Logger.Info("Report archived", zap.String("report", out.Name), zap.String("url", url))
	}
	return out, nil
}
