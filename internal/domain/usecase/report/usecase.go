package report

import (
	"context"

	"turbo-api/internal/domain/model"
)

type UseCase interface {
	// GenerateFeasibilityReport renders a PDF feasibility report for a combined wind result
	GenerateFeasibilityReport(ctx context.Context, data model.WindDataResponse) (*Document, error)
}

// Document is a rendered report ready to be sent as an attachment
type Document struct {
	FileName    string
	ContentType string
	Content     []byte
}
