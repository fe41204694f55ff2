package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"turbo-api/internal/domain/model"
	"turbo-api/pkg/log"
	"turbo-api/pkg/msg"

	"github.com/go-pdf/fpdf"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

const (
	footerText = "This report is generated by Turbo Wind Intelligence Portal. " +
		"Data is sourced from OpenWeatherMap API and analyzed using proprietary algorithms. " +
		"For detailed site assessment, please consult with wind energy experts."

	contentWidth = 180.0
	labelWidth   = 60.0
	rowHeight    = 8.0
)

var (
	brandColor  = [3]int{0, 150, 136}
	shadedColor = [3]int{245, 245, 245}
)

type reportUseCase struct {
	ratedPowerKW float64
	clock        clockwork.Clock
}

func NewReportUseCase(ratedPowerKW float64, clock clockwork.Clock) UseCase {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &reportUseCase{ratedPowerKW: ratedPowerKW, clock: clock}
}

func (uc *reportUseCase) GenerateFeasibilityReport(ctx context.Context, data model.WindDataResponse) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle("Turbo Wind Energy Feasibility Report", false)
	pdf.SetCreator("turbo-api", false)
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	writeTitle(pdf, tr, data, now)
	for _, s := range buildSections(data, uc.ratedPowerKW) {
		writeSection(pdf, tr, s)
	}
	writeFooter(pdf, tr)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Error(msg.GetMessage("report.failed", data.LocationName, err))
		return nil, fmt.Errorf("render report for %s: %w", data.LocationName, err)
	}

	doc := &Document{
		FileName:    FileName(data.LocationName),
		ContentType: "application/pdf",
		Content:     buf.Bytes(),
	}
	log.Info(msg.GetMessage("report.generated", data.LocationName, len(doc.Content)), zap.String("file", doc.FileName))
	return doc, nil
}

func writeTitle(pdf *fpdf.Fpdf, tr func(string) string, data model.WindDataResponse, now time.Time) {
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(brandColor[0], brandColor[1], brandColor[2])
	pdf.CellFormat(contentWidth, 12, "Turbo Wind Energy Feasibility Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 15)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(contentWidth, 10, tr(subtitle(data)), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentWidth, 8, generatedLine(now), "", 1, "C", false, 0, "")
	pdf.Ln(8)
}

func writeSection(pdf *fpdf.Fpdf, tr func(string) string, s section) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(brandColor[0], brandColor[1], brandColor[2])
	pdf.CellFormat(contentWidth, 10, s.title, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	if s.text != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(contentWidth, 6, tr(s.text), "", "J", false)
	}

	pdf.SetFillColor(shadedColor[0], shadedColor[1], shadedColor[2])
	for i, r := range s.rows {
		shaded := i%2 == 0
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(labelWidth, rowHeight, tr(r.label), "1", 0, "L", shaded, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(contentWidth-labelWidth, rowHeight, tr(r.value), "1", 1, "L", shaded, 0, "")
	}
	pdf.Ln(6)
}

func writeFooter(pdf *fpdf.Fpdf, tr func(string) string) {
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.MultiCell(contentWidth, 4, tr(footerText), "", "C", false)
}
