package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"hr-requests-backend/models"
	dbmodels "hr-requests-backend/models/db"
)

// GenerateLetter renders the printable letter for warning, termination and
// resignation requests.
func GenerateLetter(rec dbmodels.Request) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateLetter panic recover: %v", r)
		}
	}()
	if !rec.RequestTypeID.IsLetter() {
		return nil, errors.Errorf("request type %v has no printable letter", rec.RequestTypeID)
	}
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, rec.RequestTypeID.ToHuman(), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Ref: %s", rec.Code), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Issued: %s", rec.CreatedAt.Format("2006-01-02")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	_, lineHt := pdf.GetFontSize()
	html := pdf.HTMLBasicNew()
	html.Write(lineHt, letterBody(rec))

	pdf.Ln(16)
	pdf.CellFormat(0, 8, fmt.Sprintf("Prepared by: %s", rec.AuthorName), "", 1, "L", false, 0, "")
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func letterBody(rec dbmodels.Request) string {
	switch rec.RequestTypeID {
	case models.RequestTypeWarningLetter:
		if rec.Details.Warning != nil {
			return fmt.Sprintf("This letter serves as warning level %d for the violation recorded on %s:<br><br>%s",
				rec.Details.Warning.WarningLevel,
				rec.Details.Warning.ViolationDate.Format("2006-01-02"),
				rec.Details.Warning.Violation)
		}
	case models.RequestTypeTerminationLetter:
		if rec.Details.Termination != nil {
			return fmt.Sprintf("Employment is terminated effective %s.<br><br>Reason: %s",
				rec.Details.Termination.TerminationDate.Format("2006-01-02"),
				rec.Details.Termination.Reason)
		}
	case models.RequestTypeResignationLetter:
		if rec.Details.Resignation != nil {
			return fmt.Sprintf("Resignation accepted, last working date %s.<br><br>Reason: %s<br><br>Hand over: %s",
				rec.Details.Resignation.LastWorkingDate.Format("2006-01-02"),
				rec.Details.Resignation.Reason,
				rec.Details.Resignation.HandOver)
		}
	}
	return ""
}
