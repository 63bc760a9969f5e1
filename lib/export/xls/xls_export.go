package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	requestapimodels "hr-requests-backend/models/api/request"
	dbmodels "hr-requests-backend/models/db"
)

type Provider interface {
	ExportRequest(rec dbmodels.Request, history []requestapimodels.HistoryEntryView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var summaryHeaders = []string{"Code", "Type", "Status", "Author", "Submitted"}
var itemHeaders = []string{"Employee", "From", "To", "Status", "HR note"}
var historyHeaders = []string{"Actor", "Action", "Note", "Date"}

func (i impl) ExportRequest(rec dbmodels.Request, history []requestapimodels.HistoryEntryView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close workbook")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, summaryHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write summary header")
	}
	row, err = writeSummary(f, sheet, rec, row)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write request summary")
	}

	if len(rec.Items) != 0 {
		row++
		row, err = writeHeader(f, sheet, row, itemHeaders)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write item header")
		}
		row, err = writeItems(f, sheet, rec.Items, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write line items")
		}
	}

	if len(history) != 0 {
		row++
		row, err = writeHeader(f, sheet, row, historyHeaders)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write history header")
		}
		_, err = writeHistory(f, sheet, history, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write history")
		}
	}

	f.SetSheetName(sheet, rec.Code)
	return f.WriteToBuffer()
}

func writeSummary(f *excelize.File, sheet string, rec dbmodels.Request, row int) (int, error) {
	row++
	if err := applyDataCellStyle(f, sheet, 1, row, len(summaryHeaders), row); err != nil {
		return row, err
	}
	values := []interface{}{
		rec.Code,
		rec.RequestTypeID.ToHuman(),
		rec.RequestStatusID.ToHuman(),
		fmt.Sprintf("%v (%v)", rec.AuthorName, rec.AuthorCode),
		rec.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	for idx, value := range values {
		if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
			return row, err
		}
	}
	return row, nil
}

func writeItems(f *excelize.File, sheet string, items []dbmodels.RequestItem, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(itemHeaders), row+len(items)); err != nil {
		return row, err
	}
	for _, item := range items {
		row++
		status := "approved"
		if !item.ItemStatus {
			status = "rejected"
		}
		values := []interface{}{
			fmt.Sprintf("%v (%v)", item.UserName, item.UserCode),
			item.StartDate.Format("2006-01-02"),
			item.EndDate.Format("2006-01-02"),
			status,
			item.NoteOfHR,
		}
		for idx, value := range values {
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}

func writeHistory(f *excelize.File, sheet string, history []requestapimodels.HistoryEntryView, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(historyHeaders), row+len(history)); err != nil {
		return row, err
	}
	for _, entry := range history {
		row++
		values := []interface{}{
			entry.UserNameApproval,
			entry.Action,
			entry.Note,
			entry.CreatedAt,
		}
		for idx, value := range values {
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
