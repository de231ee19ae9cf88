package export

import (
	"io"
	"time"

	"restro-ledger/internal/pkg/errs"
	"restro-ledger/internal/usecase/queries"

	"github.com/xuri/excelize/v2"
)

const (
	ReservationsSheet = "Reservations"
	SummarySheet      = "Summary"

	checkInLayout  = "2006-01-02 15:04:05"
	checkOutLayout = "15:04:05"
)

var reservationColumns = []string{"Name", "Phone", "Seats Booked", "Check-In Time", "Checkout Status"}

// XLSXExporter renders the reservation table the staff sees into a workbook.
type XLSXExporter struct {
	loc *time.Location
}

func NewXLSXExporter(loc *time.Location) *XLSXExporter {
	if loc == nil {
		loc = time.UTC
	}
	return &XLSXExporter{loc: loc}
}

func (e *XLSXExporter) Export(w io.Writer, view *queries.LedgerView) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errs.Wrap(cerr, "failed to close workbook")
		}
	}()

	if err := f.SetSheetName("Sheet1", ReservationsSheet); err != nil {
		return errs.Wrap(err, "failed to rename sheet")
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errs.Wrap(err, "failed to create header style")
	}

	if err := writeRow(f, ReservationsSheet, 1, toAny(reservationColumns)); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(reservationColumns), 1)
	if err := f.SetCellStyle(ReservationsSheet, "A1", last, bold); err != nil {
		return errs.Wrap(err, "failed to style header")
	}

	for i, r := range view.Reservations {
		row := []any{
			r.Name,
			r.Phone,
			r.GuestCount,
			r.CheckInTime.In(e.loc).Format(checkInLayout),
			e.checkoutStatus(r),
		}
		if err := writeRow(f, ReservationsSheet, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return errs.Wrap(err, "failed to create summary sheet")
	}
	summary := [][]any{
		{"Total Seats", view.TotalSeats},
		{"Seats Left", view.SeatsLeft},
		{"Reservations", len(view.Reservations)},
	}
	for i, row := range summary {
		if err := writeRow(f, SummarySheet, i+1, row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return errs.Wrap(err, "failed to write workbook")
	}
	return nil
}

func (e *XLSXExporter) checkoutStatus(r *queries.ReservationView) string {
	if !r.CheckedOut || r.CheckOutTime == nil {
		return "Not Checked Out"
	}
	return "Checked out at " + r.CheckOutTime.In(e.loc).Format(checkOutLayout)
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return errs.Wrap(err, "invalid cell coordinates")
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return errs.Wrapf(err, "failed to set %s!%s", sheet, cell)
		}
	}
	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
