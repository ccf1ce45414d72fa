// Package report writes diagnostic workbooks comparing experimental and
// simulated harmonics. It is a consumer of loaded tables and computed results
// and is never needed to produce the metric itself.
package report

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/cwbudde/algo-harmcompare/measure/lsq"
	"github.com/cwbudde/algo-harmcompare/series"
)

// MaxCharts is the number of harmonic indices (dc included) that get a data
// sheet and chart.
const MaxCharts = 6

// SummarySheet is the name of the first sheet.
const SummarySheet = "Summary"

var summaryHeader = []interface{}{
	"harmonic", "ls", "weighted",
	"exp_energy", "exp_rms", "exp_peak",
	"sim_energy", "sim_rms", "sim_peak",
}

// SheetName returns the data sheet name for harmonic index i.
func SheetName(i int) string {
	if i == 0 {
		return "dc"
	}
	return "h" + strconv.Itoa(i)
}

// WriteWorkbook writes an .xlsx file to path with a summary sheet and one
// chart sheet per harmonic index up to MaxCharts.
func WriteWorkbook(path string, exp, sim *series.Table, res lsq.Result) error {
	if exp.Rows() != sim.Rows() {
		return &lsq.AlignmentError{Harmonic: -1, Basis: exp.Rows(), Other: sim.Rows()}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := writeSummary(f, exp, sim, res); err != nil {
		return err
	}

	n := len(res.Values)
	if n > MaxCharts {
		n = MaxCharts
	}
	for i := range n {
		if err := writeHarmonic(f, i, exp, sim); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}
	return nil
}

func writeSummary(f *excelize.File, exp, sim *series.Table, res lsq.Result) error {
	if err := f.SetSheetRow(SummarySheet, "A1", &summaryHeader); err != nil {
		return fmt.Errorf("report: summary header: %w", err)
	}
	for i := range res.Values {
		es := Summarize(exp.Harmonic(i))
		ss := Summarize(sim.Harmonic(i))
		row := []interface{}{
			SheetName(i), res.Raw[i], res.Values[i],
			es.Energy, es.RMS, es.Peak,
			ss.Energy, ss.RMS, ss.Peak,
		}
		if err := f.SetSheetRow(SummarySheet, "A"+strconv.Itoa(i+2), &row); err != nil {
			return fmt.Errorf("report: summary row %d: %w", i, err)
		}
	}
	total := []interface{}{"total", "", res.Total}
	if err := f.SetSheetRow(SummarySheet, "A"+strconv.Itoa(len(res.Values)+2), &total); err != nil {
		return fmt.Errorf("report: summary total: %w", err)
	}
	return nil
}

func writeHarmonic(f *excelize.File, i int, exp, sim *series.Table) error {
	name := SheetName(i)
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("report: sheet %s: %w", name, err)
	}

	header := []interface{}{"time", "experimental", "simulated"}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("report: sheet %s header: %w", name, err)
	}

	tm := exp.Time()
	ev := exp.Harmonic(i)
	sv := sim.Harmonic(i)
	for k := range tm {
		row := []interface{}{tm[k], ev[k], sv[k]}
		if err := f.SetSheetRow(name, "A"+strconv.Itoa(k+2), &row); err != nil {
			return fmt.Errorf("report: sheet %s row %d: %w", name, k, err)
		}
	}

	last := strconv.Itoa(len(tm) + 1)
	ref := func(col string) string {
		return fmt.Sprintf("'%s'!$%s$2:$%s$%s", name, col, col, last)
	}
	chart := &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("'%s'!$B$1", name),
				Categories: ref("A"),
				Values:     ref("B"),
				Marker:     excelize.ChartMarker{Symbol: "none"},
			},
			{
				Name:       fmt.Sprintf("'%s'!$C$1", name),
				Categories: ref("A"),
				Values:     ref("C"),
				Marker:     excelize.ChartMarker{Symbol: "none"},
			},
		},
		Title: []excelize.RichTextRun{{Text: "harmonic " + name}},
	}
	if err := f.AddChart(name, "E2", chart); err != nil {
		return fmt.Errorf("report: chart %s: %w", name, err)
	}
	return nil
}
