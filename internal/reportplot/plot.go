// Package reportplot renders the height-function profile and the RREF
// pivot-width profile as go-echarts HTML charts, the same way the teacher
// repo's Additionnals/plot_pacs_sweep.go renders sweep metrics.
package reportplot

import (
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// HeightProfile renders h(x) for x = 0..n as a line chart to path.
func HeightProfile(path string, profile []int) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Height function h(x)"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x (photon prefix)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "h(x)"}),
	)
	xs := make([]string, len(profile))
	items := make([]opts.LineData, len(profile))
	for x, v := range profile {
		xs[x] = itoa(x)
		items[x] = opts.LineData{Value: v}
	}
	line.SetXAxis(xs).AddSeries("h(x)", items)
	return renderTo(path, line)
}

// PivotWidths renders, per RREF row, the column index of its leading
// non-identity entry, as a bar chart to path.
func PivotWidths(path string, leadingColumns []int) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "RREF leading-column profile"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "row"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "leading column"}),
	)
	xs := make([]string, len(leadingColumns))
	items := make([]opts.BarData, len(leadingColumns))
	for i, v := range leadingColumns {
		xs[i] = itoa(i)
		items[i] = opts.BarData{Value: v}
	}
	bar.SetXAxis(xs).AddSeries("leading column", items)
	return renderTo(path, bar)
}

func renderTo(path string, c interface{ Render(w ...io.Writer) error }) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return c.Render(f)
}

func itoa(x int) string {
	if x == 0 {
		return "0"
	}
	neg := x < 0
	if neg {
		x = -x
	}
	var buf [20]byte
	i := len(buf)
	for x > 0 {
		i--
		buf[i] = byte('0' + x%10)
		x /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
