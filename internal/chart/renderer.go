// Package chart renders the weekly activity chart: three stacked panels for
// sleep, calories, and workouts over the 7-day window.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/fittrack/fittrack/internal/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrNoData is returned when the renderer is invoked with an empty series.
// Callers are expected to check HasData first and skip rendering entirely.
var ErrNoData = errors.New("no data to render")

var (
	sleepColor    = color.RGBA{R: 50, G: 100, B: 220, A: 255}
	caloriesColor = color.RGBA{R: 220, G: 60, B: 50, A: 255}
	workoutColor  = color.RGBA{R: 60, G: 160, B: 70, A: 255}
)

// RenderWeekly draws the three-panel PNG from a prepared weekly series.
// Sleep and calories are line panels where NaN days leave gaps; workouts are
// bars where an empty day is a zero-height bar.
func RenderWeekly(series *domain.WeeklySeries, userID int64) ([]byte, error) {
	if !series.HasData {
		return nil, ErrNoData
	}

	sleepPanel, err := linePanel(series.Dates, series.Sleep, sleepColor, "Часы сна")
	if err != nil {
		return nil, fmt.Errorf("sleep panel: %w", err)
	}
	sleepPanel.Title.Text = fmt.Sprintf("Недельная активность (ID: %d)", userID)

	caloriesPanel, err := linePanel(series.Dates, series.Calories, caloriesColor, "Калории (ккал)")
	if err != nil {
		return nil, fmt.Errorf("calories panel: %w", err)
	}

	workoutPanel, err := barPanel(series.Dates, series.Workouts)
	if err != nil {
		return nil, fmt.Errorf("workout panel: %w", err)
	}

	img := vgimg.New(18*vg.Centimeter, 24*vg.Centimeter)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: 3, Cols: 1, PadY: 2 * vg.Millimeter}

	panels := [][]*plot.Plot{{sleepPanel}, {caloriesPanel}, {workoutPanel}}
	canvases := plot.Align(panels, tiles, dc)
	for i := range panels {
		panels[i][0].Draw(canvases[i][0])
	}

	var buf bytes.Buffer
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func linePanel(dates []string, values []float64, lineColor color.Color, yLabel string) (*plot.Plot, error) {
	p := plot.New()
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	p.NominalX(dates...)

	pts := presentPoints(values)
	if len(pts) > 0 {
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, err
		}
		line.Color = lineColor
		points.Color = lineColor
		p.Add(line, points)
	}
	return p, nil
}

func barPanel(dates []string, values []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Y.Label.Text = "Часы тренировок"
	p.Add(plotter.NewGrid())

	bars, err := plotter.NewBarChart(plotter.Values(values), 12*vg.Millimeter)
	if err != nil {
		return nil, err
	}
	bars.Color = workoutColor
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(dates...)
	return p, nil
}

// presentPoints drops NaN days so the line breaks where data is missing,
// keeping the x position aligned with the date axis.
func presentPoints(values []float64) plotter.XYs {
	var pts plotter.XYs
	for i, v := range values {
		if !math.IsNaN(v) {
			pts = append(pts, plotter.XY{X: float64(i), Y: v})
		}
	}
	return pts
}
