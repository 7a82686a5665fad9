// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartviz

import (
	"context"
	"fmt"
	"log"
	"maycharts/chartdata"
	"maycharts/chartplot"
	"maycharts/config"
	"maycharts/widgets"
	"math/rand"
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/ericlagergren/decimal"
)

const (
	candleResolution     = time.Minute
	tickInterval         = 500 * time.Millisecond
	numDemoCandles       = 120
	numDemoCategories    = 12
	movingAveragePeriods = 20
)

type ChartWindow struct {
	win  *app.Window
	size widgets.DpPoint
}

// ChartApp shows a candle chart fed by a simulated price source above a
// grouped bar chart.
type ChartApp struct {
	window       ChartWindow
	config       config.Config
	chartConfig  config.ChartConfig
	feed         *PriceFeed
	prices       []chartdata.PriceData
	candleChart  *chartplot.CandleChart
	barChart     *chartplot.BarChart
	chartLayouts []layout.FlexChild
	terminateWg  *sync.WaitGroup
}

func NewChartApp(c config.Config) *ChartApp {
	return &ChartApp{
		window: ChartWindow{
			size: widgets.DpPoint{X: 1280, Y: 1024},
		},
		config:      c,
		terminateWg: new(sync.WaitGroup),
	}
}

// Initialize reads the configuration and sets up both charts with demo data.
func (a *ChartApp) Initialize() error {
	chartConfig, err := a.config.Copy()
	if err != nil {
		return fmt.Errorf("failed to read configuration: %v", err)
	}
	a.chartConfig = chartConfig
	theme := widgets.NewDarkChartTheme()
	if chartConfig.LightTheme {
		theme = widgets.NewLightChartTheme()
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	startPrice := decimal.New(10000, 2)
	a.prices = NewDemoPrices(r, startPrice, time.Now(), numDemoCandles, candleResolution)
	lastClose := startPrice
	if len(a.prices) > 0 {
		lastClose = a.prices[len(a.prices)-1].ClosePrice
	}
	a.feed = NewPriceFeed(lastClose, candleResolution, tickInterval)

	candleSet := chartdata.NewCandleDataSet("demo", chartdata.CandlesFromPrices(a.prices))
	candleSet.SetColors(theme.CandleColors[0])
	a.candleChart = chartplot.NewCandleChart(&chartdata.CandleData{DataSets: []*chartdata.CandleDataSet{candleSet}}, theme)
	a.candleChart.ApplyConfig(chartConfig)
	a.updateOverlays()

	barData := NewDemoBarData(r, []string{"2021", "2022", "2023"}, numDemoCategories)
	for j, set := range barData.DataSets {
		set.SetColors(theme.BarColors[j%len(theme.BarColors)])
	}
	a.barChart = chartplot.NewBarChart(chartplot.OrientationFromString(chartConfig.Orientation), barData, theme)
	a.barChart.ApplyConfig(chartConfig)

	a.chartLayouts = []layout.FlexChild{
		layout.Flexed(0.6, a.candleChart.Layout),
		layout.Flexed(0.4, a.barChart.Layout),
	}
	return nil
}

func (a *ChartApp) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	a.createWindows()
	a.terminateWg.Add(1)
	go func() {
		defer a.terminateWg.Done()
		a.feed.Run(ctx, a.Invalidate)
	}()
	err := a.handleEvents()
	if err != nil {
		log.Printf("window closed with error: %v", err)
	}
	cancel()
	a.terminate()
}

func (a *ChartApp) Invalidate() {
	a.window.win.Invalidate()
}

func (a *ChartApp) createWindows() {
	a.window.win = app.NewWindow(
		app.Title(a.config.GetAppName()),
		app.Size(a.window.size.X, a.window.size.Y),
	)
}

func (a *ChartApp) handleEvents() error {
	var ops op.Ops

	for {
		switch e := a.window.win.NextEvent().(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			a.window.size.X = unit.Dp(float32(e.Size.X) / gtx.Metric.PxPerDp)
			a.window.size.Y = unit.Dp(float32(e.Size.Y) / gtx.Metric.PxPerDp)
			a.updatePrices()
			layout.Flex{Axis: layout.Vertical}.Layout(gtx, a.chartLayouts...)
			e.Frame(gtx.Ops)
		case system.DestroyEvent:
			return e.Err
		}
	}
}

// updatePrices merges pending ticks into the candles. Needs to be called on
// the UI goroutine.
func (a *ChartApp) updatePrices() {
	var changed bool
	a.prices, changed = a.feed.Consolidate(a.prices)
	if !changed {
		return
	}
	set := a.candleChart.Data.DataSets[0]
	set.Entries = chartdata.CandlesFromPrices(a.prices)
	a.updateOverlays()
}

func (a *ChartApp) updateOverlays() {
	set := a.candleChart.Data.DataSets[0]
	a.candleChart.Overlays = []chartplot.OverlayLine{
		{
			Entries: chartdata.MovingAverage(set, movingAveragePeriods),
			Color:   a.candleChart.Theme.HighlightColor,
		},
	}
}

func (a *ChartApp) saveConfiguration() error {
	chartConfig, err := a.config.Lock()
	if err != nil {
		return err
	}
	*chartConfig = a.chartConfig
	return a.config.Unlock(chartConfig)
}

func (a *ChartApp) terminate() {
	err := a.saveConfiguration()
	if err != nil {
		log.Printf("error saving configuration: %v", err)
	}
	a.terminateWg.Wait()
}
