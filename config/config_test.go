// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	c := ChartConfig{
		Orientation: "diagonal",
		Legend:      LegendConfig{Position: "somewhere", XOffsetDp: -1},
		XAxis:       XAxisConfig{Position: "TOP"},
		LeftAxis:    AxisConfig{SpaceTop: -0.5},
		Candle:      CandleConfig{BodySpace: 0.8, ShadowWidthDp: -2},
		Bar:         BarConfig{GroupSpace: -1, BarSpace: 2},
	}
	c.Sanitize()
	assert.Equal(t, "vertical", c.Orientation)
	assert.Equal(t, "below-left", c.Legend.Position)
	assert.Equal(t, float32(0), c.Legend.XOffsetDp)
	assert.Equal(t, "top", c.XAxis.Position)
	assert.Equal(t, float32(0), c.LeftAxis.SpaceTop)
	assert.Equal(t, float32(maxBodySpace), c.Candle.BodySpace)
	assert.Equal(t, float32(0), c.Candle.ShadowWidthDp)
	assert.Equal(t, float32(0), c.Bar.GroupSpace)
	assert.Equal(t, float32(maxBarSpace), c.Bar.BarSpace)
	assert.Equal(t, float32(1), c.Zoom.MaxScaleX)
	assert.Equal(t, float32(1), c.Zoom.MaxScaleY)
}

func TestSanitizeKeepsDefaults(t *testing.T) {
	c := NewChartConfig()
	sanitized := NewChartConfig()
	sanitized.Sanitize()
	assert.True(t, cmp.Equal(c, sanitized), cmp.Diff(c, sanitized))
}

func TestFileConfigDefaults(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "chart.yaml")
	c := NewFileConfig(fileName)
	chartConfig, err := c.Copy()
	assert.NoError(t, err)
	assert.True(t, cmp.Equal(NewChartConfig(), chartConfig))
	// Nothing is written as long as nothing was changed.
	_, err = os.Stat(fileName)
	assert.True(t, os.IsNotExist(err))
}

func TestFileConfigWriteRead(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "sub", "chart.yaml")
	c := NewFileConfig(fileName)
	chartConfig, err := c.Lock()
	assert.NoError(t, err)
	chartConfig.Orientation = "horizontal"
	chartConfig.InvertY = true
	chartConfig.Bar.GroupSpace = 0.2
	assert.NoError(t, c.Unlock(chartConfig))

	_, err = os.Stat(fileName)
	assert.NoError(t, err)
	_, err = os.Stat(fileName + ".tmp")
	assert.True(t, os.IsNotExist(err))

	other := NewFileConfig(fileName)
	read, err := other.Copy()
	assert.NoError(t, err)
	assert.Equal(t, "horizontal", read.Orientation)
	assert.True(t, read.InvertY)
	assert.Equal(t, float32(0.2), read.Bar.GroupSpace)
	assert.Equal(t, NewChartConfig().Candle, read.Candle)
}

func TestFileConfigNewerVersion(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "chart.yaml")
	assert.NoError(t, os.WriteFile(fileName, []byte("fileversion: 99\n"), 0600))
	c := NewFileConfig(fileName)
	_, err := c.Copy()
	assert.Error(t, err)
	_, err = c.Lock()
	assert.Error(t, err)
}

func TestFileConfigInvalidYaml(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "chart.yaml")
	assert.NoError(t, os.WriteFile(fileName, []byte("fileversion: [\n"), 0600))
	_, err := NewFileConfig(fileName).Copy()
	assert.Error(t, err)
}

func TestCopyIsIndependent(t *testing.T) {
	c := NewTestConfig()
	chartConfig, err := c.Copy()
	assert.NoError(t, err)
	chartConfig.LogEnabled = true
	again, err := c.Copy()
	assert.NoError(t, err)
	assert.False(t, again.LogEnabled)
	assert.Equal(t, "test", c.GetAppName())
}
