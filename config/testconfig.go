// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

type TestConfig struct {
	chartConfig ChartConfig
}

// Test configurations are not stored and not thread safe.
// Intended only for use in unit tests.
func NewTestConfig() Config {
	return &TestConfig{
		chartConfig: NewChartConfig(),
	}
}

func (t *TestConfig) GetAppName() string {
	return "test"
}

func (t *TestConfig) Lock() (*ChartConfig, error) {
	return &t.chartConfig, nil
}

func (t *TestConfig) Unlock(c *ChartConfig) error {
	t.chartConfig = *c
	return nil
}

func (t *TestConfig) Copy() (ChartConfig, error) {
	return t.chartConfig.deepCopy(), nil
}
