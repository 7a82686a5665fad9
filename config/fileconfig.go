// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

const AppName = "maycharts"
const configFileName = "chartconfig.yaml"
const configFileVersion = 1

type FileConfig struct {
	fileName         string
	loaded           bool
	version          VersionConfig
	chartConfig      ChartConfig
	chartConfigMutex sync.Mutex
}

type VersionConfig struct {
	FileVersion int
}

// NewFileConfig uses the given configuration file. If fileName is empty,
// the file is located in the user configuration directory.
func NewFileConfig(fileName string) Config {
	return &FileConfig{
		fileName: fileName,
		version: VersionConfig{
			FileVersion: configFileVersion,
		},
		chartConfig: NewChartConfig(),
	}
}

func (f *FileConfig) GetAppName() string {
	return AppName
}

// Locks access to the configuration and returns a copy which can be modified.
// Unlock needs to be called afterwards, if no error was returned.
func (f *FileConfig) Lock() (*ChartConfig, error) {
	f.chartConfigMutex.Lock()
	if !f.loaded {
		err := f.read()
		if err != nil {
			f.chartConfigMutex.Unlock()
			return nil, err
		}
	}
	chartConfigCopy := f.chartConfig.deepCopy()
	return &chartConfigCopy, nil
}

// Update the configuration and unlock access.
// If the configuration was changed, the configuration will be written before unlocking.
func (f *FileConfig) Unlock(c *ChartConfig) error {
	var err error
	if !cmp.Equal(f.chartConfig, *c) {
		f.chartConfig = *c
		err = f.write()
	}
	f.chartConfigMutex.Unlock()
	return err
}

func (f *FileConfig) Copy() (ChartConfig, error) {
	f.chartConfigMutex.Lock()
	defer f.chartConfigMutex.Unlock()
	if !f.loaded {
		err := f.read()
		if err != nil {
			return ChartConfig{}, err
		}
	}
	return f.chartConfig.deepCopy(), nil
}

func (f *FileConfig) getFileName() (string, error) {
	if len(f.fileName) > 0 {
		return f.fileName, nil
	}
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("unable to determine configuration path: %v", err)
	}
	return filepath.Join(userConfigDir, f.GetAppName(), configFileName), nil
}

func (f *FileConfig) read() error {
	fileName, err := f.getFileName()
	if err != nil {
		return err
	}
	if _, err := os.Stat(fileName); os.IsNotExist(err) {
		// It is fine if the configuration file does not yet exist.
		log.Printf("Configuration file \"%s\" does not yet exist, using defaults.", fileName)
		f.loaded = true
		return nil
	}
	file, err := os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("failed to read configuration file: %v", err)
	}
	err = yaml.Unmarshal(file, &f.version)
	if err != nil {
		return fmt.Errorf("failed to parse configuration version: %v", err)
	}
	// Avoid removing new unknown settings if an old release is started with a newer config file.
	if f.version.FileVersion > configFileVersion {
		return fmt.Errorf(
			"invalid configuration file version %d instead of %d, probably from a newer release",
			f.version.FileVersion,
			configFileVersion)
	}
	err = yaml.Unmarshal(file, &f.chartConfig)
	if err != nil {
		return fmt.Errorf("failed to parse chart configuration: %v", err)
	}
	f.chartConfig.Sanitize()
	f.loaded = true
	return nil
}

func (f *FileConfig) write() error {
	fileName, err := f.getFileName()
	if err != nil {
		return err
	}
	err = os.MkdirAll(filepath.Dir(fileName), 0700)
	if err != nil {
		return fmt.Errorf("failed to create configuration directory: %v", err)
	}
	f.chartConfig.Sanitize()
	f.version.FileVersion = configFileVersion
	fileVersion, err := yaml.Marshal(&f.version)
	if err != nil {
		return fmt.Errorf("error generating configuration version: %v", err)
	}
	fileChartConfig, err := yaml.Marshal(&f.chartConfig)
	if err != nil {
		return fmt.Errorf("error generating chart configuration: %v", err)
	}

	file := append(fileVersion, fileChartConfig...)
	tmpFileName := fileName + ".tmp"
	// Writing may fail, so we write to a temporary file and replace afterwards.
	err = os.WriteFile(tmpFileName, file, 0600)
	if err != nil {
		return fmt.Errorf("failed to write configuration file: %v", err)
	}
	err = os.Rename(tmpFileName, fileName)
	if err != nil {
		return fmt.Errorf("failed to replace configuration file: %v", err)
	}
	return nil
}
