// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package main

import (
	"context"
	"log"
	"maycharts/chartviz"
	"maycharts/config"
	"os"

	"gioui.org/app"
)

func main() {
	c := config.NewFileConfig("")
	a := chartviz.NewChartApp(c)
	err := a.Initialize()
	if err != nil {
		log.Fatalf("initialization failed: %v", err)
	}
	go func() {
		a.Run(context.Background())
		os.Exit(0)
	}()
	app.Main()
}
