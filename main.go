package main

import (
	"fmt"
	"os"

	"github.com/moktak128bit/gagyebu/cmd/export"
	"github.com/moktak128bit/gagyebu/cmd/importcsv"
	"github.com/moktak128bit/gagyebu/cmd/normalize"
	"github.com/moktak128bit/gagyebu/cmd/recurring"
	"github.com/moktak128bit/gagyebu/cmd/report"
	"github.com/moktak128bit/gagyebu/cmd/root"
	"github.com/moktak128bit/gagyebu/cmd/suggest"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(importcsv.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(normalize.Cmd)
	root.Cmd.AddCommand(suggest.Cmd)
	root.Cmd.AddCommand(recurring.Cmd)
	root.Cmd.AddCommand(report.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
