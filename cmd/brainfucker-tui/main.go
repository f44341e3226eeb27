package main

import (
	"flag"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// newLogger returns a development logger writing to path, or a no-op logger
// when path is empty. The terminal belongs to the UI.
func newLogger(path string) (logger *zap.Logger, err error) {
	if len(path) == 0 {
		logger = zap.NewNop()
		return
	}

	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}

	return config.Build()
}

func main() {
	var filename string
	var logfile string

	flag.StringVar(&filename, "f", "", ".bf file to open and save")
	flag.StringVar(&logfile, "log", "", "Log file")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	logger, err := newLogger(logfile)
	if err != nil {
		log.Fatalf("%v: %v", logfile, err)
	}
	defer func() { _ = logger.Sync() }()

	p := tea.NewProgram(newModel(logger, filename), tea.WithAltScreen())
	_, err = p.Run()
	if err != nil {
		log.Fatal(err)
	}
}
