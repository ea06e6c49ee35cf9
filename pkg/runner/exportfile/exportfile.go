// Package exportfile writes the outline to a portable JSON file.
package exportfile

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/outlinehq/hoist/pkg/app"
)

type Export struct {
	File    string
	Session *app.Session
}

// Do serializes the whole forest to JSON. An empty File falls back to the
// configured file name; "-" streams to stdout for piping.
func (n *Export) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not export, no session")
	}

	data, err := n.Session.ExportJSON()
	if err != nil {
		return err
	}

	if n.File == "-" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}

	file := n.File
	if file == "" {
		file = n.Session.ExportFileName()
	}
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("exported %d bullets to %s\n", n.Session.Count(), file)
	return nil
}
