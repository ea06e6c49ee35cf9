package show

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/outlinehq/hoist/pkg/app"
	"github.com/outlinehq/hoist/pkg/outline"
	"github.com/outlinehq/hoist/pkg/printers"
	"sigs.k8s.io/yaml"
)

type Show struct {
	ShowID    bool
	Output    string
	Target    string
	Recent    bool
	Favorites bool
	Session   *app.Session
}

// Do prints a bullet's subtree, or the whole outline when no target is given.
// The target may be an id or a bullet's exact text. Recent and Favorites
// print the sidebar lists instead.
func (n *Show) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not show, no session")
	}

	if n.Recent || n.Favorites {
		return n.lists()
	}

	f := n.Session.Forest()
	id := ""
	if n.Target != "" {
		var ok bool
		id, ok = n.Session.ResolveBullet(n.Target)
		if !ok {
			return fmt.Errorf("no bullet matching %q", n.Target)
		}
	}

	switch n.Output {
	case "json":
		return n.marshal(f, id, json.MarshalIndent)
	case "yaml":
		return n.marshal(f, id, func(v interface{}, _, _ string) ([]byte, error) {
			return yaml.Marshal(v)
		})
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if id == "" {
		pp.TitleWithCount(n.Session.Settings().FileName, outline.Count(f))
		pp.Outline(outline.SubtreeRows(f, "")...)
		return nil
	}

	path := outline.PathTo(f, id)
	node := path[len(path)-1]
	if len(path) > 1 {
		pp.Crumbs(path[:len(path)-1]...)
	}
	pp.TitleWithCount(node.DisplayText(), outline.Count(outline.Forest(node.Children)))
	pp.Outline(outline.SubtreeRows(f, id)...)
	return nil
}

func (n *Show) lists() error {
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.Favorites {
		pp.Title("Favorites")
		pp.Favorites(n.Session.Favorites()...)
	}
	if n.Recent {
		pp.Title("Recent")
		pp.Recents(time.Now(), n.Session.Recents()...)
	}
	return nil
}

func (n *Show) marshal(f outline.Forest, id string, enc func(v interface{}, prefix, indent string) ([]byte, error)) error {
	var v interface{} = f
	if id != "" {
		loc, ok := outline.Locate(f, id)
		if !ok {
			return fmt.Errorf("no bullet matching %q", id)
		}
		v = loc.Node
	}
	data, err := enc(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
