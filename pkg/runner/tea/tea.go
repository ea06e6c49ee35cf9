package teaui

import (
	"github.com/outlinehq/hoist/pkg/app"
	tuiapp "github.com/outlinehq/hoist/pkg/tui/app"
)

// Run launches the full-screen Bubble Tea editor on a loaded session.
func Run(session *app.Session) error {
	return tuiapp.Run(session)
}
