package store

import (
	"time"

	"github.com/outlinehq/hoist/pkg/bullet"
	"github.com/outlinehq/hoist/pkg/outline"
)

// WelcomeForest builds the outline shown on first run, before anything has
// been saved. Every node gets a fresh id stamped at now.
func WelcomeForest(now time.Time) outline.Forest {
	n := func(text string, children ...*bullet.Bullet) *bullet.Bullet {
		b := bullet.New(text)
		b.CreatedAt = bullet.At(now)
		b.UpdatedAt = bullet.At(now)
		b.Children = children
		return b
	}

	return outline.Forest{
		n("Welcome to hoist",
			n("This is an infinite outline. Every line is a bullet, and bullets nest."),
			n("Getting around",
				n("Press Enter to add a bullet, Tab to indent, Shift+Tab to outdent."),
				n("Click a bullet's dot, or press Ctrl+ArrowDown, to zoom into it."),
				n("Press Ctrl+ArrowUp to zoom back out one level."),
			),
			n("Organize",
				n("Tag anything with a word like #inbox and find it later with search."),
				n("Link to another bullet by typing [[ and picking a target."),
				n("Fold a subtree with Ctrl+. and unfold it the same way."),
			),
		),
		n("Try it here #inbox",
			n("Edit this line, or delete the whole example once you have the hang of it."),
		),
	}
}
