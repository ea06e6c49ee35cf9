package ui

import (
	"github.com/outlinehq/hoist/pkg/bullet"
	"github.com/outlinehq/hoist/pkg/outline"
)

// StaticDemo builds a small outline that shows every mark and syntax the
// browser can render, for `hoist browse --demo`.
func StaticDemo() outline.Forest {
	projects := bullet.New("Projects")
	garden := bullet.New("Garden overhaul #home")
	garden.Children = append(garden.Children,
		bullet.New("sketch the beds"),
		bullet.New("order soil and seeds #errand"),
		bullet.New("see notes in [[Garden journal]]"),
	)
	talk := bullet.New("Conference talk #work")
	talk.IsFavorite = true
	talk.Children = append(talk.Children,
		bullet.New("outline the demo"),
		bullet.New("dry run with the team"),
	)
	projects.Children = append(projects.Children, garden, talk)

	journal := bullet.New("Garden journal")
	journal.Children = append(journal.Children,
		bullet.New("tomatoes germinated after nine days, which is quick for a cold spring, so the east bed heat mat seems to earn its keep"),
	)

	archive := bullet.New("2025 archive")
	archive.IsReadOnly = true
	archive.IsCollapsed = true
	archive.Children = append(archive.Children,
		bullet.New("moved to the new flat"),
		bullet.New("learned to ferment #kitchen"),
	)

	return outline.Forest{projects, journal, archive}
}
