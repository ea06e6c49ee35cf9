package search

// Selection is the result of picking an entry from an autocomplete popup.
// The two concrete variants carry what each popup kind selects.
type Selection interface {
	isSelection()
}

// LinkSelection is a bullet chosen from the link popup.
type LinkSelection struct {
	Bullet FlatBullet
}

// TagSelection is a tag chosen from the tag popup.
type TagSelection struct {
	Tag string
}

func (LinkSelection) isSelection() {}
func (TagSelection) isSelection()  {}
