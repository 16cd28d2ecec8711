package session

import (
	"github.com/abelbrown/newsai/internal/inspect"
	"github.com/abelbrown/newsai/internal/scroll"
)

// Command is one user intent. The set is closed; Reduce rejects anything else.
type Command interface {
	Name() string
	command()
}

type (
	AddCategory       struct{ ID string }
	RemoveCategory    struct{ ID string }
	ReorderCategories struct{ Order []string }

	// MoveCategory shifts ID by Delta positions, clamped to the ends.
	MoveCategory struct {
		ID    string
		Delta int
	}

	ToggleBookmark struct{ Article inspect.ArticleID }

	OpenArticle struct {
		Article inspect.ArticleID
		Mode    inspect.Mode
	}
	SwitchInspectionMode struct{ Mode inspect.Mode }
	ToggleInspectionMode struct{}
	CloseArticle         struct{}

	SetSectionFilter struct {
		Section string
		Key     string
	}
	// CycleSectionFilter moves to the next key for a positive Delta, else the previous.
	CycleSectionFilter struct {
		Section string
		Delta   int
	}

	ScrollBy struct {
		Strip     string
		Direction scroll.Direction
	}
	// MeasureStrip records a strip's visible and total width after layout.
	MeasureStrip struct {
		Strip    string
		Viewport int
		Content  int
	}
)

func (AddCategory) Name() string          { return "AddCategory" }
func (RemoveCategory) Name() string       { return "RemoveCategory" }
func (ReorderCategories) Name() string    { return "ReorderCategories" }
func (MoveCategory) Name() string         { return "MoveCategory" }
func (ToggleBookmark) Name() string       { return "ToggleBookmark" }
func (OpenArticle) Name() string          { return "OpenArticle" }
func (SwitchInspectionMode) Name() string { return "SwitchInspectionMode" }
func (ToggleInspectionMode) Name() string { return "ToggleInspectionMode" }
func (CloseArticle) Name() string         { return "CloseArticle" }
func (SetSectionFilter) Name() string     { return "SetSectionFilter" }
func (CycleSectionFilter) Name() string   { return "CycleSectionFilter" }
func (ScrollBy) Name() string             { return "ScrollBy" }
func (MeasureStrip) Name() string         { return "MeasureStrip" }

func (AddCategory) command()          {}
func (RemoveCategory) command()       {}
func (ReorderCategories) command()    {}
func (MoveCategory) command()         {}
func (ToggleBookmark) command()       {}
func (OpenArticle) command()          {}
func (SwitchInspectionMode) command() {}
func (ToggleInspectionMode) command() {}
func (CloseArticle) command()         {}
func (SetSectionFilter) command()     {}
func (CycleSectionFilter) command()   {}
func (ScrollBy) command()             {}
func (MeasureStrip) command()         {}
