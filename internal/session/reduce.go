package session

import (
	"fmt"

	"github.com/abelbrown/newsai/internal/scroll"
)

// Reduce applies cmd to s. It never mutates s; on error it returns s as given.
// Each command touches exactly one part of the state.
func Reduce(s State, cmd Command) (State, error) {
	switch c := cmd.(type) {
	case AddCategory:
		sel, err := s.selection.Add(c.ID)
		if err != nil {
			return s, err
		}
		s.selection = sel

	case RemoveCategory:
		s.selection = s.selection.Remove(c.ID)

	case ReorderCategories:
		sel, err := s.selection.Reorder(c.Order)
		if err != nil {
			return s, err
		}
		s.selection = sel

	case MoveCategory:
		sel, err := s.selection.Move(c.ID, c.Delta)
		if err != nil {
			return s, err
		}
		s.selection = sel

	case ToggleBookmark:
		s.interactions = s.interactions.ToggleBookmark(c.Article)

	case OpenArticle:
		in, err := s.interactions.Open(c.Article, c.Mode)
		if err != nil {
			return s, err
		}
		s.interactions = in

	case SwitchInspectionMode:
		in, err := s.interactions.SetMode(c.Mode)
		if err != nil {
			return s, err
		}
		s.interactions = in

	case ToggleInspectionMode:
		in, err := s.interactions.ToggleMode()
		if err != nil {
			return s, err
		}
		s.interactions = in

	case CloseArticle:
		s.interactions = s.interactions.Close()

	case SetSectionFilter:
		f, ok := s.sections[c.Section]
		if !ok {
			return s, fmt.Errorf("%w: %q", ErrUnknownSection, c.Section)
		}
		f, err := f.SetActive(c.Key)
		if err != nil {
			return s, err
		}
		return s.withSection(f), nil

	case CycleSectionFilter:
		f, ok := s.sections[c.Section]
		if !ok {
			return s, fmt.Errorf("%w: %q", ErrUnknownSection, c.Section)
		}
		if c.Delta > 0 {
			f = f.Next()
		} else {
			f = f.Prev()
		}
		return s.withSection(f), nil

	case ScrollBy:
		g, ok := s.strips[c.Strip]
		if !ok {
			return s, fmt.Errorf("%w: %q", ErrUnknownStrip, c.Strip)
		}
		if c.Direction != scroll.Left && c.Direction != scroll.Right {
			return s, fmt.Errorf("scroll %q: unknown direction %v", c.Strip, c.Direction)
		}
		g.Offset = s.scroll.Next(c.Direction, g)
		return s.withStrip(c.Strip, g), nil

	case MeasureStrip:
		g, ok := s.strips[c.Strip]
		if !ok {
			return s, fmt.Errorf("%w: %q", ErrUnknownStrip, c.Strip)
		}
		g.Viewport = max(c.Viewport, 0)
		g.Content = max(c.Content, 0)
		g.Offset = scroll.Clamp(g.Offset, g)
		return s.withStrip(c.Strip, g), nil

	default:
		return s, fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
	return s, nil
}
