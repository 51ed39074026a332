// Package tint is the composition root: it opens a project file, restores
// the colors saved in it, and exposes the color operations over node
// selections.
//
// Usage:
//
//	s, err := tint.Open("survey.yaml", tint.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	nodes, _ := s.Select(nil, "Roads/*")
//	if _, err := s.Controller.SetBackgroundColor(ctx, nodes, core.RGB(255, 204, 0)); err != nil {
//		return err
//	}
//	return s.Save()
package tint
