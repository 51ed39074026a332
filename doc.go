// Package tint is the entry point for tagging the groups and layers of a
// project tree with background colors.
//
// It connects the color domain (pkg/core) with the project file adapter
// (pkg/adapters/fs) and the terminal view (pkg/render).
//
// Features:
//
//   - **Identity keyed**: colors belong to node identities, so moving or
//     regrouping a layer keeps its color at any nesting depth.
//   - **Contrast check**: colors under 4.5:1 against black labels (WCAG AA)
//     ask for confirmation before anything changes.
//   - **Clipboard**: copy one node's color and paste it on a selection.
//   - **Project file**: YAML or JSON, written atomically, unknown properties
//     preserved.
//
// Usage:
//
//	s, err := tint.Open("survey.yaml", tint.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	nodes, err := s.Select(nil, "Roads/**")
//	...
//	_, err = s.Controller.SetBackgroundColor(ctx, nodes, core.RGB(255, 204, 0))
//	...
//	err = s.Save()
package tint
