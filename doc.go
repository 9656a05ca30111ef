// Package lvlabel finds and marks the 4-connected regions of a raster image.
//
// 🚀 What is lvlabel?
//
//	A small, pure-Go toolkit for two-pass connected-component labeling:
//		• Binarization: luminance threshold, brighter or darker foreground
//		• Union-find: path halving, union by depth, stable label ids
//		• Components: pixel sets with bounding limits and merge
//		• Views: binary, colorized, highlighted and identified renderings
//		• Deadlines: every scan runs under a time budget and a context
//
// Everything is organized under these subpackages:
//
//	pixelgrid/  RGBA grid, luminance, binarization, image load/save
//	unionfind/  Label type and the disjoint-set Forest
//	component/  pixel sets with Limits, Bounds and Merge
//	labeler/    the two-pass Processor, Result and rendered views
//	deadline/   generic time-boxed execution
//	gridgraph/  BFS flood-fill labeling, used as a cross-check
//	report/     area statistics as text or YAML
//	cmd/lvlabel command line: count, render, report, verify
//
// Quick example:
//
//	    ##..
//	    #..#
//	    ...#
//
//	has two components when '#' is light and brighter-foreground mode is
//	used: the three-pixel corner at the top left and the pair on the right.
//
//	p, _ := labeler.New("page.png", labeler.BrighterForeground)
//	n, err := p.Count(ctx)
//
//	go install github.com/katalvlaran/lvlabel/cmd/lvlabel@latest
package lvlabel
