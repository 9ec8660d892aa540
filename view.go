// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"
)

// disableMouseInput in termbox-go. This should be called after ui.Init()
func disableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// nodeLabel lets an outline title satisfy the tree widget's fmt.Stringer.
type nodeLabel string

func (l nodeLabel) String() string { return string(l) }

// outlineToTreeNodes converts an outline to termui tree nodes, expanded
// down to the given depth.
func outlineToTreeNodes(root *outlineNode, expandDepth int) []*widgets.TreeNode {
	if root == nil {
		return []*widgets.TreeNode{{Value: nodeLabel("(empty)")}}
	}
	var convert func(n *outlineNode, depth int) *widgets.TreeNode
	convert = func(n *outlineNode, depth int) *widgets.TreeNode {
		tn := &widgets.TreeNode{
			Value:    nodeLabel(n.Title()),
			Expanded: depth < expandDepth,
		}
		for _, c := range n.Children {
			tn.Nodes = append(tn.Nodes, convert(c, depth+1))
		}
		return tn
	}
	return []*widgets.TreeNode{convert(root, 0)}
}

const viewShortcuts = `[<up>/<down>](fg:green) -> Move within the focused pane
[<enter>](fg:green) -> Expand or collapse a node
[e](fg:green) / [c](fg:green) -> Expand / collapse everything
[<tab>](fg:green) -> Switch b/w structure and values
[<ctrl> + y](fg:green) -> Copy the digraph export
[<esc>](fg:green) or [<ctrl> + c](fg:green) -> Quit`

// setFocus highlights the border of the focused pane.
func setFocus(treeFocused bool, tree *widgets.Tree, values *widgets.List) {
	tree.BorderStyle = styleBorder(treeFocused)
	values.BorderStyle = styleBorder(!treeFocused)
}

// runView shows the structure of s in a classic full screen terminal UI
// until the user quits.
func runView(s store, renders *renderCache) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	disableMouseInput()
	defer ui.Close()

	logToConsole = false
	defer func() { logToConsole = true }()

	structure := widgets.NewTree()
	structure.Title = " Structure "
	structure.TextStyle = styleText()
	structure.SelectedRowStyle = styleSelected()
	structure.WrapText = false
	structure.SetNodes(outlineToTreeNodes(s.Outline(), 3))

	values := widgets.NewList()
	values.Title = " In order "
	values.TextStyle = styleText()
	values.SelectedRowStyle = styleSelected()
	values.Rows = s.Lines()

	statsPara := widgets.NewParagraph()
	statsPara.Title = " Stats "
	statsPara.Text = renders.get("stats-text", s, func() string { return statsText(s, nil) })
	statsPara.TextStyle = styleText()
	statsPara.BorderStyle = styleBorder(false)

	keysPara := widgets.NewParagraph()
	keysPara.Title = " Keyboard Shortcuts "
	keysPara.Text = viewShortcuts
	keysPara.BorderStyle = styleBorder(false)

	treeFocused := true
	setFocus(treeFocused, structure, values)

	termWidth, termHeight := ui.TerminalDimensions()
	grid := ui.NewGrid()
	grid.SetRect(0, 0, termWidth, termHeight)
	grid.Set(
		ui.NewCol(0.6, structure),
		ui.NewCol(0.4,
			ui.NewRow(0.35, statsPara),
			ui.NewRow(0.35, values),
			ui.NewRow(0.3, keysPara),
		),
	)
	ui.Render(grid)

	uiEvents := ui.PollEvents()
	for {
		e := <-uiEvents
		switch e.ID {
		case "<C-c>", "<Escape>", "q":
			return nil
		case "<Tab>":
			treeFocused = !treeFocused
			setFocus(treeFocused, structure, values)
		case "<Up>", "k":
			if treeFocused {
				structure.ScrollUp()
			} else {
				values.ScrollUp()
			}
		case "<Down>", "j":
			if treeFocused {
				structure.ScrollDown()
			} else {
				values.ScrollDown()
			}
		case "<Enter>":
			if treeFocused {
				structure.ToggleExpand()
			}
		case "e":
			structure.ExpandAll()
		case "c":
			structure.CollapseAll()
		case "<C-y>":
			export := renders.get("export", s, func() string { return exportString(s) })
			if err := clipboard.WriteAll(export); err != nil {
				ordsLog.Warnf("failed to copy export: %v", err)
				statsPara.Title = " Stats (copy failed) "
			} else {
				statsPara.Title = " Stats (export copied) "
			}
		case "<Resize>":
			if payload, ok := e.Payload.(ui.Resize); ok {
				grid.SetRect(0, 0, payload.Width, payload.Height)
			}
			ui.Clear()
		}
		ui.Render(grid)
	}
}

// outlineText flattens an outline into indented lines.
func outlineText(root *outlineNode) string {
	if root == nil {
		return "(empty)\n"
	}
	var b strings.Builder
	var walk func(n *outlineNode, depth int)
	walk = func(n *outlineNode, depth int) {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(n.Title())
		b.WriteByte('\n')
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(root, 0)
	return b.String()
}
