package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootPage = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// pageType codes whether the command is the root or a child
type pageType int

const (
	root pageType = iota
	child
)

// meta is for describing the position/info for a command doc page
type meta struct {
	pageType pageType
	title    string
	navOrder int
	parent   string
}

// map from the base Markdown file name to its page meta
var metaMap = map[string]meta{
	"redmask": {
		root,
		"redmask",
		0,
		"",
	},
	"redmask_docs": {
		child,
		"docs",
		0,
		"redmask",
	},
}

var docsDir string

// docsCmd writes Markdown documentation for every command
var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Write Markdown documentation for redmask's commands",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return makeDocs(docsDir)
	},
}

func init() {
	docsCmd.Flags().StringVar(&docsDir, "dir", "docs", "directory to write the Markdown files to")
	RootCmd.AddCommand(docsCmd)
}

// makeDocs parses the custom commands and outputs Markdown documentation files
func makeDocs(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if err := doc.GenMarkdownTreeCustom(RootCmd, dir, filePrepender, linkHandler); err != nil {
		return fmt.Errorf("failed to write docs: %w", err)
	}
	return nil
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m, ok := metaMap[base]
	if !ok {
		return ""
	}

	switch m.pageType {
	case root:
		return fmt.Sprintf(rootPage, m.title, m.navOrder)
	case child:
		return fmt.Sprintf(childPage, m.title, m.parent, m.navOrder)
	}

	return ""
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "redmask" {
		return "/"
	}
	return base
}
