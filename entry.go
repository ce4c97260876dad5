package rsdoc

import "fmt"

// BatchSize is the number of entries delivered to a picker per batch.
const BatchSize = 1024

// Entry is a display-ready picker record derived from an Item.
type Entry struct {
	Word    string `json:"word"`
	Display string `json:"display"`
	Action  Action `json:"action"`
}

// Action carries what a picker needs to open the selected item.
type Action struct {
	Kind   Kind    `json:"kind"`
	Module *string `json:"module"`
	Name   string  `json:"name"`
	URL    string  `json:"url"`
}

// NewEntry converts an item into a picker entry. The kind column is padded
// to KindWidth so module paths and names line up across entries.
func NewEntry(item Item) Entry {
	prefix := ""
	if m := item.ModuleName(); m != "" {
		prefix = m + ModuleSeparator
	}
	return Entry{
		Word:    item.Name,
		Display: fmt.Sprintf("%-*s %s%s", KindWidth(), item.Kind, prefix, item.Name),
		Action: Action{
			Kind:   item.Kind,
			Module: item.Module,
			Name:   item.Name,
			URL:    item.URL(),
		},
	}
}
