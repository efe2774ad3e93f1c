// Package printers renders exam listings for the terminal and for machines.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"tableflip.dev/dday/pkg/schedule"
)

// Format selects how a listing is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the accepted output formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatText, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("printers: unknown output format %q (want text, json or yaml)", s)
}

// Row is the machine-readable form of a listing item.
type Row struct {
	Position  int    `json:"position" yaml:"position"`
	ID        string `json:"id" yaml:"id"`
	Subject   string `json:"subject" yaml:"subject"`
	Date      string `json:"date" yaml:"date"`
	Desc      string `json:"desc" yaml:"desc"`
	Note      string `json:"note" yaml:"note"`
	Owner     string `json:"owner,omitempty" yaml:"owner,omitempty"`
	Days      *int   `json:"days" yaml:"days"`
	Countdown string `json:"countdown" yaml:"countdown"`
}

func Rows(items []schedule.Item) []Row {
	rows := make([]Row, len(items))
	for i, it := range items {
		rows[i] = Row{
			Position:  it.Position,
			ID:        it.Exam.ID,
			Subject:   it.Exam.Subject,
			Date:      it.Exam.Date,
			Desc:      it.Exam.Desc,
			Note:      it.Exam.Note,
			Owner:     it.Exam.Owner,
			Days:      it.Days,
			Countdown: it.Countdown(),
		}
	}
	return rows
}

func JSON(w io.Writer, items []schedule.Item) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(Rows(items))
}

func YAML(w io.Writer, items []schedule.Item) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Rows(items)); err != nil {
		return err
	}
	return enc.Close()
}

// Listing writes items in the given format. The title is only used for text.
func Listing(w io.Writer, format Format, title string, items []schedule.Item, showID bool) error {
	switch format {
	case FormatJSON:
		return JSON(w, items)
	case FormatYAML:
		return YAML(w, items)
	default:
		pp := PrettyPrint{Out: w, ShowID: showID}
		pp.Title(title)
		pp.Schedule(items...)
		return nil
	}
}
