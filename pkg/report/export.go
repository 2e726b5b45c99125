// Package report renders table statistics and dumps for the command line.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/DrSkyle/qstr/pkg/sys/intern"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatCSV, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json, csv or yaml)", s)
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF99"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")).Width(18)
)

// WriteInfo renders table statistics.
func WriteInfo(w io.Writer, info intern.Info, f Format) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, info)
	case FormatYAML:
		return yaml.NewEncoder(w).Encode(info)
	case FormatCSV:
		cw := csv.NewWriter(w)
		cw.Write([]string{"Pools", "Strings", "StaticStrings", "StrDataBytes", "OverheadBytes", "TotalBytes", "Capacity"})
		cw.Write([]string{
			strconv.Itoa(info.Pools),
			strconv.Itoa(info.Strings),
			strconv.Itoa(info.StaticStrings),
			strconv.Itoa(info.StrDataBytes),
			strconv.Itoa(info.OverheadBytes),
			strconv.Itoa(info.TotalBytes),
			strconv.Itoa(info.Capacity),
		})
		cw.Flush()
		return cw.Error()
	}

	rows := []struct {
		key string
		val int
	}{
		{"pools", info.Pools},
		{"strings", info.Strings},
		{"static strings", info.StaticStrings},
		{"str data bytes", info.StrDataBytes},
		{"overhead bytes", info.OverheadBytes},
		{"total bytes", info.TotalBytes},
		{"capacity", info.Capacity},
	}
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("QSTR POOL INFO"))
	sb.WriteByte('\n')
	for _, r := range rows {
		fmt.Fprintf(&sb, "  %s %d\n", keyStyle.Render(r.key), r.val)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteEntries renders dump rows. The text format matches Table.Dump.
func WriteEntries(w io.Writer, entries []intern.Entry, f Format) error {
	switch f {
	case FormatJSON:
		if entries == nil {
			entries = []intern.Entry{}
		}
		return writeJSON(w, entries)
	case FormatYAML:
		return yaml.NewEncoder(w).Encode(entries)
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"Handle", "Len", "Hash", "Static", "Str"}); err != nil {
			return err
		}
		for _, e := range entries {
			record := []string{
				strconv.FormatUint(uint64(e.Handle), 10),
				strconv.Itoa(e.Len),
				fmt.Sprintf("%08x", e.Hash),
				strconv.FormatBool(e.Static),
				e.Str,
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	}

	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%5d %4d %08x Q(%s)\n", e.Handle, e.Len, e.Hash, e.Str); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
