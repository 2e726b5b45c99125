package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/DrSkyle/qstr/pkg/sys/intern"
)

func fixture() *intern.Table {
	tbl := intern.MustNew([]string{"__init__", "<module>"})
	tbl.MustIntern("foo")
	tbl.MustIntern("__x__")
	return tbl
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "JSON": FormatJSON, "csv": FormatCSV, "yaml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	require.Error(t, err)
}

func TestWriteEntriesTextMatchesDump(t *testing.T) {
	tbl := fixture()
	var dump, text bytes.Buffer
	require.NoError(t, tbl.Dump(&dump))
	require.NoError(t, WriteEntries(&text, tbl.Entries(), FormatText))
	require.Equal(t, dump.String(), text.String())
}

func TestWriteEntriesStructured(t *testing.T) {
	tbl := fixture()
	want := tbl.Entries()

	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, want, FormatJSON))
	var fromJSON []intern.Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	if diff := cmp.Diff(want, fromJSON); diff != "" {
		t.Errorf("json mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	require.NoError(t, WriteEntries(&buf, want, FormatYAML))
	var fromYAML []intern.Entry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	if diff := cmp.Diff(want, fromYAML); diff != "" {
		t.Errorf("yaml mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	require.NoError(t, WriteEntries(&buf, want[:1], FormatCSV))
	require.Equal(t, "Handle,Len,Hash,Static,Str\n1,8,"+hex(want[0].Hash)+",true,__init__\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteEntries(&buf, nil, FormatJSON))
	require.Equal(t, "[]\n", buf.String())
}

func hex(h uint32) string {
	const digits = "0123456789abcdef"
	var b [8]byte
	for i := 7; i >= 0; i-- {
		b[i] = digits[h&0xf]
		h >>= 4
	}
	return string(b[:])
}

func TestWriteInfo(t *testing.T) {
	info := fixture().Info()

	var buf bytes.Buffer
	require.NoError(t, WriteInfo(&buf, info, FormatText))
	require.Contains(t, buf.String(), "QSTR POOL INFO")
	require.Contains(t, buf.String(), "strings")

	buf.Reset()
	require.NoError(t, WriteInfo(&buf, info, FormatJSON))
	var got intern.Info
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, info, got)

	buf.Reset()
	require.NoError(t, WriteInfo(&buf, info, FormatCSV))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[1], "2,4,2,"), lines[1])
}

func TestFilter(t *testing.T) {
	entries := fixture().Entries()

	cases := map[string][]string{
		`static`:                               {"__init__", "<module>"},
		`!static`:                              {"foo", "__x__"},
		`str.startsWith("__")`:                 {"__init__", "__x__"},
		`handle > 2u && str.endsWith("__")`:    {"__x__"},
		`str.matches("^<.*>$")`:                {"<module>"},
		`static == false && str.contains("o")`: {"foo"},
	}

	for expr, want := range cases {
		t.Run(expr, func(t *testing.T) {
			f, err := CompileFilter(expr)
			require.NoError(t, err)
			got, err := f.Apply(entries)
			require.NoError(t, err)
			var strs []string
			for _, e := range got {
				strs = append(strs, e.Str)
			}
			require.Equal(t, want, strs)
		})
	}
}

func TestFilterErrors(t *testing.T) {
	_, err := CompileFilter(`str +`)
	require.Error(t, err)

	_, err = CompileFilter(`len + 1`)
	require.ErrorContains(t, err, "want bool")

	_, err = CompileFilter(`nosuch == 1`)
	require.Error(t, err)

	var nilFilter *Filter
	entries := fixture().Entries()
	got, err := nilFilter.Apply(entries)
	require.NoError(t, err)
	require.Equal(t, entries, got)
}
