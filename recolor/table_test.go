package recolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableApply(t *testing.T) {
	var tests = []struct {
		name     string
		table    Table
		input    string
		expected string
	}{
		{
			name:     "every occurrence",
			table:    Table{{Old: "#006A4E", New: "#D91976"}},
			input:    "#006A4E #006A4E\n#006A4E",
			expected: "#D91976 #D91976\n#D91976",
		},
		{
			name:     "case sensitive",
			table:    Table{{Old: "#005a42", New: "#A8145A"}},
			input:    "#005A42 #005a42",
			expected: "#005A42 #A8145A",
		},
		{
			name:     "later entry rewrites earlier output",
			table:    Table{{Old: "A", New: "B"}, {Old: "B", New: "C"}},
			input:    "A B",
			expected: "C C",
		},
		{
			name:     "earlier entry does not see later output",
			table:    Table{{Old: "B", New: "C"}, {Old: "A", New: "B"}},
			input:    "A B",
			expected: "B C",
		},
		{
			name:     "no match",
			table:    Table{{Old: "green", New: "pink"}},
			input:    "plain text",
			expected: "plain text",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.table.Apply(test.input))
		})
	}
}

func TestTablesApplyModes(t *testing.T) {
	tables := Tables{
		Colors:  Table{{Old: "A", New: "B"}},
		Classes: Table{{Old: "B", New: "C"}},
	}

	assert.Equal(t, "C C", tables.Apply("A B", Sequential), "classes should act on text produced by colors")
	assert.Equal(t, "B C", tables.Apply("A B", Simultaneous), "every match should come from the original text")
	assert.Equal(t, "A B", Tables{}.Apply("A B", Simultaneous), "empty tables should leave text alone")
}

func TestTablesApplySimultaneousPrefersEarlierEntry(t *testing.T) {
	tables := Tables{
		Classes: Table{
			{Old: "hover:bg-green-800", New: "hover:bg-pink-800"},
			{Old: "bg-green-800", New: "bg-red-800"},
		},
	}

	assert.Equal(t, "hover:bg-pink-800 bg-red-800", tables.Apply("hover:bg-green-800 bg-green-800", Simultaneous))
}

func TestTablesValidate(t *testing.T) {
	err := Tables{Colors: Table{{Old: "#000000", New: "#ffffff"}}}.Validate()
	require.NoError(t, err)

	err = Tables{Classes: Table{{Old: "", New: "x"}}}.Validate()
	require.ErrorIs(t, err, ErrInvalidTable)
}

func TestTablesCascades(t *testing.T) {
	tables := Tables{
		Colors:  Table{{Old: "#111111", New: "#222222"}, {Old: "#333333", New: "#333333"}},
		Classes: Table{{Old: "#222222", New: "#444444"}, {Old: "a", New: "ab"}},
	}

	cascades := tables.Cascades()
	require.Len(t, cascades, 2)

	assert.Equal(t, Replacement{Old: "#111111", New: "#222222"}, cascades[0].From)
	assert.Equal(t, Replacement{Old: "#222222", New: "#444444"}, cascades[0].Into)

	assert.Equal(t, Replacement{Old: "a", New: "ab"}, cascades[1].From)
	assert.Equal(t, cascades[1].From, cascades[1].Into)

	assert.Contains(t, cascades[0].String(), `"#222222"`)
}

func TestModeUnmarshalText(t *testing.T) {
	var m Mode

	require.NoError(t, m.UnmarshalText([]byte("Simultaneous")))
	assert.Equal(t, Simultaneous, m)

	require.NoError(t, m.UnmarshalText([]byte("sequential")))
	assert.Equal(t, Sequential, m)

	assert.Error(t, m.UnmarshalText([]byte("parallel")))
}

func TestTablesCascadesAcrossEdges(t *testing.T) {
	tables := Tables{
		Colors:  Table{{Old: "bc", New: "Z"}},
		Classes: Table{{Old: "x", New: "b"}},
	}

	once := tables.Apply("xc", Sequential)
	require.Equal(t, "bc", once)
	require.Equal(t, "Z", tables.Apply(once, Sequential), "the key formed across the edge should be rewritten on the next pass")

	cascades := tables.Cascades()
	require.Len(t, cascades, 1)

	assert.Equal(t, Replacement{Old: "x", New: "b"}, cascades[0].From)
	assert.Equal(t, Replacement{Old: "bc", New: "Z"}, cascades[0].Into)

	trailing := Tables{Classes: Table{{Old: "-x", New: "-y"}, {Old: "ab-", New: "c"}}}

	cascades = trailing.Cascades()
	require.Len(t, cascades, 1, "a key ending with the start of a replacement should be reported")
	assert.Equal(t, Replacement{Old: "ab-", New: "c"}, cascades[0].Into)
}

func TestTablesValidateNamesFirstBadTable(t *testing.T) {
	tables := Tables{
		Colors:  Table{{Old: "#000000", New: "#ffffff"}, {Old: "", New: "x"}},
		Classes: Table{{Old: "", New: "y"}},
	}

	for range 10 {
		err := tables.Validate()
		require.ErrorIs(t, err, ErrInvalidTable)
		assert.Contains(t, err.Error(), "entry 1 of the colors table")
	}
}
