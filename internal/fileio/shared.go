package fileio

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat — расширение файла не csv/xls/xlsx.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Table — прочитанный лист: заголовки в исходном порядке и строки по заголовкам.
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// ReadTable выбирает парсер по расширению. headerRow — номер строки заголовков (1-based).
func ReadTable(r io.Reader, filename string, headerRow int) (*Table, error) {
	if headerRow < 1 {
		headerRow = 1
	}
	var (
		rows [][]string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx":
		rows, err = readXLSX(r)
	case ".xls":
		rows, err = readXLS(r)
	case ".csv":
		rows, err = readCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}
	if headerRow > len(rows) {
		headerRow = 1
	}
	h := pickHeader(rows, headerRow)
	return &Table{Headers: h, Rows: rowsToMaps(rows, h, headerRow)}, nil
}

// pickHeader — строка заголовков; пустые ячейки становятся "Column N", повторы получают суффикс.
func pickHeader(rows [][]string, headerRow int) []string {
	idx := headerRow - 1
	seen := make(map[string]int)
	out := make([]string, len(rows[idx]))
	for i, v := range rows[idx] {
		v = strings.TrimSpace(strings.TrimPrefix(v, "\ufeff"))
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		if n := seen[v]; n > 0 {
			seen[v]++
			v = fmt.Sprintf("%s (%d)", v, n+1)
		} else {
			seen[v] = 1
		}
		out[i] = v
	}
	return out
}

// rowsToMaps собирает записи после строки заголовков, пропуская полностью пустые.
func rowsToMaps(rows [][]string, headers []string, headerRow int) []map[string]string {
	var out []map[string]string
	for r := headerRow; r < len(rows); r++ {
		rec := rows[r]
		m := make(map[string]string, len(headers))
		empty := true
		for c, h := range headers {
			var v string
			if c < len(rec) {
				v = strings.TrimSpace(rec[c])
			}
			if v != "" {
				empty = false
			}
			m[h] = v
		}
		if !empty {
			out = append(out, m)
		}
	}
	return out
}
