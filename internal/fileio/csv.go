package fileio

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// readCSV читает CSV в UTF-8, Windows-1251 или KOI8-R; разделитель ',', ';' или tab.
func readCSV(r io.Reader) ([][]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, detectCharmap(raw).NewDecoder())
	}

	cr := csv.NewReader(src)
	cr.Comma = detectDelimiter(raw)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr.ReadAll()
}

// Не-UTF-8 файлы у нас почти всегда из 1С: cp1251, реже KOI8-R.
// chardet на коротких файлах путает эти две, поэтому его ответ сверяем с регистром:
// строчные буквы в cp1251 лежат в 0xE0-0xFF, в KOI8-R — в 0xC0-0xDF.
func detectCharmap(raw []byte) *charmap.Charmap {
	peek := raw
	if len(peek) > 4096 {
		peek = peek[:4096]
	}
	det, err := chardet.NewTextDetector().DetectBest(peek)
	if err != nil || det == nil || !strings.EqualFold(det.Charset, "KOI8-R") {
		return charmap.Windows1251
	}
	var hi, lo int
	for _, b := range peek {
		switch {
		case b >= 0xE0:
			hi++
		case b >= 0xC0:
			lo++
		}
	}
	if lo > hi {
		return charmap.KOI8R
	}
	return charmap.Windows1251
}

func detectDelimiter(raw []byte) rune {
	line := raw
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		line = raw[:i]
	}
	best, bestN := ',', bytes.Count(line, []byte{','})
	for _, d := range []rune{';', '\t'} {
		if n := bytes.Count(line, []byte{byte(d)}); n > bestN {
			best, bestN = d, n
		}
	}
	return best
}
