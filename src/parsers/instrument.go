package parsers

import (
	"regexp"
	"strings"

	"github.com/username/comdirectparser/src/utils"
)

var isinRe = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{9}[0-9]$`)

type dividendInstrument struct {
	wkn       string
	stockName string
	shares    float64
	isin      string
}

type tradeInstrument struct {
	stockName string
	wkn       string
	stockType string
	isin      string
}

// dataLinesAfter returns up to max non-empty lines following the first line
// that contains the given label.
func dataLinesAfter(text, label string, max int) []string {
	lines := strings.Split(text, "\n")
	labelIdx := -1
	for i, line := range lines {
		if strings.Contains(line, label) {
			labelIdx = i
			break
		}
	}
	if labelIdx < 0 {
		return nil
	}
	var out []string
	for _, line := range lines[labelIdx+1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
		if len(out) == max {
			break
		}
	}
	return out
}

// extractDividendInstrument reads the positional block below the
// "Stück ... WKN/ISIN" column header of a dividend document:
//
//	16,000   DEUTSCHE TELEKOM AG    555750
//	         NAMENS-AKTIEN O.N.     DE0005557508
//
// First data line: share count, stock name, WKN; the continuation line
// carries the rest of the name and the ISIN. The block is optional; an
// absent or malformed block yields ok=false and empty instrument fields.
func extractDividendInstrument(text string) (dividendInstrument, bool) {
	lines := dataLinesAfter(text, "WKN/ISIN", 2)
	if len(lines) == 0 {
		return dividendInstrument{}, false
	}

	cols := SplitColumns(lines[0])
	if len(cols) < 3 {
		return dividendInstrument{}, false
	}
	shares, err := utils.ParseGermanNumber(cols[0])
	if err != nil {
		return dividendInstrument{}, false
	}
	inst := dividendInstrument{
		shares:    shares,
		stockName: strings.Join(cols[1:len(cols)-1], " "),
		wkn:       cols[len(cols)-1],
	}

	if len(lines) > 1 {
		cont := SplitColumns(lines[1])
		if last := cont[len(cont)-1]; isinRe.MatchString(last) {
			inst.isin = last
			if rest := strings.Join(cont[:len(cont)-1], " "); rest != "" {
				inst.stockName += " " + rest
			}
		}
	}
	return inst, true
}

// extractTradeInstrument reads the block below the "WPKNR/ISIN" column
// header of a trade confirmation:
//
//	SAP SE                    716460
//	Inhaber-Aktien o.N.       DE0007164600
//
// First data line: stock name and WKN; second line: stock type and ISIN.
func extractTradeInstrument(text string) (tradeInstrument, bool) {
	lines := dataLinesAfter(text, "WPKNR/ISIN", 2)
	if len(lines) == 0 {
		return tradeInstrument{}, false
	}

	cols := SplitColumns(lines[0])
	if len(cols) < 2 {
		return tradeInstrument{}, false
	}
	inst := tradeInstrument{
		stockName: strings.Join(cols[:len(cols)-1], " "),
		wkn:       cols[len(cols)-1],
	}

	if len(lines) > 1 {
		cont := SplitColumns(lines[1])
		if last := cont[len(cont)-1]; isinRe.MatchString(last) {
			inst.isin = last
			inst.stockType = strings.Join(cont[:len(cont)-1], " ")
		}
	}
	return inst, true
}
