// internal/app/system/activitycsv/parser.go
package activitycsv

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Field positions in a catalog line.
const (
	colName = iota
	colDescription
	colFrequency
	colDetail
	colSystem
	colVersion
	colCategory
	colRequirements
	colComplexity
	colTechCategory
)

// MinFields is the number of mandatory fields per line
// (name through requirements).
const MinFields = colRequirements + 1

const (
	// Delimiter separates fields in a catalog line.
	Delimiter = ';'
	// ListSeparator separates values inside multi-value fields (requirements, system).
	ListSeparator = ","
	// CommentMarker starts a comment line.
	CommentMarker = "###"
)

// ErrTooManyRows is returned when the input exceeds ParseOptions.MaxRows.
var ErrTooManyRows = errors.New("catalog exceeds the maximum number of rows")

// ParseOptions controls parsing.
type ParseOptions struct {
	// SkipHeader drops the first non-blank, non-comment line unconditionally.
	// When false the first line is still dropped if it looks like a header.
	SkipHeader bool
	// MaxRows caps the number of accepted records; 0 means no limit.
	MaxRows int
}

// RawRecord is one accepted catalog line with its optional trailing fields
// made explicit.
type RawRecord struct {
	Line         int
	Name         string
	Description  string
	Frequency    string
	Detail       string
	System       string
	Version      string
	Category     string
	Requirements []string

	// Complexity is 0 when HasComplexity is false or the field did not parse.
	Complexity    int
	HasComplexity bool

	// TechLabel is the trimmed technology-category label ("" when absent).
	TechLabel string
}

// ParsedResult holds the accepted records and the per-line diagnostics.
type ParsedResult struct {
	Records []RawRecord
	Errors  []RowError

	// HeaderSkipped is true when a header line was detected and dropped.
	HeaderSkipped bool
	// Comments counts lines skipped because they start with CommentMarker.
	Comments int
}

// HasErrors returns true if any line was dropped.
func (r *ParsedResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Dropped returns the number of lines dropped as malformed.
func (r *ParsedResult) Dropped() int {
	return len(r.Errors)
}

// Parse reads a semicolon-delimited activity catalog.
//
// Format per line:
//
//	name;description;frequency;detail;system;version;category;requirements[;complexity;techCategory]
//
// Blank lines and lines starting with "###" are skipped. The first data line
// is skipped when it is a header. Lines with fewer than MinFields fields are
// reported in ParsedResult.Errors and dropped; they never abort the parse.
// Lines longer than MaxLineLength are dropped the same way. Only I/O errors
// and ErrTooManyRows are returned as errors.
func Parse(r io.Reader, opts ParseOptions) (ParsedResult, error) {
	var result ParsedResult

	br := bufio.NewReader(r)

	lineNum := 0
	seenData := false
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return result, fmt.Errorf("read catalog: %w", readErr)
		}
		if readErr == io.EOF && line == "" {
			break
		}

		lineNum++
		line = strings.TrimSuffix(line, "\n")
		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		line = strings.TrimRight(line, "\r")

		if len(line) > MaxLineLength {
			result.Errors = append(result.Errors, RowError{
				Line:   lineNum,
				Reason: fmt.Sprintf("line too long (%d bytes, max %d)", len(line), MaxLineLength),
				Raw:    line[:rawPreview],
			})
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, CommentMarker) {
			result.Comments++
			continue
		}

		fields, err := splitLine(line)
		if err != nil {
			result.Errors = append(result.Errors, RowError{
				Line:   lineNum,
				Reason: fmt.Sprintf("malformed line: %v", err),
				Raw:    line,
			})
			continue
		}

		if !seenData {
			seenData = true
			if opts.SkipHeader || isHeaderRow(fields) {
				result.HeaderSkipped = true
				continue
			}
		}

		rec, rowErr := parseRow(fields, lineNum, line)
		if rowErr != nil {
			result.Errors = append(result.Errors, *rowErr)
			continue
		}

		if opts.MaxRows > 0 && len(result.Records) >= opts.MaxRows {
			return result, ErrTooManyRows
		}
		result.Records = append(result.Records, rec)
	}

	return result, nil
}

// splitLine splits one line on the delimiter, honoring double quotes the
// way the CSV reader does. Quote characters are not part of the values.
func splitLine(line string) ([]string, error) {
	cr := csv.NewReader(strings.NewReader(line))
	cr.Comma = Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	rec, err := cr.Read()
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// isHeaderRow reports whether a row is the column header line.
func isHeaderRow(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	c0 := strings.ToLower(strings.TrimSpace(rec[0]))
	switch c0 {
	case "name", "nombre", "actividad", "activity":
		return true
	}
	return false
}

// parseRow converts the split fields of one line into a RawRecord.
func parseRow(rec []string, line int, raw string) (RawRecord, *RowError) {
	if len(rec) < MinFields {
		return RawRecord{}, &RowError{
			Line:   line,
			Reason: fmt.Sprintf("line has %d fields, at least %d required (name through requirements)", len(rec), MinFields),
			Raw:    raw,
		}
	}

	out := RawRecord{
		Line:         line,
		Name:         strings.TrimSpace(rec[colName]),
		Description:  strings.TrimSpace(rec[colDescription]),
		Frequency:    strings.TrimSpace(rec[colFrequency]),
		Detail:       strings.TrimSpace(rec[colDetail]),
		System:       strings.TrimSpace(rec[colSystem]),
		Version:      strings.TrimSpace(rec[colVersion]),
		Category:     strings.TrimSpace(rec[colCategory]),
		Requirements: SplitList(rec[colRequirements]),
	}

	if len(rec) > colComplexity {
		if n, err := strconv.Atoi(strings.TrimSpace(rec[colComplexity])); err == nil {
			out.Complexity = n
			out.HasComplexity = true
		}
	}
	if len(rec) > colTechCategory {
		out.TechLabel = strings.TrimSpace(rec[colTechCategory])
	}

	return out, nil
}

// SplitList splits a multi-value field on commas and trims each value.
// Order and duplicates are preserved; an empty field yields an empty list.
func SplitList(field string) []string {
	if strings.TrimSpace(field) == "" {
		return []string{}
	}
	parts := strings.Split(field, ListSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
