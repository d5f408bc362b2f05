package credreport

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Column names used by the rotation job. Every other column is kept in Row.Fields.
const (
	ColumnUser            = "user"
	ColumnARN             = "arn"
	ColumnKey1Active      = "access_key_1_active"
	ColumnKey1LastRotated = "access_key_1_last_rotated"
	ColumnKey2Active      = "access_key_2_active"
	ColumnKey2LastRotated = "access_key_2_last_rotated"
)

// RootUser is the report's name for the account root user. Its keys cannot be
// listed or deleted through the IAM user APIs.
const RootUser = "<root_account>"

var errMissingHeader = errors.New("credential report has no header row")

// Slot is one of the two access key slots an IAM user can have.
type Slot struct {
	Active      bool
	LastRotated string // raw report value, "N/A" when the slot was never used
}

// Row is one user line of the credential report.
type Row struct {
	User   string
	ARN    string
	Slots  [2]Slot
	Fields map[string]string
}

// Field returns the raw value of an arbitrary report column.
func (r Row) Field(column string) (string, bool) {
	v, ok := r.Fields[column]
	return v, ok
}

// Parse decodes a CSV credential report. The first record is the header and
// each following record becomes a Row.
func Parse(content []byte) ([]Row, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errMissingHeader
		}
		return nil, fmt.Errorf("reading report header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if !slices.Contains(header, ColumnUser) {
		return nil, fmt.Errorf("credential report header has no %q column", ColumnUser)
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading report row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, newRow(header, record))
	}
	return rows, nil
}

func newRow(header, record []string) Row {
	fields := make(map[string]string, len(header))
	for i, column := range header {
		if i < len(record) {
			fields[column] = record[i]
		} else {
			fields[column] = ""
		}
	}

	return Row{
		User: fields[ColumnUser],
		ARN:  fields[ColumnARN],
		Slots: [2]Slot{
			{Active: isTrue(fields[ColumnKey1Active]), LastRotated: fields[ColumnKey1LastRotated]},
			{Active: isTrue(fields[ColumnKey2Active]), LastRotated: fields[ColumnKey2LastRotated]},
		},
		Fields: fields,
	}
}

func isTrue(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true")
}
