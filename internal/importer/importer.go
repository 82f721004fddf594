package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Godson026/sic-agent-app/internal/domain"
)

type ClientWriter interface {
	Upsert(ctx context.Context, client domain.Client) (*domain.Client, error)
}

// CSVImporter reads an agency client-book export and inserts/updates
// clients keyed by policy number.
type CSVImporter struct {
	reader     *csv.Reader
	clientRepo ClientWriter
}

func NewCSVImporter(r io.Reader, repo ClientWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // exports often carry trailing commas
	return &CSVImporter{
		reader:     csvr,
		clientRepo: repo,
	}
}

// Run parses CSV rows and upserts one client per row. Premiums may be
// given either as minor units ("premiumAmount") or as a decimal GHS
// figure ("premium", e.g. "5.00").
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		client, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if client == nil {
			continue
		}

		if _, err := i.clientRepo.Upsert(ctx, *client); err != nil {
			return imported, fmt.Errorf("upsert client %q: %w", client.PolicyNumber, err)
		}
		imported++
	}

	return imported, nil
}

func parseRow(record []string, index map[string]int) (*domain.Client, error) {
	policyNumber := pick(record, index, "policyNumber")
	if policyNumber == "" {
		return nil, nil
	}

	age, err := strconv.Atoi(pick(record, index, "age"))
	if err != nil {
		return nil, fmt.Errorf("invalid age for %q: %w", policyNumber, err)
	}

	premium, err := parsePremium(record, index)
	if err != nil {
		return nil, fmt.Errorf("invalid premium for %q: %w", policyNumber, err)
	}

	in := domain.ClientInput{
		FullName:         pick(record, index, "fullName"),
		Age:              age,
		Gender:           domain.Gender(pick(record, index, "gender")),
		Occupation:       pick(record, index, "occupation"),
		ContactNumber:    pick(record, index, "contactNumber"),
		PaymentFrequency: domain.PaymentFrequency(pick(record, index, "paymentFrequency")),
		PremiumAmount:    premium,
		PolicyNumber:     policyNumber,
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("invalid row for %q: %w", policyNumber, err)
	}

	return &domain.Client{
		FullName:         in.FullName,
		Age:              in.Age,
		Gender:           in.Gender,
		Occupation:       in.Occupation,
		ContactNumber:    in.ContactNumber,
		PaymentFrequency: in.PaymentFrequency,
		PremiumAmount:    in.PremiumAmount,
		PolicyNumber:     in.PolicyNumber,
		IsTemporary:      false,
	}, nil
}

func parsePremium(record []string, index map[string]int) (int64, error) {
	if minor := pick(record, index, "premiumAmount"); minor != "" {
		return strconv.ParseInt(minor, 10, 64)
	}
	decimal := pick(record, index, "premium")
	if decimal == "" {
		return 0, errors.New("missing premium")
	}
	return domain.ParseAmount(decimal)
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
