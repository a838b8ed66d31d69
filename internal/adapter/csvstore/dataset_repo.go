package csvstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"waterlog/internal/domain"
)

var _ domain.DatasetRepository = (*Store)(nil)

// Load reads every row of the file. A missing file is an empty dataset.
func (s *Store) Load(ctx context.Context) ([]domain.Record, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()
	return decode(f)
}

// Save rewrites the whole file. Rows go to a temp file in the same directory
// which is then renamed over the dataset, so a crash never leaves a partial file.
func (s *Store) Save(ctx context.Context, records []domain.Record) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := encode(tmp, records); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(fileMode(s.path)); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace dataset: %w", err)
	}
	return nil
}

// fileMode keeps the permissions of an existing dataset file; new files get 0644.
func fileMode(path string) fs.FileMode {
	if fi, err := os.Stat(path); err == nil {
		return fi.Mode().Perm()
	}
	return 0o644
}

func encode(w io.Writer, records []domain.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Day,
			r.SubjectID.String(),
			r.Condition.String(),
			formatFloat(r.WeightG),
			formatOptional(r.WaterCollectedML),
			formatOptional(r.SuggestedWaterML),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush rows: %w", err)
	}
	return nil
}

func decode(r io.Reader) ([]domain.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []domain.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, col := range header {
		if !strings.EqualFold(strings.TrimSpace(col), Header[i]) {
			return nil, fmt.Errorf("unexpected column %d %q, want %q", i+1, col, Header[i])
		}
	}

	out := []domain.Record{}
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, rec)
	}
}

func parseRow(row []string) (domain.Record, error) {
	id, err := domain.ValidateSubjectID(domain.NormalizeSubjectID(row[1]))
	if err != nil {
		return domain.Record{}, err
	}
	day, err := domain.ValidateDay(domain.NormalizeDay(row[0]))
	if err != nil {
		return domain.Record{}, err
	}
	cond, err := domain.ParseCondition(row[2])
	if err != nil {
		return domain.Record{}, err
	}
	weight, err := domain.ValidateWeight(row[3])
	if err != nil {
		return domain.Record{}, err
	}
	water, err := parseOptional(row[4])
	if err != nil {
		return domain.Record{}, err
	}
	suggested, err := parseOptional(row[5])
	if err != nil {
		return domain.Record{}, fmt.Errorf("suggested_water: %w", err)
	}
	rec := domain.Record{
		Day:              day,
		SubjectID:        id,
		Condition:        cond,
		WeightG:          weight,
		WaterCollectedML: water,
		SuggestedWaterML: suggested,
	}
	if err := domain.ValidateRecord(rec); err != nil {
		return domain.Record{}, err
	}
	return rec, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatOptional writes absent values as an empty field.
func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

// parseOptional treats an empty field, N/A and NaN as absent.
func parseOptional(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "N/A") || strings.EqualFold(s, "NaN") {
		return nil, nil
	}
	v, err := domain.ValidateWater(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
