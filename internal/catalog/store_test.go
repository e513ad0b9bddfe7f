package catalog

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xiongbear2005/docx2md/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRecord(path string) types.DocumentRecord {
	return types.DocumentRecord{
		Path:        path,
		OutputPath:  strings.TrimSuffix(path, ".docx") + ".md",
		ModTime:     time.Date(2026, 3, 14, 9, 0, 0, 123456789, time.UTC),
		ConvertedAt: time.Date(2026, 3, 14, 9, 0, 5, 0, time.UTC),
		Status:      types.ConversionDone,
		Stats: types.ConversionStatistics{
			InlineCount:  3,
			DisplayCount: 1,
			ImageCount:   2,
		},
	}
}

func TestRecordRoundTrip(t *testing.T) {
	s := testStore(t)
	want := sampleRecord("docs/report.docx")
	if err := s.Record(want); err != nil {
		t.Fatal(err)
	}

	recs, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	got := recs[0]
	if got.Path != want.Path || got.OutputPath != want.OutputPath {
		t.Errorf("paths = %q -> %q, want %q -> %q", got.Path, got.OutputPath, want.Path, want.OutputPath)
	}
	if !got.ModTime.Equal(want.ModTime) {
		t.Errorf("ModTime = %v, want %v", got.ModTime, want.ModTime)
	}
	if !got.ConvertedAt.Equal(want.ConvertedAt) {
		t.Errorf("ConvertedAt = %v, want %v", got.ConvertedAt, want.ConvertedAt)
	}
	if got.Status != types.ConversionDone {
		t.Errorf("Status = %q, want %q", got.Status, types.ConversionDone)
	}
	if got.Stats != want.Stats {
		t.Errorf("Stats = %+v, want %+v", got.Stats, want.Stats)
	}
}

func TestRecordUpsert(t *testing.T) {
	s := testStore(t)
	rec := sampleRecord("docs/report.docx")
	if err := s.Record(rec); err != nil {
		t.Fatal(err)
	}

	rec.Status = types.ConversionPartial
	rec.Stats.PlaceholderCount = 2
	rec.ModTime = rec.ModTime.Add(time.Minute)
	if err := s.Record(rec); err != nil {
		t.Fatal(err)
	}

	recs, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records after upsert, want 1", len(recs))
	}
	if recs[0].Status != types.ConversionPartial {
		t.Errorf("Status = %q, want %q", recs[0].Status, types.ConversionPartial)
	}
	if recs[0].Stats.PlaceholderCount != 2 {
		t.Errorf("PlaceholderCount = %d, want 2", recs[0].Stats.PlaceholderCount)
	}
}

func TestNeedsConversion(t *testing.T) {
	s := testStore(t)
	rec := sampleRecord("docs/report.docx")

	if !s.NeedsConversion(rec.Path, rec.ModTime) {
		t.Error("unknown document should need conversion")
	}

	if err := s.Record(rec); err != nil {
		t.Fatal(err)
	}
	if s.NeedsConversion(rec.Path, rec.ModTime) {
		t.Error("unchanged document should not need conversion")
	}
	if !s.NeedsConversion(rec.Path, rec.ModTime.Add(time.Second)) {
		t.Error("touched document should need conversion")
	}
	if !s.NeedsConversion(rec.Path, rec.ModTime.Add(time.Nanosecond)) {
		t.Error("mod time comparison should keep nanosecond precision")
	}
}

func TestListOrderedByPath(t *testing.T) {
	s := testStore(t)
	for _, path := range []string{"b.docx", "a.docx", "c.docx"} {
		if err := s.Record(sampleRecord(path)); err != nil {
			t.Fatal(err)
		}
	}

	recs, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	got := make([]string, len(recs))
	for i, rec := range recs {
		got[i] = rec.Path
	}
	want := []string{"a.docx", "b.docx", "c.docx"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("List order = %v, want %v", got, want)
		}
	}
}

func TestStats(t *testing.T) {
	s := testStore(t)

	done := sampleRecord("a.docx")
	partial := sampleRecord("b.docx")
	partial.Status = types.ConversionPartial
	partial.Stats.PlaceholderCount = 1
	failed := sampleRecord("c.docx")
	failed.Status = types.ConversionFailed
	failed.Stats = types.ConversionStatistics{}

	for _, rec := range []types.DocumentRecord{done, partial, failed} {
		if err := s.Record(rec); err != nil {
			t.Fatal(err)
		}
	}

	sum, err := s.Stats()
	if err != nil {
		t.Fatal(err)
	}
	want := Summary{
		Documents:        3,
		Converted:        1,
		Partial:          1,
		Failed:           1,
		InlineTotal:      6,
		DisplayTotal:     2,
		PlaceholderTotal: 1,
		ImageTotal:       4,
	}
	if sum != want {
		t.Errorf("Stats = %+v, want %+v", sum, want)
	}
}

func TestStatsEmptyCatalog(t *testing.T) {
	s := testStore(t)
	sum, err := s.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if sum != (Summary{}) {
		t.Errorf("Stats on empty catalog = %+v, want zero", sum)
	}
}

func TestReopenKeepsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.db")

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Record(sampleRecord("docs/report.docx")); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	recs, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records after reopen, want 1", len(recs))
	}
}
