package storage

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/twinpal/internal/twin"
)

func saveRun(t *testing.T, st *Store, complete bool) string {
	t.Helper()
	run, err := st.Create(time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	run.OnLength(twin.LengthStat{Length: 3, Fraction: 0.5})
	run.OnLength(twin.LengthStat{Length: 2, Fraction: 0})
	if err := run.Close(); err != nil {
		t.Fatal(err)
	}
	if complete {
		if _, err := run.WriteArtifacts(Artifacts{Ordered: sampleMiddles()}); err != nil {
			t.Fatal(err)
		}
	}
	if err := run.SaveMetadata(&RunMetadata{Complete: complete}); err != nil {
		t.Fatal(err)
	}
	return run.ID
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())
	id := saveRun(t, st, true)

	data, err := st.Export(id)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if len(data.Proportions) != 2 || data.Proportions[0].Length != 2 {
		t.Errorf("proportions not sorted by length: %+v", data.Proportions)
	}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, data); err != nil {
		t.Fatal(err)
	}
	var back ExportData
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if back.Run.ID != id || len(back.Middles) != 3 || back.Middles[1].Value != "6" {
		t.Errorf("unexpected export %+v", back)
	}
}

func TestExportCSV(t *testing.T) {
	st := New(t.TempDir())
	data, err := st.Export(saveRun(t, st, true))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, data); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and 3 rows, got %d", len(lines))
	}
	if lines[0] != "index,length,bits,value" || lines[2] != "1,4,0110,6" {
		t.Errorf("unexpected csv:\n%s", buf.String())
	}
}

func TestExportAbortedRun(t *testing.T) {
	st := New(t.TempDir())
	data, err := st.Export(saveRun(t, st, false))
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if len(data.Middles) != 0 || len(data.Proportions) != 2 {
		t.Errorf("unexpected export %+v", data)
	}
}
