/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

package history

/****************************************************************************************************************/

import (
	"path/filepath"
	"testing"
	"time"
)

/****************************************************************************************************************/

// TestRecordAndReopen verifies that a recorded entry survives closing and
// reopening the database at the same path.
func TestRecordAndReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.sqlite")

	log, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	entry := Entry{
		JobID:      "01EXAMPLE",
		StartedAt:  time.Now(),
		Duration:   time.Second,
		SourceKind: "latlong",
		SinkKind:   "cube",
		Width:      512,
		Height:     512,
		Succeeded:  true,
	}
	if err := log.Record(entry); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := log.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopening: %v", err)
	}
	defer reopened.Close()

	var got []Entry
	if err := reopened.db.Find(&got).Error; err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(got) = %d; want 1", len(got))
	}
	if got[0].JobID != entry.JobID {
		t.Errorf("JobID = %q; want %q", got[0].JobID, entry.JobID)
	}
}

/****************************************************************************************************************/

// TestRecordOnNilLogIsNoop checks that a nil *Log (the facade's
// representation of "--history was not set") never panics.
func TestRecordOnNilLogIsNoop(t *testing.T) {
	var log *Log
	if err := log.Record(Entry{}); err != nil {
		t.Errorf("Record on nil Log returned %v; want nil", err)
	}
	if err := log.Close(); err != nil {
		t.Errorf("Close on nil Log returned %v; want nil", err)
	}
}

/****************************************************************************************************************/
