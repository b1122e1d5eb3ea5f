package model

import (
	"testing"
	"time"
)

func TestNewProduction_Phases(t *testing.T) {
	p := NewProduction("prod-1", "Launch video")

	if p.Status != ProductionStatusPending {
		t.Errorf("expected pending status, got %s", p.Status)
	}
	if len(p.Phases) != len(PhaseOrder) {
		t.Fatalf("expected %d phases, got %d", len(PhaseOrder), len(p.Phases))
	}
	for i, ph := range p.Phases {
		if ph.ID != PhaseOrder[i] {
			t.Errorf("phase %d: expected %s, got %s", i, PhaseOrder[i], ph.ID)
		}
		if ph.Status != PhaseStatusPending {
			t.Errorf("phase %s: expected pending, got %s", ph.ID, ph.Status)
		}
	}
}

func TestAdvancePhase_PartialUpdate(t *testing.T) {
	p := NewProduction("prod-1", "Test")

	status := PhaseStatusInProgress
	now := time.Now()
	p.AdvancePhase(PhaseGenerate, PhaseUpdate{Status: &status, StartedAt: &now})

	ph := p.Phase(PhaseGenerate)
	if ph == nil {
		t.Fatal("generate phase missing")
	}
	if ph.Status != PhaseStatusInProgress {
		t.Errorf("expected in_progress, got %s", ph.Status)
	}
	if ph.StartedAt == nil {
		t.Error("expected StartedAt set")
	}
	if ph.Progress != 0 {
		t.Errorf("progress changed without an update: %d", ph.Progress)
	}

	// Only progress this time; status must survive.
	progress := 50
	p.AdvancePhase(PhaseGenerate, PhaseUpdate{Progress: &progress})
	if ph := p.Phase(PhaseGenerate); ph.Status != PhaseStatusInProgress || ph.Progress != 50 {
		t.Errorf("partial update clobbered fields: %+v", ph)
	}
}

func TestPhase_Unknown(t *testing.T) {
	p := NewProduction("prod-1", "Test")
	if ph := p.Phase("nonsense"); ph != nil {
		t.Errorf("expected nil for unknown phase, got %+v", ph)
	}
}

func TestReplaceAsset(t *testing.T) {
	p := NewProduction("prod-1", "Test")
	p.Assets = []ProductionAsset{
		{ID: "a1", Section: "scene-1", URL: "old"},
		{ID: "a2", Section: "scene-2", URL: "keep"},
	}

	replacement := p.Assets[0]
	replacement.URL = "new"
	replacement.RegenCount = 1

	if !p.ReplaceAsset("a1", replacement) {
		t.Fatal("expected replacement to succeed")
	}
	if p.Assets[0].URL != "new" || p.Assets[0].RegenCount != 1 {
		t.Errorf("asset not replaced in place: %+v", p.Assets[0])
	}
	if p.Assets[1].URL != "keep" {
		t.Error("unrelated asset touched")
	}

	if p.ReplaceAsset("missing", replacement) {
		t.Error("expected replacement of unknown asset to fail")
	}
}
