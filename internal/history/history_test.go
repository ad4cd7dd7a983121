package history

import (
	"path/filepath"
	"strings"
	"testing"

	"foodflex/internal/domain"
)

func placeTestOrder(t *testing.T) *domain.Order {
	t.Helper()
	return domain.NewOrder(
		[]domain.MenuItem{
			{ID: "MC001", Name: "Butter Chicken", Price: 349, Available: true},
			{ID: "BV001", Name: "Mango Lassi", Price: 79, Available: true},
		},
		&domain.Restaurant{ID: "R001", Name: "Spice Trail", DeliveryFee: 49},
	)
}

func TestAppendAndRecords(t *testing.T) {
	log := NewLog(filepath.Join(t.TempDir(), "history.txt"))

	first := placeTestOrder(t)
	second := placeTestOrder(t)
	if err := log.Append(first); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := log.Append(second); err != nil {
		t.Fatalf("Append: %v", err)
	}

	recs, err := log.Records()
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2", len(recs))
	}

	if recs[0].OrderID != first.ID || recs[1].OrderID != second.ID {
		t.Errorf("order ids = %d, %d; want %d, %d", recs[0].OrderID, recs[1].OrderID, first.ID, second.ID)
	}
	if recs[0].Restaurant != "Spice Trail" {
		t.Errorf("restaurant = %q", recs[0].Restaurant)
	}
	if recs[0].Total != 477 {
		t.Errorf("total = %v, want 477", recs[0].Total)
	}
	if recs[0].PlacedAt.Unix() != first.CreatedAt.Unix() {
		t.Errorf("placed at = %v, want %v", recs[0].PlacedAt, first.CreatedAt)
	}
}

func TestRecordsMissingFile(t *testing.T) {
	log := NewLog(filepath.Join(t.TempDir(), "nope.txt"))
	recs, err := log.Records()
	if err != nil {
		t.Fatalf("Records on missing file: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("records = %d, want 0", len(recs))
	}
}

func TestMalformedLine(t *testing.T) {
	if _, err := parseLine("not a history line"); err == nil {
		t.Error("parseLine accepted garbage")
	}
	if _, err := parseLine(strings.Repeat("x | ", 4)); err == nil {
		t.Error("parseLine accepted wrong field layout")
	}
}
