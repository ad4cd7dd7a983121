// Package history keeps the append-only order log: one line per placed
// order, written once at placement time.
package history

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"foodflex/internal/domain"
)

const DefaultPath = "order_history.txt"

// Log appends pipe-delimited records to a text file. Safe for concurrent use.
type Log struct {
	mu   sync.Mutex
	path string
}

func NewLog(path string) *Log {
	if path == "" {
		path = DefaultPath
	}
	return &Log{path: path}
}

// Record is one recovered history line.
type Record struct {
	OrderID    int64
	Restaurant string
	Total      float64
	PlacedAt   time.Time
}

func (l *Log) Append(o *domain.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open history log: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("Order #%d | Restaurant: %s | Total: ₹%.2f | Time: %s\n",
		o.ID, o.Restaurant.Name, o.TotalPrice(), o.CreatedAt.Format(time.RFC3339))
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("append history log: %w", err)
	}
	return nil
}

// Records reads every line back. A missing file is an empty history.
func (l *Log) Records() ([]Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open history log: %w", err)
	}
	defer f.Close()

	var out []Record
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		rec, err := parseLine(sc.Text())
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read history log: %w", err)
	}
	return out, nil
}

func parseLine(line string) (Record, error) {
	parts := strings.Split(line, " | ")
	if len(parts) != 4 {
		return Record{}, fmt.Errorf("malformed history line: %q", line)
	}
	var rec Record
	if _, err := fmt.Sscanf(parts[0], "Order #%d", &rec.OrderID); err != nil {
		return Record{}, fmt.Errorf("malformed order id in %q: %w", line, err)
	}
	rec.Restaurant = strings.TrimPrefix(parts[1], "Restaurant: ")
	if _, err := fmt.Sscanf(strings.TrimPrefix(parts[2], "Total: "), "₹%f", &rec.Total); err != nil {
		return Record{}, fmt.Errorf("malformed total in %q: %w", line, err)
	}
	ts, err := time.Parse(time.RFC3339, strings.TrimPrefix(parts[3], "Time: "))
	if err != nil {
		return Record{}, fmt.Errorf("malformed timestamp in %q: %w", line, err)
	}
	rec.PlacedAt = ts
	return rec, nil
}
