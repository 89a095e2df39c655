package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"hexapawn/game"
	"hexapawn/searcher"

	"github.com/google/uuid"
)

type Setup struct {
	RunID      string        `json:"runId"`
	Root       string        `json:"root"`
	Value      int           `json:"value"`
	Best       string        `json:"best,omitempty"`
	States     int           `json:"states"`
	Nodes      int           `json:"nodes"`
	Terminals  int           `json:"terminals"`
	Overwrites int           `json:"overwrites"`
	MaxDepth   int           `json:"maxDepth"`
	StartTime  time.Time     `json:"startTime"`
	Duration   time.Duration `json:"duration"`
}

type GameRecord struct {
	ID     int
	White  string // Agent name
	Black  string // Agent name
	Winner game.Cell
	Moves  []game.Action
}

type Writer struct {
	runID   string
	baseDir string
}

// NewWriter creates a run directory named by a fresh run id under dir.
func NewWriter(dir string) (*Writer, error) {
	runID := uuid.New().String()
	baseDir := filepath.Join(dir, runID)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		runID:   runID,
		baseDir: baseDir,
	}, nil
}

func (w *Writer) RunID() string {
	return w.runID
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(result searcher.Result) error {
	setup := Setup{
		RunID:      w.runID,
		Root:       result.Root.Key(),
		Value:      int(result.Value),
		States:     result.Table.Len(),
		Nodes:      result.Metrics.Nodes,
		Terminals:  result.Metrics.Terminals,
		Overwrites: result.Metrics.Overwrites,
		MaxDepth:   result.Metrics.MaxDepth,
		StartTime:  result.Metrics.StartTime,
		Duration:   result.Metrics.Duration,
	}
	if result.Best != nil {
		setup.Best = result.Best.String()
	}

	f, err := os.Create(filepath.Join(w.baseDir, "run.json"))
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}

	return nil
}

func (w *Writer) WritePolicyTable(table *searcher.Table) error {
	f, err := os.Create(filepath.Join(w.baseDir, "policy.csv"))
	if err != nil {
		return fmt.Errorf("failed to create policy file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"state", "to_move", "outcome", "actions"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write policy header: %w", err)
	}

	// One row per state and outcome
	for _, state := range table.States() {
		policy, _ := table.Lookup(state)
		for _, outcome := range policy.Outcomes() {
			row := []string{
				state.Key(),
				state.Player(),
				strconv.Itoa(int(outcome)),
				strings.Join(actionNames(policy[outcome]), ";"),
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write policy row: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	f, err := os.Create(filepath.Join(w.baseDir, "game_records.csv"))
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "white", "black", "winner", "length", "moves"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.White,
			record.Black,
			record.Winner.String(),
			strconv.Itoa(len(record.Moves)),
			strings.Join(actionNames(record.Moves), ";"),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
