package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// AgentConfig identifies one side of a match-up.
type AgentConfig struct {
	ID         int           `json:"id"`
	Difficulty string        `json:"difficulty"`
	Seed       uint64        `json:"seed"`
	Duration   time.Duration `json:"duration"` // Search deadline, 0 for none
	Evaluate   string        `json:"evaluate"` // Heuristic name, empty for the default
}

type Setup struct {
	RunID     string          `json:"runId"`
	Name      string          `json:"name"`
	Matchups  [][]AgentConfig `json:"matchups"`
	NumGames  int             `json:"numGames"` // Per match-up
	StartTime time.Time       `json:"startTime"`
	EndTime   time.Time       `json:"endTime"`
	Duration  time.Duration   `json:"duration"`
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID playing as player 0
	Agent2 int // AgentConfig.ID playing as player 1
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Writer stores the results of one experiment run under
// <root>/<name>/<timestamp>-<run id>.
type Writer struct {
	runID   string
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	runID := uuid.NewString()
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp+"-"+runID)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
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

func (w *Writer) WriteSetup(name string, start, end time.Time, matchups [][]AgentConfig, numGames int) error {
	setup := Setup{
		RunID:     w.runID,
		Name:      name,
		Matchups:  matchups,
		NumGames:  numGames,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}

	f, err := os.Create(filepath.Join(w.baseDir, "setup.json"))
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

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "difficulty", "seed", "duration", "evaluate"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Difficulty,
			strconv.FormatUint(config.Seed, 10),
			config.Duration.String(),
			config.Evaluate,
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves", "illegal_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.StartingPlayer),
			strconv.Itoa(record.Winner),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.IllegalMoves),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "difficulty", "depth", "noise", "duration", "candidates", "nodes", "leaves", "cutoffs", "timed_out"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			record.Move,
			record.Difficulty,
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Noise),
			record.Duration.String(),
			strconv.Itoa(record.Candidates),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Cutoffs),
			strconv.FormatBool(record.TimedOut),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) writeCSV(filename string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, filename))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", filename, err)
	}
	err = writer.WriteAll(rows) // Flushes
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", filename, err)
	}

	return nil
}
