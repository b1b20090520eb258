// Package pool loads the draft player pool from a FantasyPros-style
// overall ADP rankings CSV.
package pool

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/shaanchanchani/Draft-Optimizer/internal/draft"
)

// The rankings feed labels positions with a positional rank suffix
// ("RB12", "WR3"); only the letters identify the position.
var positionRank = regexp.MustCompile(`\d+`)

var scoredPositions = map[string]bool{
	draft.PositionQB: true,
	draft.PositionRB: true,
	draft.PositionWR: true,
	draft.PositionTE: true,
}

// LoadCSV reads a rankings CSV from disk and returns the filtered
// player list, ready for draft.NewPool.
func LoadCSV(path string) ([]draft.Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pool: open rankings file: %w", err)
	}
	defer f.Close()
	players, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("pool: parse %s: %w", path, err)
	}
	return players, nil
}

// Parse reads a rankings CSV with at least the columns Player, Team,
// Bye, POS and AVG (in any order, located by header name). Rows whose
// fields are all empty are dropped, positional-rank digits are
// stripped from POS, and only QB/RB/WR/TE rows survive.
func Parse(r io.Reader) ([]draft.Player, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := locateColumns(header)
	if err != nil {
		return nil, err
	}

	var players []draft.Player
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++
		if allEmpty(record) {
			continue
		}
		player, ok, err := parseRow(record, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		if ok {
			players = append(players, player)
		}
	}
	return players, nil
}

type columnIndex struct {
	player, team, bye, pos, avg int
}

func locateColumns(header []string) (columnIndex, error) {
	cols := columnIndex{player: -1, team: -1, bye: -1, pos: -1, avg: -1}
	for i, name := range header {
		switch strings.ToUpper(strings.TrimSpace(name)) {
		case "PLAYER":
			cols.player = i
		case "TEAM":
			cols.team = i
		case "BYE":
			cols.bye = i
		case "POS":
			cols.pos = i
		case "AVG":
			cols.avg = i
		}
	}
	for name, idx := range map[string]int{
		"Player": cols.player, "Team": cols.team, "Bye": cols.bye,
		"POS": cols.pos, "AVG": cols.avg,
	} {
		if idx < 0 {
			return cols, fmt.Errorf("missing column %q", name)
		}
	}
	return cols, nil
}

func parseRow(record []string, cols columnIndex) (draft.Player, bool, error) {
	field := func(i int) string {
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	name := field(cols.player)
	if name == "" {
		return draft.Player{}, false, nil
	}

	position := positionRank.ReplaceAllString(field(cols.pos), "")
	if !scoredPositions[position] {
		return draft.Player{}, false, nil
	}

	adp, err := strconv.ParseFloat(field(cols.avg), 64)
	if err != nil {
		return draft.Player{}, false, fmt.Errorf("player %q: bad ADP %q", name, field(cols.avg))
	}

	bye := 0
	if raw := field(cols.bye); raw != "" {
		bye, err = strconv.Atoi(raw)
		if err != nil {
			return draft.Player{}, false, fmt.Errorf("player %q: bad bye week %q", name, raw)
		}
	}

	return draft.Player{
		Name:     name,
		Team:     field(cols.team),
		Bye:      bye,
		Position: position,
		ADP:      adp,
	}, true, nil
}

func allEmpty(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
