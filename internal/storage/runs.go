package storage

import (
	"fmt"
	"time"
)

// Run is one recorded headless simulation.
type Run struct {
	ID        int64
	Scene     string
	Seed      uint64
	Frames    int
	Entities  int // Members after the last frame
	Peak      int
	Updates   int
	Duration  time.Duration
	CreatedAt time.Time
}

// SaveRun records a run. Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (scene, seed, frames, entities, peak, updates, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Scene, int64(r.Seed), r.Frames, r.Entities, r.Peak, r.Updates, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentRuns returns the newest runs, most recent first.
// An empty scene matches every scene.
func (s *Store) RecentRuns(scene string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, scene, seed, frames, entities, peak, updates, duration_ms, created_at
		 FROM runs
		 WHERE ? = '' OR scene = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		scene, scene, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var seed, durationMS int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Scene,
			&seed,
			&r.Frames,
			&r.Entities,
			&r.Peak,
			&r.Updates,
			&durationMS,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Seed = uint64(seed)
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// SceneStats contains aggregated run statistics for a scene.
type SceneStats struct {
	Scene     string
	Runs      int
	Frames    int64
	MaxPeak   int
	AvgFinal  float64
	LastRunAt time.Time
}

// AllSceneStats aggregates the run history per scene.
func (s *Store) AllSceneStats() (map[string]*SceneStats, error) {
	rows, err := s.db.Query(
		`SELECT scene, COUNT(*), SUM(frames), MAX(peak), AVG(entities), MAX(created_at)
		 FROM runs
		 GROUP BY scene`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get scene stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*SceneStats)
	for rows.Next() {
		var st SceneStats
		var lastRun any
		if err := rows.Scan(&st.Scene, &st.Runs, &st.Frames, &st.MaxPeak, &st.AvgFinal, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastRunAt = parseTime(lastRun)
		stats[st.Scene] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
