package progress

import (
	"math"

	"lumera-client/internal/entity"
)

// Point is one entry of the trend series: a compact date label plus the
// classification it belongs to. The series is positional, index order is the
// only ordering signal.
type Point struct {
	Date       string  `json:"date"`
	SkinType   string  `json:"skinType"`
	Confidence float64 `json:"confidence"`
}

// Snapshot is the derived, read-only view over a user's analyses.
// Recomputed on every fetch, never persisted.
type Snapshot struct {
	TotalCount        int     `json:"total_count"`
	AverageConfidence float64 `json:"average_confidence"`
	ModalSkinType     string  `json:"modal_skin_type"`
	Series            []Point `json:"series"`
}

// BuildSnapshot derives all statistics from one fetched sequence. Input is
// newest-first as delivered by the history endpoint. Pure: the same input
// always yields the same snapshot.
func BuildSnapshot(analyses []entity.Analysis) Snapshot {
	return Snapshot{
		TotalCount:        len(analyses),
		AverageConfidence: AverageConfidence(analyses),
		ModalSkinType:     ModalSkinType(analyses),
		Series:            Series(analyses),
	}
}

// AverageConfidence is the arithmetic mean rounded to one decimal,
// 0 for an empty sequence.
func AverageConfidence(analyses []entity.Analysis) float64 {
	if len(analyses) == 0 {
		return 0
	}
	var sum float64
	for _, a := range analyses {
		sum += a.Confidence
	}
	return math.Round(sum/float64(len(analyses))*10) / 10
}

// ModalSkinType is the most frequent label. Ties break to the label seen
// first in iteration order, "N/A" for an empty sequence.
func ModalSkinType(analyses []entity.Analysis) string {
	if len(analyses) == 0 {
		return "N/A"
	}

	counts := make(map[string]int)
	for _, a := range analyses {
		counts[a.SkinType]++
	}

	best := ""
	bestCount := 0
	for _, a := range analyses {
		// Strict > keeps the first-encountered label on ties
		if counts[a.SkinType] > bestCount {
			best = a.SkinType
			bestCount = counts[a.SkinType]
		}
	}
	return best
}

// Series reverses the newest-first input to oldest-first and maps each record
// to a compact date label. Positions are preserved, timestamps are never
// re-sorted.
func Series(analyses []entity.Analysis) []Point {
	points := make([]Point, 0, len(analyses))
	for i := len(analyses) - 1; i >= 0; i-- {
		a := analyses[i]
		points = append(points, Point{
			Date:       a.CreatedAt.Format("Jan 2"),
			SkinType:   a.SkinType,
			Confidence: a.Confidence,
		})
	}
	return points
}
