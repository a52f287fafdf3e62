package domain

// Stats are the aggregate metrics for one fetched thread. The JSON tags
// fix the field names of the structured rendering.
type Stats struct {
	PostScore             int     `json:"postScore"`
	TotalComments         int     `json:"totalComments"`
	TotalCommentScore     int     `json:"totalCommentScore"`
	AvgCommentScore       float64 `json:"avgCommentScore"`
	CommentsPerScorePoint float64 `json:"commentsPerScorePoint"`
}

// ComputeStats aggregates a post and its flattened comments. Withheld
// comment scores contribute zero; each ratio collapses to zero when its
// denominator is zero instead of dividing by it.
func ComputeStats(post Post, comments []Comment) Stats {
	stats := Stats{
		PostScore:     post.Score,
		TotalComments: len(comments),
	}
	for _, c := range comments {
		stats.TotalCommentScore += c.ScoreValue()
	}
	if stats.TotalComments > 0 {
		stats.AvgCommentScore = float64(stats.TotalCommentScore) / float64(stats.TotalComments)
	}
	if stats.TotalCommentScore != 0 {
		stats.CommentsPerScorePoint = float64(stats.TotalComments) / float64(stats.TotalCommentScore)
	}
	return stats
}
