package domain

import "testing"

func intPtr(v int) *int { return &v }

func TestComputeStats(t *testing.T) {
	post := Post{Title: "t", Score: 10}
	comments := []Comment{
		{ID: "a", Score: intPtr(3)},
		{ID: "b", Score: intPtr(1)},
	}

	stats := ComputeStats(post, comments)

	want := Stats{
		PostScore:             10,
		TotalComments:         2,
		TotalCommentScore:     4,
		AvgCommentScore:       2.0,
		CommentsPerScorePoint: 0.5,
	}
	if stats != want {
		t.Fatalf("stats mismatch: got %+v want %+v", stats, want)
	}
}

func TestComputeStats_EmptyThread(t *testing.T) {
	stats := ComputeStats(Post{Score: 7}, nil)
	if stats.TotalComments != 0 || stats.TotalCommentScore != 0 {
		t.Fatalf("totals must be zero: %+v", stats)
	}
	if stats.AvgCommentScore != 0 || stats.CommentsPerScorePoint != 0 {
		t.Fatalf("ratios must collapse to zero, not divide: %+v", stats)
	}
}

func TestComputeStats_NilScoresCountAsZero(t *testing.T) {
	comments := []Comment{
		{ID: "a", Score: nil},
		{ID: "b", Score: intPtr(6)},
		{ID: "c", Score: nil},
	}

	stats := ComputeStats(Post{}, comments)

	if stats.TotalComments != 3 {
		t.Fatalf("nil-score comments still count: %+v", stats)
	}
	if stats.TotalCommentScore != 6 {
		t.Fatalf("nil scores must aggregate as zero: %+v", stats)
	}
	if stats.AvgCommentScore != 2.0 {
		t.Fatalf("avg mismatch: %+v", stats)
	}
}

func TestComputeStats_ZeroScoreSumWithComments(t *testing.T) {
	comments := []Comment{
		{ID: "a", Score: intPtr(2)},
		{ID: "b", Score: intPtr(-2)},
	}

	stats := ComputeStats(Post{}, comments)

	if stats.TotalCommentScore != 0 {
		t.Fatalf("score sum mismatch: %+v", stats)
	}
	if stats.CommentsPerScorePoint != 0 {
		t.Fatalf("zero score sum must not divide: %+v", stats)
	}
	if stats.AvgCommentScore != 0 {
		t.Fatalf("avg of zero sum is zero: %+v", stats)
	}
}

func TestScoreValue(t *testing.T) {
	if (Comment{}).ScoreValue() != 0 {
		t.Fatalf("nil score must read as zero")
	}
	if (Comment{Score: intPtr(-4)}).ScoreValue() != -4 {
		t.Fatalf("present score must pass through")
	}
}
