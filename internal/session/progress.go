package session

// Progress summarizes how far a session has come through a bank.
type Progress struct {
	Answered int
	Total    int
	Percent  float64 // Answered / Total, 0 when Total is 0
}

// Done reports whether every question has an answer.
func (p Progress) Done() bool {
	return p.Total > 0 && p.Answered >= p.Total
}

// ProgressOf counts the answers in s that belong to questions of a bank with
// the given question IDs.
func ProgressOf(s State, questionIDs []int) Progress {
	known := make(map[int]bool, len(questionIDs))
	for _, id := range questionIDs {
		known[id] = true
	}

	p := Progress{Total: len(questionIDs)}
	for _, a := range s.Answers {
		if known[a.QuestionID] {
			p.Answered++
		}
	}
	if p.Total > 0 {
		p.Percent = float64(p.Answered) / float64(p.Total)
	}
	return p
}
