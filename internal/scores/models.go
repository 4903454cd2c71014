package scores

// tournamentIndex is the index.json at the root of a tournament directory.
// The set field names the question set by display name, not slug.
type tournamentIndex struct {
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Set            string `json:"set"`
	Location       string `json:"location"`
	Level          string `json:"level"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	ExcludedRounds []int  `json:"rounds_to_exclude_from_individual_stats"`
}

// gameFile is one qbj-style game record.
type gameFile struct {
	Packet         string          `json:"packets"`
	TossupsRead    int             `json:"tossups_read"`
	MatchTeams     []matchTeam     `json:"match_teams"`
	MatchQuestions []matchQuestion `json:"match_questions"`
}

type matchTeam struct {
	Team teamInfo `json:"team"`
}

type teamInfo struct {
	Name    string       `json:"name"`
	Players []playerInfo `json:"players"`
}

type playerInfo struct {
	Name string `json:"name"`
}

type matchQuestion struct {
	TossupQuestion questionRef `json:"tossup_question"`
	Buzzes         []buzzEvent `json:"buzzes"`
	Bonus          *bonusEvent `json:"bonus"`
}

type questionRef struct {
	QuestionNumber int `json:"question_number"`
}

type buzzEvent struct {
	BuzzPosition buzzPosition `json:"buzz_position"`
	Player       playerInfo   `json:"player"`
	Team         teamInfo     `json:"team"`
	Result       buzzResult   `json:"result"`
}

type buzzPosition struct {
	WordIndex int `json:"word_index"`
}

type buzzResult struct {
	Value int `json:"value"`
}

type bonusEvent struct {
	Question questionRef    `json:"question"`
	Parts    []bonusPartRec `json:"parts"`
}

type bonusPartRec struct {
	ControlledPoints int `json:"controlled_points"`
}
