package domain

// Account is a row in the users table. The uid is either the identifier the
// identity provider issued at signup or a locally generated UUID when the
// provider response carried none. AuthToken is empty until the first game
// launch and is overwritten on every subsequent launch.
type Account struct {
	UID        string `json:"uid"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	SchoolName string `json:"schoolName"`
	AuthToken  string `json:"-"`
}

// TelemetrySession is one normalized gameplay telemetry submission.
// Timestamps are stored as the opaque strings the game client sent; they are
// never parsed as datetimes.
type TelemetrySession struct {
	UserID         string  `json:"userID"`
	SessionID      string  `json:"sessionID"`
	LevelID        string  `json:"levelID"`
	TotalQuestions int     `json:"totalQuestions"`
	WrongAnswers   int     `json:"wrongAnswers"`
	SceneRuns      int     `json:"sceneRuns"`
	TimeToFindZone float64 `json:"timeToFindZone"`
	TimestampStart string  `json:"initialTimestamp"`
	TimestampEnd   string  `json:"finalTimestamp"`
	HintUsed       bool    `json:"hintUsed"`
	FinalScore     int     `json:"finalScore"`
}

// Score is one score submission. Scores are history, not best-score: multiple
// rows per (user, level) are expected.
type Score struct {
	UserID     string `json:"userID"`
	LevelID    string `json:"levelID"`
	FinalScore int    `json:"finalScore"`
}

// Course is one entry in the course catalog served to the frontend.
type Course struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	VideoURL string `json:"videoUrl"`
}
