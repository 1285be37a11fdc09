package models

// LegacyPayload is the flat pre-migration data set handed over for the
// one-time import. Each map goes from a user id rendered as a string to an
// optional JSON-encoded blob; absent blobs mean the user never saved that
// category.
type LegacyPayload struct {
	Users        []UserProfile      `json:"users"`
	Settings     map[string]*string `json:"settings"`
	Stats        map[string]*string `json:"stats"`
	Progress     map[string]*string `json:"progress"`
	Courses      map[string]*string `json:"courses"`
	Snippets     map[string]*string `json:"snippets"`
	Activity     map[string]*string `json:"activity"`
	DailyResults []DailyTestResult  `json:"dailyResults"`
}
