package player

// PlayerFilter narrows the roster listing. Empty fields are ignored.
type PlayerFilter struct {
	Club     string
	Position string
	Query    string
}

type PlayerResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Position       string `json:"position"`
	ClubID         uint   `json:"club_id"`
	Club           string `json:"club"`
	ClubLogo       string `json:"club_logo"`
	Citizenship    string `json:"citizenship"`
	Age            int    `json:"age"`
	Goals          int    `json:"goals"`
	Assists        int    `json:"assists"`
	MatchesPlayed  int    `json:"matches_played"`
	CleanSheets    int    `json:"clean_sheets"`
	ProfilePicture string `json:"profile_picture"`
}
