package entity

import "time"

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type LikeResponse struct {
	Liked        bool  `json:"liked"`
	MatchCreated bool  `json:"matchCreated"`
	MatchID      *uint `json:"matchId"`
}

type SkipResponse struct {
	Skipped bool `json:"skipped"`
}

// DiscoverUser is a feed candidate enriched with the mutual-interest summary
// relative to the requester.
type DiscoverUser struct {
	User
	Mutual MutualInterests `json:"mutual"`
}

type DiscoverResponse struct {
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Count int            `json:"count"`
	Users []DiscoverUser `json:"users"`
}

// MatchSummary is one entry of the matches list: the other member plus the
// reasons the two were matched.
type MatchSummary struct {
	ID          uint            `json:"id"`
	OtherUser   *User           `json:"otherUser"`
	LastMessage string          `json:"lastMessage"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Reasons     []string        `json:"reasons"`
	Mutual      MutualInterests `json:"mutual"`
}

type StartersResponse struct {
	Starters []string `json:"starters"`
}

type PickupLineResponse struct {
	Line string `json:"line"`
}

type TodayPromptResponse struct {
	Date     string `json:"date"`
	Prompt   string `json:"prompt"`
	Answered bool   `json:"answered"`
	Answer   string `json:"answer"`
}

type AnswerPromptResponse struct {
	Saved  bool   `json:"saved"`
	Date   string `json:"date"`
	Answer string `json:"answer"`
}

type QuestionOptions struct {
	Genders     []string `json:"genders"`
	Intents     []string `json:"intents"`
	MusicGenres []string `json:"musicGenres"`
	Hobbies     []string `json:"hobbies"`
	Passions    []string `json:"passions"`
}
