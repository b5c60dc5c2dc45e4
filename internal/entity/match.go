package entity

import "time"

// Match is a confirmed mutual like between two users. The pair is stored
// ordered (UserOneID < UserTwoID) so the unique index on both columns
// guarantees at most one match per unordered pair, even when two reciprocal
// likes race across process instances.
type Match struct {
	ID          uint      `gorm:"primaryKey;column:id" json:"id"`
	UserOneID   uint      `gorm:"column:user_one_id;not null;uniqueIndex:idx_match_pair" json:"userOneId"`
	UserTwoID   uint      `gorm:"column:user_two_id;not null;uniqueIndex:idx_match_pair" json:"userTwoId"`
	LastMessage string    `gorm:"column:last_message" json:"lastMessage"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// OrderPair normalizes an unordered user pair into storage order.
func OrderPair(a, b uint) (uint, uint) {
	if a > b {
		return b, a
	}
	return a, b
}

// HasMember reports whether the given user is one of the two match members.
func (m *Match) HasMember(userID uint) bool {
	return m.UserOneID == userID || m.UserTwoID == userID
}

// OtherMember returns the match member that is not the given user.
func (m *Match) OtherMember(userID uint) uint {
	if m.UserOneID == userID {
		return m.UserTwoID
	}
	return m.UserOneID
}

const (
	ReactionLove  = "love"
	ReactionLike  = "like"
	ReactionFunny = "funny"
)

// ValidReactionType reports whether t is one of the supported reaction types.
func ValidReactionType(t string) bool {
	return t == ReactionLove || t == ReactionLike || t == ReactionFunny
}

// Reaction is a single user's reaction to a message. The unique index keeps
// at most one reaction per user per message; re-sending the same type
// removes it, a different type overwrites it.
type Reaction struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"-"`
	MessageID uint      `gorm:"column:message_id;not null;uniqueIndex:idx_reaction_user" json:"-"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_reaction_user" json:"user"`
	Type      string    `gorm:"column:type;not null" json:"type"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

// Message belongs to exactly one match. Immutable after creation except for
// its reactions.
type Message struct {
	ID          uint       `gorm:"primaryKey;column:id" json:"id"`
	MatchID     uint       `gorm:"column:match_id;not null;index:idx_message_match" json:"matchId"`
	SenderID    uint       `gorm:"column:sender_id;not null" json:"sender"`
	RecipientID uint       `gorm:"column:recipient_id;not null" json:"recipient"`
	Content     string     `gorm:"column:content;not null" json:"content"`
	Reactions   []Reaction `gorm:"foreignKey:MessageID" json:"reactions"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"createdAt"`
}

// MutualInterests is the derived tag overlap between two profiles. Never
// persisted.
type MutualInterests struct {
	MusicGenres []string `json:"musicGenres"`
	Hobbies     []string `json:"hobbies"`
	Passions    []string `json:"passions"`
	Shared      []string `json:"shared"`
	Count       int      `json:"count"`
}

// DailyPromptAnswer stores one user's answer to the prompt of a given day.
type DailyPromptAnswer struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"-"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_prompt_user_date" json:"user"`
	Date      string    `gorm:"column:date;not null;uniqueIndex:idx_prompt_user_date" json:"date"`
	Answer    string    `gorm:"column:answer" json:"answer"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}
