package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	GenderMale      = "male"
	GenderFemale    = "female"
	GenderNonBinary = "non-binary"
	GenderOther     = "other"
)

const (
	IntentSerious = "serious"
	IntentCasual  = "casual"
	IntentFriends = "friends"
)

// Genders lists every accepted gender value, also the default lookingFor set.
var Genders = []string{GenderMale, GenderFemale, GenderNonBinary, GenderOther}

// Intents lists every accepted dating intent.
var Intents = []string{IntentSerious, IntentCasual, IntentFriends}

// StringList is a []string stored as a JSON column. A nil list marshals as []
// so clients never see null where they expect an array.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// ProfileQuestions holds the onboarding answers used for mutual-interest
// computation. Stored as a single JSON column.
type ProfileQuestions struct {
	MusicGenres StringList `json:"musicGenres"`
	Hobbies     StringList `json:"hobbies"`
	Passions    StringList `json:"passions"`
	About       string     `json:"about"`
}

func (q ProfileQuestions) Value() (driver.Value, error) {
	return json.Marshal(q)
}

func (q *ProfileQuestions) Scan(value interface{}) error {
	if value == nil {
		*q = ProfileQuestions{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, q)
	case string:
		return json.Unmarshal([]byte(v), q)
	default:
		return fmt.Errorf("unsupported type %T for ProfileQuestions", value)
	}
}

type User struct {
	ID               uint             `gorm:"primaryKey;column:id" json:"id"`
	Name             string           `gorm:"not null;column:name" json:"name"`
	Email            string           `gorm:"unique;not null;column:email" json:"email"`
	Password         string           `gorm:"not null;column:password" json:"-"`
	Age              int              `gorm:"not null;column:age" json:"age"`
	Bio              string           `gorm:"column:bio" json:"bio"`
	Photos           StringList       `gorm:"type:jsonb;column:photos" json:"photos"`
	Gender           string           `gorm:"column:gender;default:other" json:"gender"`
	Intent           string           `gorm:"column:intent;default:friends" json:"intent"`
	LookingFor       StringList       `gorm:"type:jsonb;column:looking_for" json:"lookingFor"`
	ProfileQuestions ProfileQuestions `gorm:"type:jsonb;column:profile_questions" json:"profileQuestions"`
	ProfileComplete  bool             `gorm:"column:profile_complete" json:"profileComplete"`
	CreatedAt        time.Time        `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt        time.Time        `gorm:"column:updated_at" json:"updatedAt"`
}

// PrimaryPhoto returns the first photo or "" when the user has none.
func (u *User) PrimaryPhoto() string {
	if len(u.Photos) == 0 {
		return ""
	}
	return u.Photos[0]
}

type SwipeAction uint

const (
	ActionLike SwipeAction = iota + 1
	ActionSkip
)

func (a SwipeAction) String() string {
	switch a {
	case ActionLike:
		return "Like"
	case ActionSkip:
		return "Skip"
	default:
		return "Unknown"
	}
}

// Swipe records the current like/skip decision, one row per actor/target
// pair. A later like can upgrade an earlier skip; a skip never demotes a
// like.
type Swipe struct {
	ActorID   uint        `gorm:"column:actor_id;not null;primaryKey" json:"actorId"`
	TargetID  uint        `gorm:"column:target_id;not null;primaryKey" json:"targetId"`
	Action    SwipeAction `gorm:"column:action;type:smallint;not null" json:"action"`
	CreatedAt time.Time   `gorm:"column:created_at" json:"createdAt"`
}

// CandidateFilter narrows the discovery feed query.
type CandidateFilter struct {
	ExcludeIDs   []uint
	Genders      []string
	Intent       string
	CreatedAfter *time.Time
	Offset       int
	Limit        int
}
