package entity

import (
	"context"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Age      int    `json:"age"`
	Bio      string `json:"bio"`
}

func (r *CreateUserRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Name == "" {
		problems["Name"] = append(problems["Name"], "Name is required")
	}
	if r.Email == "" {
		problems["Email"] = append(problems["Email"], "Email is required")
	} else if !emailRegex.MatchString(r.Email) {
		problems["Email"] = append(problems["Email"], "Invalid email format")
	}
	if r.Password == "" {
		problems["Password"] = append(problems["Password"], "Password is required")
	}
	if len([]byte(r.Password)) > 72 {
		problems["Password"] = append(problems["Password"], "Password length should not exceed 72 bytes")
	}
	if r.Age < 18 {
		problems["Age"] = append(problems["Age"], "You must be at least 18")
	}

	return problems
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *SignInRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Email == "" {
		problems["Email"] = append(problems["Email"], "Email is required")
	}
	if r.Password == "" {
		problems["Password"] = append(problems["Password"], "Password is required")
	}

	return problems
}

// UpdateProfileRequest carries a partial profile edit; nil fields are left
// untouched.
type UpdateProfileRequest struct {
	Name       *string   `json:"name"`
	Age        *int      `json:"age"`
	Bio        *string   `json:"bio"`
	Gender     *string   `json:"gender"`
	Intent     *string   `json:"intent"`
	LookingFor *[]string `json:"lookingFor"`
	Photos     *[]string `json:"photos"`
}

type SubmitQuestionsRequest struct {
	Gender      string   `json:"gender"`
	Intent      string   `json:"intent"`
	LookingFor  []string `json:"lookingFor"`
	MusicGenres []string `json:"musicGenres"`
	Hobbies     []string `json:"hobbies"`
	Passions    []string `json:"passions"`
	About       string   `json:"about"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

type ReactRequest struct {
	Type string `json:"type"`
}

type AnswerPromptRequest struct {
	Answer string `json:"answer"`
}
