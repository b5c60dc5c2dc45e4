package apiMessages

import (
	"net/http"
	"strconv"

	"github.com/adityarizki/amora/internal/entity"
	"github.com/adityarizki/amora/internal/routes/api/respond"
	chatUseCase "github.com/adityarizki/amora/internal/usecase/chat"
	"github.com/adityarizki/amora/internal/ws"
	"github.com/adityarizki/amora/pkg/http_util"
	"github.com/labstack/echo"
)

func ListHandler(c echo.Context, chatCase chatUseCase.IChatUseCase) error {
	matchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return http_util.BadRequest(c, "invalid match id")
	}

	messages, err := chatCase.List(c.Request().Context(), respond.CurrentUserID(c), uint(matchID))
	if err != nil {
		return respond.Error(c, err)
	}
	return http_util.Encode(c, http.StatusOK, messages)
}

// SendHandler persists the message, then mirrors it to the match room and
// the recipient's personal channel.
func SendHandler(c echo.Context, chatCase chatUseCase.IChatUseCase, hub *ws.Hub) error {
	matchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return http_util.BadRequest(c, "invalid match id")
	}

	reqBody, err := http_util.Decode[entity.SendMessageRequest](c)
	if err != nil {
		return http_util.BadRequest(c, "invalid request")
	}

	message, err := chatCase.Send(c.Request().Context(), respond.CurrentUserID(c), uint(matchID), reqBody.Content)
	if err != nil {
		return respond.Error(c, err)
	}

	hub.Broadcast(message.MatchID, "message", message)
	hub.Notify(message.RecipientID, "newMessage", ws.Notification{
		MatchID:   message.MatchID,
		MessageID: message.ID,
		From:      message.SenderID,
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
	})

	return http_util.Encode(c, http.StatusCreated, message)
}

func ReactHandler(c echo.Context, chatCase chatUseCase.IChatUseCase, hub *ws.Hub) error {
	messageID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return http_util.BadRequest(c, "invalid message id")
	}

	reqBody, err := http_util.Decode[entity.ReactRequest](c)
	if err != nil {
		return http_util.BadRequest(c, "invalid request")
	}

	message, err := chatCase.React(c.Request().Context(), respond.CurrentUserID(c), uint(messageID), reqBody.Type)
	if err != nil {
		return respond.Error(c, err)
	}

	hub.Broadcast(message.MatchID, "reaction", ws.ReactionUpdate{
		MessageID: message.ID,
		Reactions: message.Reactions,
	})

	return http_util.Encode(c, http.StatusOK, message)
}
