package ws

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/adityarizki/amora/internal/entity"
	chatUseCase "github.com/adityarizki/amora/internal/usecase/chat"
	matchUseCase "github.com/adityarizki/amora/internal/usecase/match"
)

// Envelope is the wire frame for both directions: a named event plus its
// payload.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type outbound struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type joinPayload struct {
	MatchID uint `json:"matchId"`
}

type messagePayload struct {
	MatchID uint   `json:"matchId"`
	Content string `json:"content"`
}

type reactPayload struct {
	MatchID   uint   `json:"matchId"`
	MessageID uint   `json:"messageId"`
	Type      string `json:"type"`
}

// ReactionUpdate is the room broadcast after a reaction change.
type ReactionUpdate struct {
	MessageID uint              `json:"messageId"`
	Reactions []entity.Reaction `json:"reactions"`
}

// Notification is the lightweight personal-channel event for a new message.
type Notification struct {
	MatchID   uint      `json:"matchId"`
	MessageID uint      `json:"messageId"`
	From      uint      `json:"from"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type frame struct {
	client   *Client
	envelope Envelope
}

// delivery routes an event either to a match room or to one user's
// connections.
type delivery struct {
	matchID uint
	userID  uint
	event   outbound
}

// Hub owns the set of connected clients and relays chat events between
// them. All client/room state is touched only from the Run goroutine;
// message and reaction persistence runs off the loop so a slow query
// never stalls delivery for everyone else.
type Hub struct {
	clients map[*Client]bool

	inbound    chan frame
	deliveries chan delivery
	register   chan *Client
	unregister chan *Client

	matchUseCase matchUseCase.IMatchUseCase
	chatUseCase  chatUseCase.IChatUseCase
}

func NewHub(matchUseCase matchUseCase.IMatchUseCase, chatUseCase chatUseCase.IChatUseCase) *Hub {
	return &Hub{
		clients:      make(map[*Client]bool),
		inbound:      make(chan frame),
		deliveries:   make(chan delivery, 64),
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		matchUseCase: matchUseCase,
		chatUseCase:  chatUseCase,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case f := <-h.inbound:
			h.handle(f.client, f.envelope)
		case d := <-h.deliveries:
			h.deliver(d)
		}
	}
}

// handle dispatches one client frame. Bad or unauthorized frames are
// dropped without a reply.
func (h *Hub) handle(client *Client, envelope Envelope) {
	ctx := context.Background()

	switch envelope.Event {
	case "joinMatch":
		var payload joinPayload
		if err := json.Unmarshal(envelope.Data, &payload); err != nil {
			return
		}
		if _, err := h.matchUseCase.MemberOf(ctx, client.userID, payload.MatchID); err != nil {
			return
		}
		client.rooms[payload.MatchID] = true

	case "message":
		var payload messagePayload
		if err := json.Unmarshal(envelope.Data, &payload); err != nil {
			return
		}
		go h.relayMessage(client.userID, payload)

	case "react":
		var payload reactPayload
		if err := json.Unmarshal(envelope.Data, &payload); err != nil {
			return
		}
		go h.relayReaction(client.userID, payload)
	}
}

// relayMessage persists a client message and queues the fan-out. Runs off
// the hub loop; delivery goes back through the deliveries channel.
func (h *Hub) relayMessage(senderID uint, payload messagePayload) {
	message, err := h.chatUseCase.Send(context.Background(), senderID, payload.MatchID, payload.Content)
	if err != nil {
		log.Printf("ws send failed: %v", err)
		return
	}
	h.Broadcast(payload.MatchID, "message", message)
	h.Notify(message.RecipientID, "newMessage", Notification{
		MatchID:   message.MatchID,
		MessageID: message.ID,
		From:      message.SenderID,
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
	})
}

func (h *Hub) relayReaction(userID uint, payload reactPayload) {
	message, err := h.chatUseCase.React(context.Background(), userID, payload.MessageID, payload.Type)
	if err != nil {
		log.Printf("ws react failed: %v", err)
		return
	}
	h.Broadcast(message.MatchID, "reaction", ReactionUpdate{
		MessageID: message.ID,
		Reactions: message.Reactions,
	})
}

func (h *Hub) deliver(d delivery) {
	payload, err := json.Marshal(d.event)
	if err != nil {
		return
	}
	for client := range h.clients {
		if d.matchID != 0 && !client.rooms[d.matchID] {
			continue
		}
		if d.userID != 0 && client.userID != d.userID {
			continue
		}
		select {
		case client.send <- payload:
		default:
			close(client.send)
			delete(h.clients, client)
		}
	}
}

// Broadcast mirrors a REST-originated event to every connection joined to
// the match room. Safe to call from any goroutine.
func (h *Hub) Broadcast(matchID uint, event string, data interface{}) {
	h.deliveries <- delivery{matchID: matchID, event: outbound{Event: event, Data: data}}
}

// Notify delivers a personal event to every connection of one user.
func (h *Hub) Notify(userID uint, event string, data interface{}) {
	h.deliveries <- delivery{userID: userID, event: outbound{Event: event, Data: data}}
}
