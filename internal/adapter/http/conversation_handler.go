package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tdngo/gomarket-api/internal/adapter/repo"
	domain "github.com/tdngo/gomarket-api/internal/entity"
	"github.com/tdngo/gomarket-api/internal/usecase"
)

type ConversationHandler struct {
	conversations *repo.MongoConversationRepo
	messages      *repo.MongoMessageRepo
	events        usecase.EventPublisher
}

func NewConversationHandler(conversations *repo.MongoConversationRepo, messages *repo.MongoMessageRepo, events usecase.EventPublisher) *ConversationHandler {
	return &ConversationHandler{conversations: conversations, messages: messages, events: events}
}

type createConversationReq struct {
	GroupTitle string `json:"groupTitle" binding:"required"`
	UserID     string `json:"userId" binding:"required"`
	SellerID   string `json:"sellerId" binding:"required"`
}

// Create is idempotent on groupTitle: a second create returns the existing
// conversation.
func (h *ConversationHandler) Create(c *gin.Context) {
	var req createConversationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "bad_request")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	existing, err := h.conversations.GetByGroupTitle(ctx, req.GroupTitle)
	if err == nil {
		ok(c, http.StatusOK, gin.H{"conversation": existing})
		return
	}
	if !errors.Is(err, domain.ErrNotFound) {
		fail(c, err)
		return
	}

	now := time.Now().UTC()
	conv := domain.Conversation{
		ID:         uuid.NewString(),
		GroupTitle: req.GroupTitle,
		Members:    []string{req.UserID, req.SellerID},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := h.conversations.Create(ctx, &conv); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"conversation": conv})
}

func (h *ConversationHandler) ListByMember(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	conversations, err := h.conversations.ListByMember(ctx, c.Param("memberId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"conversations": conversations})
}

type lastMessageReq struct {
	LastMessage   string `json:"lastMessage" binding:"required"`
	LastMessageID string `json:"lastMessageId" binding:"required"`
}

func (h *ConversationHandler) UpdateLastMessage(c *gin.Context) {
	var req lastMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "bad_request")
		return
	}
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.conversations.UpdateLastMessage(ctx, id, req.LastMessage, req.LastMessageID, time.Now().UTC()); err != nil {
		fail(c, err)
		return
	}

	// Best-effort fanout to the relay.
	_ = h.events.PublishConversationUpdated(ctx, usecase.ConversationUpdatedMsg{
		ConversationID: id,
		LastMessage:    req.LastMessage,
		LastMessageID:  req.LastMessageID,
	})
	ok(c, http.StatusOK, gin.H{"conversationId": id})
}

type createMessageReq struct {
	ConversationID string   `json:"conversationId" binding:"required"`
	Sender         string   `json:"sender" binding:"required"`
	Text           string   `json:"text"`
	Images         []string `json:"images"`
}

func (h *ConversationHandler) CreateMessage(c *gin.Context) {
	var req createMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		failBadRequest(c, "bad_request")
		return
	}
	if req.Text == "" && len(req.Images) == 0 {
		fail(c, domain.ErrValidation)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	msg := domain.Message{
		ID:             uuid.NewString(),
		ConversationID: req.ConversationID,
		Sender:         req.Sender,
		Text:           req.Text,
		Images:         req.Images,
		CreatedAt:      time.Now().UTC(),
	}
	if err := h.messages.Create(ctx, &msg); err != nil {
		fail(c, err)
		return
	}

	if err := h.conversations.UpdateLastMessage(ctx, msg.ConversationID, msg.Text, msg.ID, msg.CreatedAt); err != nil && !errors.Is(err, domain.ErrNotFound) {
		fail(c, err)
		return
	}
	_ = h.events.PublishConversationUpdated(ctx, usecase.ConversationUpdatedMsg{
		ConversationID: msg.ConversationID,
		LastMessage:    msg.Text,
		LastMessageID:  msg.ID,
	})

	ok(c, http.StatusCreated, gin.H{"message": msg})
}

func (h *ConversationHandler) ListMessages(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	messages, err := h.messages.ListByConversation(ctx, c.Param("conversationId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"messages": messages})
}
