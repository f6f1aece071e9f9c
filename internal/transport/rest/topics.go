package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/wosa-backend/internal/domain"
	"github.com/heartmarshall/wosa-backend/internal/service/topic"
	"github.com/heartmarshall/wosa-backend/internal/transport/dataloader"
)

// topicService defines the minimal interface needed by TopicHandler.
type topicService interface {
	ListTopics(ctx context.Context, input topic.ListInput) ([]domain.Topic, error)
	GetTopic(ctx context.Context, id int64) (*domain.TopicDetail, error)
	MembersByTopicIDs(ctx context.Context, ids []int64) (map[int64]domain.TopicMembers, error)
	TopicHistory(ctx context.Context, id int64, limit int) ([]domain.TopicHistory, error)
	LinkInterface(ctx context.Context, input topic.LinkInterfaceInput) (*domain.Topic, error)
	Deprecate(ctx context.Context, id int64) (*domain.Topic, error)
}

// TopicHandler serves topic browsing and curation endpoints.
type TopicHandler struct {
	svc topicService
	log *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(svc topicService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{svc: svc, log: logger.With("handler", "topics")}
}

// List handles GET /wosa/topics?skip&limit&environment&include=members.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	topics, err := h.svc.ListTopics(r.Context(), topic.ListInput{
		Environment: optionalQuery(r, "environment"),
		Page:        page,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]topicResponse, len(topics))
	for i := range topics {
		out[i] = toTopicResponse(&topics[i])
	}

	if includes(r, "members") && len(topics) > 0 {
		members, err := h.loadMembers(r.Context(), topics)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		for i := range out {
			out[i].membersResponse = toMembersResponse(members[i])
		}
	}

	writeJSON(w, http.StatusOK, out)
}

// loadMembers goes through the request's dataloader when present so member
// rows are fetched with one query per child table.
func (h *TopicHandler) loadMembers(ctx context.Context, topics []domain.Topic) ([]domain.TopicMembers, error) {
	ids := make([]int64, len(topics))
	for i, t := range topics {
		ids[i] = t.ID
	}

	if loaders := dataloader.FromContext(ctx); loaders != nil {
		return loaders.LoadMembers(ctx, ids)
	}

	byID, err := h.svc.MembersByTopicIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]domain.TopicMembers, len(ids))
	for i, id := range ids {
		m, ok := byID[id]
		if !ok {
			m = domain.NewTopicMembers()
		}
		out[i] = m
	}
	return out, nil
}

// Get handles GET /wosa/topics/{id}.
func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.svc.GetTopic(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := toTopicResponse(&detail.Topic)
	resp.membersResponse = toMembersResponse(detail.Members)
	writeJSON(w, http.StatusOK, resp)
}

// History handles GET /wosa/topics/{id}/history?limit.
func (h *TopicHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n := 0
	if limit != nil {
		n = *limit
	}
	history, err := h.svc.TopicHistory(r.Context(), id, n)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(history, toHistoryResponse))
}

type linkInterfaceRequest struct {
	InterfaceID *int64 `json:"interface_id"`
}

// LinkInterface handles PUT /wosa/topics/{id}/interface. A null
// interface_id clears the link.
func (h *TopicHandler) LinkInterface(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req linkInterfaceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.svc.LinkInterface(r.Context(), topic.LinkInterfaceInput{TopicID: id, InterfaceID: req.InterfaceID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(t))
}

// Deprecate handles POST /wosa/topics/{id}/deprecate.
func (h *TopicHandler) Deprecate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	t, err := h.svc.Deprecate(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(t))
}

// includes reports whether the comma-separated include parameter names want.
func includes(r *http.Request, want string) bool {
	for _, v := range strings.Split(r.URL.Query().Get("include"), ",") {
		if strings.EqualFold(strings.TrimSpace(v), want) {
			return true
		}
	}
	return false
}
