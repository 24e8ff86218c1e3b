package http

import (
	"time"

	"calendar-event-backend/internal/event"
	"calendar-event-backend/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Timezone    string `json:"timezone"`
}

func (r createReq) toInput() event.CreateInput {
	return event.CreateInput{
		Summary:     r.Summary,
		Description: r.Description,
		Start:       r.Start,
		End:         r.End,
		Timezone:    r.Timezone,
	}
}

// ---

type listReq struct {
	From time.Time
}

func (r listReq) toInput() event.ListInput {
	return event.ListInput{From: r.From}
}

// --- Response DTOs ---

type createResp struct {
	Status   string `json:"status"`
	EventID  string `json:"event_id"`
	HTMLLink string `json:"html_link"`
}

func (h *handler) newCreateResp(out event.CreateOutput) createResp {
	return createResp{
		Status:   response.StatusSuccess,
		EventID:  out.EventID,
		HTMLLink: out.HTMLLink,
	}
}

type eventResp struct {
	ID          string `json:"id"`
	Summary     string `json:"summary"`
	Description string `json:"description,omitempty"`
	HTMLLink    string `json:"html_link"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Timezone    string `json:"timezone,omitempty"`
	EventStatus string `json:"event_status,omitempty"`
}

type listResp struct {
	Status string      `json:"status"`
	Count  int         `json:"count"`
	Events []eventResp `json:"events"`
}

func (h *handler) newListResp(out event.ListOutput) listResp {
	events := make([]eventResp, len(out.Events))
	for i, e := range out.Events {
		events[i] = eventResp{
			ID:          e.ID,
			Summary:     e.Summary,
			Description: e.Description,
			HTMLLink:    e.HTMLLink,
			Start:       e.Start,
			End:         e.End,
			Timezone:    e.Timezone,
			EventStatus: e.Status,
		}
	}
	return listResp{
		Status: response.StatusSuccess,
		Count:  len(events),
		Events: events,
	}
}
