package models

import (
	"time"

	"github.com/m04kA/SMC-StorefrontService/internal/schedule"
)

// SelectDateRequest запрос на выбор даты исполнения для сессии
type SelectDateRequest struct {
	SessionID string
	DateISO   string
}

// SelectTimeRequest запрос на выбор слота исполнения для сессии
type SelectTimeRequest struct {
	SessionID string
	Time      string
}

// SelectionResponse снимок выбора расписания сессии
type SelectionResponse struct {
	State         string
	SelectedDate  string     // ISO дата, пустая до выбора даты
	SelectedTime  string     // HH:MM, пустое до завершения выбора
	FulfillmentAt *time.Time // составленная метка времени, nil до завершения
}

// FromSelection строит снимок из машины состояний выбора
func FromSelection(sel *schedule.Selection) *SelectionResponse {
	resp := &SelectionResponse{State: string(sel.State())}

	if dateISO, ok := sel.SelectedDateISO(); ok {
		resp.SelectedDate = dateISO
	}
	if t, ok := sel.SelectedTime(); ok {
		resp.SelectedTime = t.String()
	}
	if ts, ok := sel.ComposedTimestamp(); ok {
		resp.FulfillmentAt = &ts
	}
	return resp
}
