package http

import (
	"encoding/json"
	"fmt"
	"time"

	"ostrack/internal/core/application/usecases/queries"
)

// FlexTime accepts either an RFC 3339 string or epoch milliseconds in JSON
// bodies. Older clients send log dates as millisecond numbers.
type FlexTime struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *FlexTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		t.Time = time.Time{}
		return nil
	}

	var millis int64
	if err := json.Unmarshal(data, &millis); err == nil {
		t.Time = time.UnixMilli(millis)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be an RFC 3339 string or epoch milliseconds")
	}

	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("date must be an RFC 3339 string or epoch milliseconds: %w", err)
	}

	t.Time = parsed
	return nil
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type createOrderRequest struct {
	OrderNumber   string   `json:"orderNumber"`
	PartName      string   `json:"partName"`
	PartNumber    string   `json:"partNumber"`
	Quantity      int      `json:"quantity"`
	Note          string   `json:"note"`
	Priority      string   `json:"priority"`
	Status        string   `json:"status"`
	CurrentSector string   `json:"currentSector"`
	Routing       []string `json:"routing"`
	CreatedAt     FlexTime `json:"createdAt"`
}

type reportProductionRequest struct {
	Quantity          int    `json:"quantity"`
	DefectiveQuantity int    `json:"defectiveQuantity"`
	OperatorName      string `json:"operatorName"`
}

type validateProductionRequest struct {
	Approved bool `json:"approved"`
}

type patchOrderRequest struct {
	PartName      *string `json:"partName"`
	PartNumber    *string `json:"partNumber"`
	Quantity      *int    `json:"quantity"`
	Note          *string `json:"note"`
	Priority      *string `json:"priority"`
	Status        *string `json:"status"`
	CurrentSector *string `json:"currentSector"`
	OrderNumber   *string `json:"orderNumber"`
}

type createLogRequest struct {
	OrderNumber string   `json:"orderNumber"`
	Sector      string   `json:"sector"`
	Description string   `json:"description"`
	Date        FlexTime `json:"date"`
}

type renameLogsRequest struct {
	OldOrderNumber string `json:"oldOrderNumber"`
	NewOrderNumber string `json:"newOrderNumber"`
}

type renameLogsResponse struct {
	Renamed int64 `json:"renamed"`
}

type pausedResponse struct {
	Paused int `json:"paused"`
}

type workOrderResponse struct {
	OrderNumber       string    `json:"orderNumber"`
	PartName          string    `json:"partName"`
	PartNumber        string    `json:"partNumber"`
	Quantity          int       `json:"quantity"`
	Note              string    `json:"note"`
	Priority          string    `json:"priority"`
	Status            string    `json:"status"`
	Routing           []string  `json:"routing"`
	CurrentSector     string    `json:"currentSector"`
	PendingSector     string    `json:"pendingSector"`
	CurrentQuantity   int       `json:"currentQuantity"`
	DefectiveQuantity int       `json:"defectiveQuantity"`
	OperatorName      string    `json:"operatorName"`
	CreatedAt         time.Time `json:"createdAt"`
}

func toWorkOrderResponse(row queries.WorkOrderResponse) workOrderResponse {
	return workOrderResponse{
		OrderNumber:       row.OrderNumber,
		PartName:          row.PartName,
		PartNumber:        row.PartNumber,
		Quantity:          row.Quantity,
		Note:              row.Note,
		Priority:          row.Priority,
		Status:            row.Status,
		Routing:           row.Routing,
		CurrentSector:     row.CurrentSector,
		PendingSector:     row.PendingSector,
		CurrentQuantity:   row.CurrentQuantity,
		DefectiveQuantity: row.DefectiveQuantity,
		OperatorName:      row.OperatorName,
		CreatedAt:         row.CreatedAt,
	}
}

func toWorkOrderResponses(rows []queries.WorkOrderResponse) []workOrderResponse {
	out := make([]workOrderResponse, len(rows))
	for i, row := range rows {
		out[i] = toWorkOrderResponse(row)
	}
	return out
}

type logEntryResponse struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"orderNumber"`
	Sector      string    `json:"sector"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

func toLogEntryResponses(rows []queries.LogEntryResponse) []logEntryResponse {
	out := make([]logEntryResponse, len(rows))
	for i, row := range rows {
		out[i] = logEntryResponse{
			ID:          row.ID.String(),
			OrderNumber: row.OrderNumber,
			Sector:      row.Sector,
			Description: row.Description,
			Date:        row.Date,
		}
	}
	return out
}
