package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/Nik0lakt/cafeteria-project/internal/entity"
)

// @title Cafeteria API
// @version 1.0
// @description Face liveness check and subsidy settlement for the staff cafeteria
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key

const maxImageSize = 10 << 20

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type Service interface {
	StartLiveness(ctx context.Context, cardUID string) (uuid.UUID, error)
	SubmitFrame(ctx context.Context, sessionID uuid.UUID, image []byte) (entity.FrameStatus, error)
	CancelLiveness(ctx context.Context, sessionID uuid.UUID) error
	Settle(ctx context.Context, req entity.SettlementRequest) (entity.SettlementResult, error)
	EmployeeByCard(ctx context.Context, cardUID string) (entity.Employee, error)
	Balance(ctx context.Context, cardUID string) (entity.Balance, error)
	Transactions(ctx context.Context, employeeID int64, f entity.TransactionFilter) ([]entity.Transaction, int, error)
	EnrollFace(ctx context.Context, cardUID string, image []byte) (entity.Descriptor, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

// HealthHandler - returns service health status.
// @Summary Health check
// @Description Health check
// @Tags health
// @Produce text/plain
// @Success 200 {string} string "Сервис работает!"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Сервис работает!\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Сервис не работает!")
		return
	}
}

type StartLivenessRequest struct {
	CardUID string `json:"card_uid"`
}

type StartLivenessResponse struct {
	SessionID string `json:"session_id"`
}

// StartLiveness opens a liveness session for the card holder
// @Summary Start liveness session
// @Tags liveness
// @Accept json
// @Produce json
// @Param StartLivenessRequest body StartLivenessRequest true "Card read by the terminal"
// @Success 201 {object} StartLivenessResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Card not bound"
// @Failure 500 {object} ErrorResponse "Failed to start session"
// @Router /liveness/sessions [post]
// @Security BearerAuth
func (h *Handler) StartLiveness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req StartLivenessRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	id, err := h.s.StartLiveness(ctx, req.CardUID)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Не указан номер карты")
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Карта не привязана к сотруднику")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось начать проверку")
		}

		return
	}

	SendJSON(ctx, w, http.StatusCreated, StartLivenessResponse{SessionID: id.String()})
}

type FrameResponse struct {
	Status string `json:"status"`
}

// SubmitFrame checks one camera frame against the enrolled face
// @Summary Submit liveness frame
// @Tags liveness
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Session ID"
// @Param file formData file true "Camera frame"
// @Success 200 {object} FrameResponse "processing, finished or given_up"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Session not found or expired"
// @Failure 409 {object} ErrorResponse "No face enrolled"
// @Failure 429 {object} ErrorResponse "Too many frames"
// @Failure 500 {object} ErrorResponse "Failed to check frame"
// @Router /liveness/sessions/{id}/frames [post]
// @Security BearerAuth
func (h *Handler) SubmitFrame(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор сессии")
		return
	}

	image, err := formFile(w, r, "file")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Не удалось прочитать кадр")
		return
	}

	status, err := h.s.SubmitFrame(ctx, id, image)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Сессия не найдена или истекла")
		case errors.Is(err, entity.ErrNoFaceEnrolled):
			SendJSONErr(ctx, w, http.StatusConflict, err, "У сотрудника нет эталонного фото")
		case errors.Is(err, entity.ErrTooManyFrames):
			SendJSONErr(ctx, w, http.StatusTooManyRequests, err, "Слишком много кадров")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось проверить кадр")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, FrameResponse{Status: status.String()})
}

// CancelLiveness discards a session
// @Summary Cancel liveness session
// @Tags liveness
// @Param id path string true "Session ID"
// @Success 204
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Session not found or expired"
// @Failure 500 {object} ErrorResponse "Failed to cancel session"
// @Router /liveness/sessions/{id} [delete]
// @Security BearerAuth
func (h *Handler) CancelLiveness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор сессии")
		return
	}

	err = h.s.CancelLiveness(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Сессия не найдена или истекла")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось отменить проверку")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type LineItem struct {
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"` // kopecks
}

type PaymentRequest struct {
	SessionID string     `json:"session_id"`
	Amount    int64      `json:"amount"` // kopecks
	Items     []LineItem `json:"items"`
	IsManual  bool       `json:"is_manual"`
	LiveFrame string     `json:"live_frame,omitempty"` // base64 JPEG
}

type PaymentResponse struct {
	Status         string `json:"status"`
	TransactionID  string `json:"transaction_id"`
	AppliedSubsidy int64  `json:"applied_subsidy"`
	OwedFromLimit  int64  `json:"owed_from_limit"`
	RemainingLimit int64  `json:"remaining_limit"`
}

// Pay settles the bill of the employee who passed the liveness check
// @Summary Pay for a meal
// @Description Subsidy is applied first, the rest is charged to the monthly limit. Amounts are in kopecks.
// @Tags payments
// @Accept json
// @Produce json
// @Param PaymentRequest body PaymentRequest true "Bill"
// @Success 200 {object} PaymentResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 402 {object} ErrorResponse "Insufficient funds"
// @Failure 404 {object} ErrorResponse "Session or employee not found"
// @Failure 409 {object} ErrorResponse "Liveness not confirmed"
// @Failure 422 {object} ErrorResponse "Invalid amount"
// @Failure 500 {object} ErrorResponse "Failed to settle"
// @Router /payments [post]
// @Security BearerAuth
func (h *Handler) Pay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PaymentRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	settlement, err := req.toEntity()
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный запрос")
		return
	}

	res, err := h.s.Settle(ctx, settlement)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Невалидная сумма или состав заказа")
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Сессия или сотрудник не найдены")
		case errors.Is(err, entity.ErrLivenessNotConfirmed):
			SendJSONErr(ctx, w, http.StatusConflict, err, "Проверка лица не пройдена")
		case errors.Is(err, entity.ErrInsufficientFunds):
			SendJSONErr(ctx, w, http.StatusPaymentRequired, err, "Недостаточно средств")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось провести оплату")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, PaymentResponse{
		Status:         "success",
		TransactionID:  res.TransactionID.String(),
		AppliedSubsidy: int64(res.AppliedSubsidy),
		OwedFromLimit:  int64(res.OwedFromLimit),
		RemainingLimit: int64(res.RemainingLimit),
	})
}

func (req PaymentRequest) toEntity() (entity.SettlementRequest, error) {
	id, err := uuid.FromString(req.SessionID)
	if err != nil {
		return entity.SettlementRequest{}, fmt.Errorf("session_id: %w", err)
	}

	var frame []byte

	if req.LiveFrame != "" {
		frame, err = base64.StdEncoding.DecodeString(req.LiveFrame)
		if err != nil {
			return entity.SettlementRequest{}, fmt.Errorf("live_frame: %w", err)
		}
	}

	items := make([]entity.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entity.LineItem{Name: it.Name, UnitPrice: entity.Money(it.UnitPrice)})
	}

	return entity.SettlementRequest{
		SessionID: id,
		Amount:    entity.Money(req.Amount),
		Items:     items,
		IsManual:  req.IsManual,
		LiveFrame: frame,
	}, nil
}

type EmployeeResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	HasFace bool   `json:"has_face"`
}

// Employee returns the card holder
// @Summary Card holder
// @Tags cards
// @Produce json
// @Param uid path string true "Card UID"
// @Success 200 {object} EmployeeResponse
// @Failure 404 {object} ErrorResponse "Card not bound"
// @Failure 500 {object} ErrorResponse "Failed to get employee"
// @Router /cards/{uid}/employee [get]
// @Security BearerAuth
func (h *Handler) Employee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	emp, err := h.s.EmployeeByCard(ctx, chi.URLParam(r, "uid"))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Карта не привязана к сотруднику")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось получить сотрудника")

		return
	}

	SendJSON(ctx, w, http.StatusOK, EmployeeResponse{
		ID:      emp.ID,
		Name:    emp.FullName,
		Role:    emp.Role,
		HasFace: emp.HasFace(),
	})
}

type BalanceResponse struct {
	EmployeeID       int64     `json:"employee_id"`
	Name             string    `json:"name"`
	WorkDay          bool      `json:"work_day"`
	DailySubsidy     int64     `json:"daily_subsidy"`
	SubsidyUsedToday int64     `json:"subsidy_used_today"`
	SubsidyAvailable int64     `json:"subsidy_available"`
	MonthlyLimitLeft int64     `json:"monthly_limit_left"`
	CalculatedAt     time.Time `json:"calculated_at"`
}

// Balance returns today's subsidy and the monthly limit of the card holder
// @Summary Card holder balance
// @Tags cards
// @Produce json
// @Param uid path string true "Card UID"
// @Success 200 {object} BalanceResponse "Amounts in kopecks"
// @Failure 404 {object} ErrorResponse "Card not bound"
// @Failure 500 {object} ErrorResponse "Failed to get balance"
// @Router /cards/{uid}/balance [get]
// @Security BearerAuth
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	b, err := h.s.Balance(ctx, chi.URLParam(r, "uid"))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Карта не привязана к сотруднику")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось получить баланс")

		return
	}

	SendJSON(ctx, w, http.StatusOK, BalanceResponse{
		EmployeeID:       b.Employee.ID,
		Name:             b.Employee.FullName,
		WorkDay:          b.WorkDay,
		DailySubsidy:     int64(b.DailySubsidy),
		SubsidyUsedToday: int64(b.SubsidyUsedToday),
		SubsidyAvailable: int64(b.SubsidyAvailable),
		MonthlyLimitLeft: int64(b.MonthlyLimitLeft),
		CalculatedAt:     b.CalculatedAt,
	})
}

type TransactionEntity struct {
	ID          string     `json:"id"`
	AmountTotal int64      `json:"amount_total"`
	SubsidyPart int64      `json:"subsidy_part"`
	LimitPart   int64      `json:"limit_part"`
	Status      string     `json:"status"`
	IsManual    bool       `json:"is_manual"`
	Items       []LineItem `json:"items"`
	CreatedAt   time.Time  `json:"created_at"`
}

type TransactionsResponse struct {
	Transactions []TransactionEntity `json:"transactions"`
	TotalCount   int                 `json:"total_count"`
}

// Transactions returns the employee's settlements
// @Summary Employee transactions
// @Tags payments
// @Produce json
// @Param id path int true "Employee ID"
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size, up to 100"
// @Param sort_by query string false "created_at or amount_total"
// @Param order_by query string false "asc or desc"
// @Param created_from query string false "RFC 3339, inclusive"
// @Param created_to query string false "RFC 3339, exclusive"
// @Success 200 {object} TransactionsResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 500 {object} ErrorResponse "Failed to get transactions"
// @Router /employees/{id}/transactions [get]
// @Security BearerAuth
func (h *Handler) Transactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employeeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор сотрудника")
		return
	}

	filter, err := parseTransactionFilter(r.URL.Query())
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный фильтр")
		return
	}

	transactions, totalCount, err := h.s.Transactions(ctx, employeeID, filter)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный фильтр")
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Сотрудник не найден")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось получить транзакции")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, TransactionsResponse{
		Transactions: transactionsToAPI(transactions),
		TotalCount:   totalCount,
	})
}

func parseTransactionFilter(q url.Values) (entity.TransactionFilter, error) {
	filter := entity.TransactionFilter{
		SortBy:  entity.TransactionSortCol(q.Get("sort_by")),
		OrderBy: entity.OrderByCol(strings.ToLower(q.Get("order_by"))),
	}

	var err error

	if v := q.Get("page"); v != "" {
		filter.Page, err = strconv.ParseUint(v, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("page: %w", err)
		}
	}

	if v := q.Get("limit"); v != "" {
		filter.Limit, err = strconv.ParseUint(v, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("limit: %w", err)
		}
	}

	for key, dst := range map[string]**time.Time{
		"created_from": &filter.CreatedFrom,
		"created_to":   &filter.CreatedTo,
	} {
		v := q.Get(key)
		if v == "" {
			continue
		}

		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, fmt.Errorf("%s: %w", key, err)
		}

		*dst = &t
	}

	return filter, nil
}

func transactionsToAPI(transactions []entity.Transaction) []TransactionEntity {
	res := make([]TransactionEntity, 0, len(transactions))

	for _, t := range transactions {
		items := make([]LineItem, 0, len(t.Items))
		for _, it := range t.Items {
			items = append(items, LineItem{Name: it.Name, UnitPrice: int64(it.UnitPrice)})
		}

		res = append(res, TransactionEntity{
			ID:          t.ID.String(),
			AmountTotal: int64(t.AmountTotal),
			SubsidyPart: int64(t.SubsidyPart),
			LimitPart:   int64(t.LimitPart),
			Status:      t.Status.String(),
			IsManual:    t.IsManual,
			Items:       items,
			CreatedAt:   t.CreatedAt,
		})
	}

	return res
}

type EnrollResponse struct {
	Dim int `json:"dim"`
}

// EnrollFace stores the reference face of the card holder
// @Summary Enroll face
// @Tags private
// @Accept multipart/form-data
// @Produce json
// @Param card_uid formData string true "Card UID"
// @Param file formData file true "Face photo"
// @Success 201 {object} EnrollResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Card not bound"
// @Failure 422 {object} ErrorResponse "No face in photo"
// @Failure 500 {object} ErrorResponse "Failed to enroll"
// @Router /private/faces [post]
// @Security ApiKeyAuth
func (h *Handler) EnrollFace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	image, err := formFile(w, r, "file")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Не удалось прочитать фото")
		return
	}

	descriptor, err := h.s.EnrollFace(ctx, r.FormValue("card_uid"), image)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNoFaceFound):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Лицо на фото не найдено")
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Карта не привязана к сотруднику")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось сохранить фото")
		}

		return
	}

	SendJSON(ctx, w, http.StatusCreated, EnrollResponse{Dim: len(descriptor)})
}

func formFile(w http.ResponseWriter, r *http.Request, field string) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize)

	file, _, err := r.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("form file %q: %w", field, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read form file %q: %w", field, err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("form file %q is empty", field)
	}

	return data, nil
}
