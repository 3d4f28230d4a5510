package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/stylehub/order-service/internal/entities"
	"github.com/stylehub/order-service/internal/middleware"
	"github.com/stylehub/order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderLifecycle interface {
	UpdateStatus(ctx context.Context, orderID string, change entities.StatusChange) (entities.Order, entities.Status, error)
	DeleteOrder(ctx context.Context, orderID string) error
	GetCustomerOrder(ctx context.Context, customerID, orderNumber string) (entities.Order, error)
}

type OrderQueries interface {
	ListOrders(ctx context.Context, q entities.ListQuery) (entities.OrderPage, error)
	StatusBreakdown(ctx context.Context, customerID string) ([]entities.StatusCount, error)
}

type HTTPHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	lifecycle OrderLifecycle
	queries   OrderQueries
}

func NewHTTPHandler(logger *slog.Logger, lifecycle OrderLifecycle, queries OrderQueries) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "http")),
		validate:  validator.New(),
		lifecycle: lifecycle,
		queries:   queries,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/admin/orders", func(r chi.Router) {
		r.Use(middleware.Authenticate, middleware.RequireAdmin)
		r.Get("/", h.ListOrders)
		r.Get("/stats", h.OrderStats)
		r.Put("/{order_id}/status", h.UpdateOrderStatus)
		r.Delete("/{order_id}", h.DeleteOrder)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Use(middleware.Authenticate)
		r.Get("/my", h.MyOrders)
		r.Get("/my/{order_number}", h.MyOrder)
	})
}

// UpdateOrderStatus переводит заказ в новый статус.
// @Summary      Сменить статус заказа
// @Description  Добавляет запись в историю статусов и обновляет заказ
// @Tags         admin
// @Param        order_id  path      string               true  "Идентификатор заказа"
// @Param        body      body      UpdateStatusRequest  true  "Новый статус"
// @Success      200  {object}  UpdateStatusResponse
// @Failure      400  {object}  utils.ErrorResponse "Недопустимый статус"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders/{order_id}/status [put]
func (h *HTTPHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	actor, ok := middleware.ActorFromContext(ctx)
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, prev, err := h.lifecycle.UpdateStatus(ctx, orderID, entities.StatusChange{
		Status:         entities.Status(req.Status),
		Note:           req.Note,
		TrackingNumber: req.TrackingNumber,
		Actor:          actor,
	})

	if errors.Is(err, entities.ErrInvalidStatus) {
		utils.WriteError(w, invalidStatusMessage(req.Status), http.StatusBadRequest)
		return
	}
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update order status",
			slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, UpdateStatusResponse{
		Order:          OrderEntityToJSON(order),
		PreviousStatus: string(prev),
	}, http.StatusOK)
}

// ListOrders возвращает страницу заказов для админки.
// @Summary      Список заказов
// @Tags         admin
// @Param        status     query  string  false  "Фильтр по статусу"
// @Param        search     query  string  false  "Поиск по номеру, имени или email"
// @Param        page       query  int     false  "Страница (с 1)"
// @Param        limit      query  int     false  "Размер страницы (максимум 100)"
// @Param        sortBy     query  string  false  "createdAt | total | status"
// @Param        sortOrder  query  string  false  "asc | desc"
// @Success      200  {object}  ListOrdersResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q, fields := parseListQuery(r)
	if len(fields) > 0 {
		utils.WriteJSON(w, utils.ValidationErrorResponse{Message: "invalid request", Fields: fields}, http.StatusBadRequest)
		return
	}

	page, err := h.queries.ListOrders(ctx, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderPageToJSON(page), http.StatusOK)
}

// OrderStats возвращает количество заказов по статусам.
// @Summary      Сводка по статусам
// @Tags         admin
// @Success      200  {object}  StatsResponse
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders/stats [get]
func (h *HTTPHandler) OrderStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	counts, err := h.queries.StatusBreakdown(ctx, "")
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get status breakdown", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	breakdown := make([]StatusCount, 0, len(counts))
	for _, c := range counts {
		breakdown = append(breakdown, StatusCount{Status: string(c.Status), Count: c.Count})
	}

	utils.WriteJSON(w, StatsResponse{StatusBreakdown: breakdown}, http.StatusOK)
}

// DeleteOrder удаляет заказ.
// @Summary      Удалить заказ
// @Tags         admin
// @Param        order_id  path  string  true  "Идентификатор заказа"
// @Success      200  {object}  utils.ErrorResponse "Заказ удалён"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Доставленный заказ удалить нельзя"
// @Router       /admin/orders/{order_id} [delete]
func (h *HTTPHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	err := h.lifecycle.DeleteOrder(ctx, orderID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, entities.ErrOrderDelivered) {
		utils.WriteError(w, "delivered orders cannot be deleted", http.StatusConflict)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete order",
			slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "order deleted"}, http.StatusOK)
}

// MyOrders возвращает заказы текущего покупателя.
// @Summary      Мои заказы
// @Tags         orders
// @Success      200  {object}  ListOrdersResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/my [get]
func (h *HTTPHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := middleware.ActorFromContext(ctx)
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	q, fields := parseListQuery(r)
	if len(fields) > 0 {
		utils.WriteJSON(w, utils.ValidationErrorResponse{Message: "invalid request", Fields: fields}, http.StatusBadRequest)
		return
	}
	// Скоуп владельца задаётся только отсюда, параметрами его не переопределить.
	q.CustomerID = actor.ID

	page, err := h.queries.ListOrders(ctx, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list customer orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderPageToJSON(page), http.StatusOK)
}

// MyOrder возвращает заказ покупателя по номеру.
// @Summary      Мой заказ
// @Tags         orders
// @Param        order_number  path  string  true  "Номер заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/my/{order_number} [get]
func (h *HTTPHandler) MyOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderNumber := chi.URLParam(r, "order_number")

	actor, ok := middleware.ActorFromContext(ctx)
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	if err := h.validate.Var(orderNumber, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.lifecycle.GetCustomerOrder(ctx, actor.ID, orderNumber)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order",
			slog.Any("error", err), slog.String("order_number", orderNumber))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func parseListQuery(r *http.Request) (entities.ListQuery, map[string]string) {
	fields := make(map[string]string)
	params := r.URL.Query()

	q := entities.ListQuery{
		Search:    params.Get("search"),
		SortBy:    params.Get("sortBy"),
		SortOrder: params.Get("sortOrder"),
		Page:      1,
		Limit:     10,
	}

	if status := params.Get("status"); status != "" {
		if !entities.Status(status).Valid() {
			fields["status"] = "oneof"
		}
		q.Status = entities.Status(status)
	}

	if page := params.Get("page"); page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			fields["page"] = "numeric"
		}
		q.Page = n
	}

	if limit := params.Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 {
			fields["limit"] = "numeric"
		}
		q.Limit = n
	}

	return q, fields
}

func invalidStatusMessage(got string) string {
	statuses := entities.Statuses()
	valid := make([]string, 0, len(statuses))
	for _, s := range statuses {
		valid = append(valid, string(s))
	}
	return fmt.Sprintf("invalid status %q, valid statuses: %s", got, strings.Join(valid, ", "))
}
