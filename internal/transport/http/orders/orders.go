package orders

import (
	"context"
	"net/http"

	"github.com/corray333/grubdash/internal/service/models/order"
	"github.com/corray333/grubdash/internal/service/models/payload"
	"github.com/corray333/grubdash/internal/transport/http/envelope"
	"github.com/go-chi/chi/v5"
)

// IDParam is the route parameter holding an order id.
const IDParam = "orderId"

// service is an interface for the service layer.
type service interface {
	List(ctx context.Context) ([]order.Order, error)
	Create(ctx context.Context, p payload.Payload) (order.Order, error)
	Get(ctx context.Context, id string) (order.Order, error)
	Update(ctx context.Context, id string, p payload.Payload) (order.Order, error)
	Delete(ctx context.Context, id string) error
}

// List godoc
//
//	@Summary	List orders
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	envelope.Response{data=[]order.Order}
//	@Router		/orders [get]
func List(w http.ResponseWriter, r *http.Request, service service) {
	orders, err := service.List(r.Context())
	if err != nil {
		envelope.Error(w, r, err)

		return
	}

	envelope.Data(w, http.StatusOK, orders)
}

// Create godoc
//
//	@Summary	Create an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		request	body		envelope.Response{data=order.Order}	true	"Order to create; id is ignored"
//	@Success	201		{object}	envelope.Response{data=order.Order}
//	@Failure	400		{object}	envelope.ErrorResponse
//	@Router		/orders [post]
func Create(w http.ResponseWriter, r *http.Request, service service) {
	p, err := envelope.Decode(r)
	if err != nil {
		envelope.Error(w, r, err)

		return
	}

	created, err := service.Create(r.Context(), p)
	if err != nil {
		envelope.Error(w, r, err)

		return
	}

	envelope.Data(w, http.StatusCreated, created)
}

// Read godoc
//
//	@Summary	Get an order
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path		string	true	"Order ID"
//	@Success	200		{object}	envelope.Response{data=order.Order}
//	@Failure	404		{object}	envelope.ErrorResponse
//	@Router		/orders/{orderId} [get]
func Read(w http.ResponseWriter, r *http.Request, service service) {
	o, err := service.Get(r.Context(), chi.URLParam(r, IDParam))
	if err != nil {
		envelope.Error(w, r, err)

		return
	}

	envelope.Data(w, http.StatusOK, o)
}

// Update godoc
//
//	@Summary	Replace an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		orderId	path		string								true	"Order ID"
//	@Param		request	body		envelope.Response{data=order.Order}	true	"Full order; id optional, must match the route"
//	@Success	200		{object}	envelope.Response{data=order.Order}
//	@Failure	400		{object}	envelope.ErrorResponse
//	@Failure	404		{object}	envelope.ErrorResponse
//	@Router		/orders/{orderId} [put]
func Update(w http.ResponseWriter, r *http.Request, service service) {
	p, err := envelope.Decode(r)
	if err != nil {
		envelope.Error(w, r, err)

		return
	}

	updated, err := service.Update(r.Context(), chi.URLParam(r, IDParam), p)
	if err != nil {
		envelope.Error(w, r, err)

		return
	}

	envelope.Data(w, http.StatusOK, updated)
}

// Delete godoc
//
//	@Summary	Delete a pending order
//	@Tags		orders
//	@Param		orderId	path	string	true	"Order ID"
//	@Success	204
//	@Failure	400	{object}	envelope.ErrorResponse
//	@Failure	404	{object}	envelope.ErrorResponse
//	@Router		/orders/{orderId} [delete]
func Delete(w http.ResponseWriter, r *http.Request, service service) {
	if err := service.Delete(r.Context(), chi.URLParam(r, IDParam)); err != nil {
		envelope.Error(w, r, err)

		return
	}

	envelope.NoContent(w)
}
