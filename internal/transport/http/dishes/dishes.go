package dishes

import (
	"context"
	"net/http"

	"github.com/corray333/grubdash/internal/service/models/dish"
	"github.com/corray333/grubdash/internal/service/models/payload"
	"github.com/corray333/grubdash/internal/transport/http/envelope"
	"github.com/go-chi/chi/v5"
)

// IDParam is the route parameter holding a dish id.
const IDParam = "dishId"

// service is an interface for the service layer.
type service interface {
	List(ctx context.Context) ([]dish.Dish, error)
	Create(ctx context.Context, p payload.Payload) (dish.Dish, error)
	Get(ctx context.Context, id string) (dish.Dish, error)
	Update(ctx context.Context, id string, p payload.Payload) (dish.Dish, error)
}

// List godoc
//
//	@Summary	List dishes
//	@Tags		dishes
//	@Produce	json
//	@Success	200	{object}	envelope.Response{data=[]dish.Dish}
//	@Router		/dishes [get]
func List(w http.ResponseWriter, r *http.Request, service service) {
	dishes, err := service.List(r.Context())
	if err != nil {
		envelope.Error(w, r, err)

		return
	}

	envelope.Data(w, http.StatusOK, dishes)
}

// Create godoc
//
//	@Summary	Create a dish
//	@Tags		dishes
//	@Accept		json
//	@Produce	json
//	@Param		request	body		envelope.Response{data=dish.Dish}	true	"Dish to create; id is ignored"
//	@Success	201		{object}	envelope.Response{data=dish.Dish}
//	@Failure	400		{object}	envelope.ErrorResponse
//	@Router		/dishes [post]
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
//	@Summary	Get a dish
//	@Tags		dishes
//	@Produce	json
//	@Param		dishId	path		string	true	"Dish ID"
//	@Success	200		{object}	envelope.Response{data=dish.Dish}
//	@Failure	404		{object}	envelope.ErrorResponse
//	@Router		/dishes/{dishId} [get]
func Read(w http.ResponseWriter, r *http.Request, service service) {
	d, err := service.Get(r.Context(), chi.URLParam(r, IDParam))
	if err != nil {
		envelope.Error(w, r, err)

		return
	}

	envelope.Data(w, http.StatusOK, d)
}

// Update godoc
//
//	@Summary	Replace a dish
//	@Tags		dishes
//	@Accept		json
//	@Produce	json
//	@Param		dishId	path		string								true	"Dish ID"
//	@Param		request	body		envelope.Response{data=dish.Dish}	true	"Full dish; id optional, must match the route"
//	@Success	200		{object}	envelope.Response{data=dish.Dish}
//	@Failure	400		{object}	envelope.ErrorResponse
//	@Failure	404		{object}	envelope.ErrorResponse
//	@Router		/dishes/{dishId} [put]
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
