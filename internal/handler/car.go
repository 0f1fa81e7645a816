package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/YOUNSSBOSS/car-rent/internal/model"
)

// ListCars godoc
// @Summary  List available cars
// @Tags     cars
// @Produce  json
// @Param    search query string false "substring match on make or model"
// @Param    minPrice query number false "inclusive lower price bound"
// @Param    maxPrice query number false "inclusive upper price bound"
// @Success  200 {array} model.Car
// @Router   /api/v1/cars [get]
func (h *Handler) ListCars(c echo.Context) error {
	filter, err := carFilterFromQuery(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	// the public listing only ever shows bookable cars
	filter.Status = model.CarAvailable

	cars, err := h.carSvc.List(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cars)
}

// GetCar godoc
// @Summary  Get one car
// @Tags     cars
// @Produce  json
// @Param    carUid path string true "car uid"
// @Success  200 {object} model.Car
// @Router   /api/v1/cars/{carUid} [get]
func (h *Handler) GetCar(c echo.Context) error {
	carUID, err := uuidParam(c, "carUid")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	car, err := h.carSvc.Get(c.Request().Context(), carUID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, car)
}

func carFilterFromQuery(c echo.Context) (model.CarFilter, error) {
	filter := model.CarFilter{
		Search: c.QueryParam("search"),
	}
	if raw := c.QueryParam("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return model.CarFilter{}, err
		}
		filter.MinPrice = &v
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return model.CarFilter{}, err
		}
		filter.MaxPrice = &v
	}
	return filter, nil
}
