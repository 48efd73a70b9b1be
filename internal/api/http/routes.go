package httpapi

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"weathercast/internal/location"
	"weathercast/internal/presenter"
	"weathercast/internal/repository"
	"weathercast/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app. The HTTP
// surface plays the role the UI layer has on a device: it reads presenter
// state and forwards user intents (retry, search, select, permissions).
// geo may be nil when no geocoder is configured.
func RegisterRoutes(app *fiber.App, p *presenter.Presenter, repo *repository.Repository, geo location.Geocoder, forecastDays int) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather", func(c *fiber.Ctx) error {
		return c.JSON(p.State())
	})

	v1.Post("/weather/retry", func(c *fiber.Ctx) error {
		p.Retry(c.UserContext())
		return c.JSON(p.State())
	})

	v1.Get("/weather/search", func(c *fiber.Ctx) error {
		var q searchQuery
		q.Query = c.Query("q")
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		// The debounce window outlives this request.
		p.Search(context.Background(), q.Query)
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
			"accepted": true,
			"query":    q.Query,
		})
	})

	v1.Post("/weather/select", func(c *fiber.Ctx) error {
		var req selectRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		p.SelectResult(c.UserContext(), weather.SearchResult{
			Name:    req.Name,
			Region:  req.Region,
			Country: req.Country,
			Lat:     req.Lat,
			Lon:     req.Lon,
		})
		return c.JSON(p.State())
	})

	v1.Post("/permissions/location", func(c *fiber.Ctx) error {
		var req permissionRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		switch {
		case req.Granted:
			p.OnPermissionGranted(c.UserContext())
		case req.Handled:
			p.PermissionRequestHandled()
		default:
			return fiber.NewError(fiber.StatusBadRequest, "either granted or handled must be set")
		}
		return c.JSON(p.State())
	})

	if geo != nil {
		v1.Get("/geocode", func(c *fiber.Ctx) error {
			city := c.Query("city")
			if city == "" {
				return fiber.NewError(fiber.StatusBadRequest, "city is required")
			}

			coords, err := geo.CityToCoordinates(c.UserContext(), city)
			if err != nil {
				return fiber.NewError(fiber.StatusBadGateway, err.Error())
			}
			if coords == nil {
				return fiber.NewError(fiber.StatusNotFound, "no match for city")
			}
			return c.JSON(fiber.Map{
				"city": city,
				"lat":  coords.Lat,
				"lon":  coords.Lon,
			})
		})
	}

	// Deep-link target: a tapped notification routes back here.
	app.Get("/forecast/:city", func(c *fiber.Ctx) error {
		city := c.Params("city")
		if city == "" {
			return fiber.NewError(fiber.StatusBadRequest, "city is required")
		}

		forecast, err := repo.Forecast(c.UserContext(), city, forecastDays)
		if err != nil {
			return forecastError(err)
		}
		return c.JSON(forecast)
	})
}

type searchQuery struct {
	Query string `validate:"required,min=2"`
}

type selectRequest struct {
	Name    string  `json:"name" validate:"required"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type permissionRequest struct {
	Granted bool `json:"granted"`
	Handled bool `json:"handled"`
}

func forecastError(err error) error {
	var netErr *repository.NetworkError
	var noDataErr *repository.NoDataError

	switch {
	case errors.As(err, &noDataErr):
		return fiber.NewError(fiber.StatusNotFound, "no forecast data for requested city")
	case errors.As(err, &netErr):
		return fiber.NewError(fiber.StatusBadGateway, netErr.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch forecast")
	}
}
