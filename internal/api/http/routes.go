package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/CleverKeyush/climatrail-core/internal/store"
	"github.com/CleverKeyush/climatrail-core/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/analysis", func(c *fiber.Ctx) error {
		var req analysisQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result, err := service.Analyze(c.Context(), req.toRequest())
		if err != nil {
			if errors.Is(err, weather.ErrInvalidRequest) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to analyze conditions")
		}

		return c.JSON(result)
	})

	v1.Get("/conditions/current", func(c *fiber.Ctx) error {
		location := c.Query("location")
		if location == "" {
			return fiber.NewError(fiber.StatusBadRequest, "location query parameter is required")
		}

		record, err := service.GetLatest(location)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no conditions for requested location")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch conditions")
		}

		return c.JSON(record)
	})

	v1.Get("/conditions/history", func(c *fiber.Ctx) error {
		var req historyQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		records, err := service.GetRange(req.Location, req.From, req.To)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no conditions history for requested range")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch conditions history")
		}

		return c.JSON(fiber.Map{
			"location": req.Location,
			"from":     req.From,
			"to":       req.To,
			"records":  records,
		})
	})
}

// analysisQuery holds query parameters for the analysis endpoint.
type analysisQuery struct {
	Lat      float64 `validate:"gte=-90,lte=90"`
	Lon      float64 `validate:"gte=-180,lte=180"`
	Activity string  `validate:"required,oneof=hiking camping fishing cycling outdoor_events"`
	Date     time.Time
}

func (a *analysisQuery) bind(c *fiber.Ctx) error {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		return errors.New("lat and lon query parameters are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return errors.New("invalid lat; want a decimal degree value")
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return errors.New("invalid lon; want a decimal degree value")
	}
	a.Lat = lat
	a.Lon = lon

	dateStr := c.Query("date")
	if dateStr == "" {
		return errors.New("date query parameter is required")
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return errors.New("invalid date; use YYYY-MM-DD")
	}
	a.Date = date

	a.Activity = c.Query("activity")

	return validate.Struct(a)
}

func (a analysisQuery) toRequest() weather.AnalysisRequest {
	return weather.AnalysisRequest{
		Point:    weather.Point{Lat: a.Lat, Lon: a.Lon},
		Date:     a.Date,
		Activity: weather.Activity(a.Activity),
	}
}

// historyQuery holds query parameters for the history endpoint.
type historyQuery struct {
	Location string    `validate:"required"`
	From     time.Time `validate:"required"`
	To       time.Time `validate:"required,gtefield=From"`
}

func (h *historyQuery) bind(c *fiber.Ctx) error {
	h.Location = c.Query("location")

	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return errors.New("from and to query parameters are required")
	}

	from, err := parseTime(fromStr)
	if err != nil {
		return err
	}
	to, err := parseTime(toStr)
	if err != nil {
		return err
	}

	h.From = from
	h.To = to
	return nil
}

// parseTime tries to parse either RFC3339 or Unix seconds.
func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, errors.New("invalid time format; use RFC3339 or unix seconds")
}
